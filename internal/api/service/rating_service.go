package service

import (
	"context"
	"errors"
	"time"

	"github.com/viftode4/Spotify-Ranker/internal/api/dto"
	"github.com/viftode4/Spotify-Ranker/internal/api/models"
	"github.com/viftode4/Spotify-Ranker/internal/api/repository"
	"github.com/viftode4/Spotify-Ranker/internal/cache"
	"github.com/viftode4/Spotify-Ranker/internal/rank"

	"gorm.io/gorm"
)

type RatingService interface {
	RateAlbum(ctx context.Context, userID string, albumID int64, score int) (*dto.RatingResponse, error)
	GetAverage(ctx context.Context, albumID int64) (*dto.AverageRatingResponse, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	albumRepo  repository.AlbumRepository
	cache      *cache.Cache
	cacheTTL   time.Duration
}

func NewRatingService(ratingRepo repository.RatingRepository, albumRepo repository.AlbumRepository, c *cache.Cache, ttl time.Duration) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		albumRepo:  albumRepo,
		cache:      c,
		cacheTTL:   ttl,
	}
}

// RateAlbum creates or replaces the caller's rating for an album. A user
// holds at most one rating per album; rescoring overwrites in place.
func (s *ratingService) RateAlbum(ctx context.Context, userID string, albumID int64, score int) (*dto.RatingResponse, error) {
	if _, err := s.albumRepo.GetByID(ctx, albumID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlbumNotFound
		}
		return nil, err
	}

	existing, err := s.ratingRepo.GetByUserAndAlbum(userID, albumID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var rating *models.Rating
	if existing != nil {
		existing.Score = score
		if err := s.ratingRepo.Update(existing); err != nil {
			return nil, err
		}
		rating = existing
	} else {
		newRating := &models.Rating{
			UserID:  userID,
			AlbumID: albumID,
			Score:   score,
		}
		if err := s.ratingRepo.Create(newRating); err != nil {
			return nil, err
		}
		// Reload with user data for the response.
		rating, err = s.ratingRepo.GetByUserAndAlbum(userID, albumID)
		if err != nil {
			return nil, err
		}
	}

	// Means changed, so the listing and the tier list are stale.
	s.cache.Invalidate(ctx, cacheKeyAlbums)
	s.cache.Invalidate(ctx, cacheKeyTierList)

	return dto.FromModelToRatingResponse(rating), nil
}

// GetAverage returns the album's mean score (0 when unrated) and how many
// ratings contributed to it.
func (s *ratingService) GetAverage(ctx context.Context, albumID int64) (*dto.AverageRatingResponse, error) {
	if _, err := s.albumRepo.GetByID(ctx, albumID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlbumNotFound
		}
		return nil, err
	}

	avg, err := s.ratingRepo.CalculateAverage(albumID)
	if err != nil {
		return nil, err
	}
	count, err := s.ratingRepo.Count(albumID)
	if err != nil {
		return nil, err
	}

	return &dto.AverageRatingResponse{
		AverageRating: rank.Round1(avg),
		TotalRatings:  count,
	}, nil
}
