package service

import (
	"context"
	"errors"
	"time"

	"github.com/viftode4/Spotify-Ranker/internal/api/dto"
	"github.com/viftode4/Spotify-Ranker/internal/api/models"
	"github.com/viftode4/Spotify-Ranker/internal/api/repository"
	"github.com/viftode4/Spotify-Ranker/internal/cache"

	"gorm.io/gorm"
)

var ErrUserRatingNotFound = errors.New("user rating not found")

type UserRatingService interface {
	RateUser(ctx context.Context, raterID, ratedID string, score int) (*dto.UserRatingResponse, error)
	DeleteRating(ctx context.Context, id, requesterID string, isAdmin bool) error
	ListReceived(ctx context.Context, ratedID string) ([]dto.UserRatingResponse, error)
}

type userRatingService struct {
	userRatingRepo repository.UserRatingRepository
	userRepo       repository.UserRepository
	cache          *cache.Cache
	cacheTTL       time.Duration
}

func NewUserRatingService(userRatingRepo repository.UserRatingRepository, userRepo repository.UserRepository, c *cache.Cache, ttl time.Duration) UserRatingService {
	return &userRatingService{
		userRatingRepo: userRatingRepo,
		userRepo:       userRepo,
		cache:          c,
		cacheTTL:       ttl,
	}
}

// RateUser creates or replaces the score one user gives another. Rating
// yourself is allowed; it feeds the flair rules.
func (s *userRatingService) RateUser(ctx context.Context, raterID, ratedID string, score int) (*dto.UserRatingResponse, error) {
	if _, err := s.userRepo.FindByID(ratedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	existing, err := s.userRatingRepo.GetPair(raterID, ratedID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var rating *models.UserRating
	if existing != nil {
		existing.Score = score
		if err := s.userRatingRepo.Update(existing); err != nil {
			return nil, err
		}
		rating = existing
	} else {
		rating = &models.UserRating{
			RaterUserID: raterID,
			RatedUserID: ratedID,
			Score:       score,
		}
		if err := s.userRatingRepo.Create(rating); err != nil {
			return nil, err
		}
	}

	// Hydrate the rater for the response without another query path.
	rater, err := s.userRepo.FindByID(raterID)
	if err != nil {
		return nil, err
	}
	rating.RaterUser = *rater

	s.cache.Invalidate(ctx, avatarCacheKey(ratedID))

	return dto.FromModelToUserRatingResponse(rating), nil
}

// DeleteRating removes a user-to-user rating. Only the rater who gave it, or
// an admin, may remove it.
func (s *userRatingService) DeleteRating(ctx context.Context, id, requesterID string, isAdmin bool) error {
	rating, err := s.userRatingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserRatingNotFound
		}
		return err
	}

	if !isAdmin && rating.RaterUserID != requesterID {
		return ErrForbidden
	}

	if err := s.userRatingRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserRatingNotFound
		}
		return err
	}

	s.cache.Invalidate(ctx, avatarCacheKey(rating.RatedUserID))
	return nil
}

// ListReceived returns every rating a user has received, newest first.
func (s *userRatingService) ListReceived(ctx context.Context, ratedID string) ([]dto.UserRatingResponse, error) {
	if _, err := s.userRepo.FindByID(ratedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	ratings, err := s.userRatingRepo.GetByRated(ratedID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserRatingResponse, 0, len(ratings))
	for i := range ratings {
		responses = append(responses, *dto.FromModelToUserRatingResponse(&ratings[i]))
	}
	return responses, nil
}
