package service

import (
	"context"
	"errors"
	"time"

	"github.com/viftode4/Spotify-Ranker/internal/api/dto"
	"github.com/viftode4/Spotify-Ranker/internal/api/repository"
	"github.com/viftode4/Spotify-Ranker/internal/cache"
	"github.com/viftode4/Spotify-Ranker/internal/flair"
	"github.com/viftode4/Spotify-Ranker/internal/rank"

	"gorm.io/gorm"
)

type AvatarService interface {
	GetAvatar(ctx context.Context, userID string) (*dto.AvatarResponse, error)
}

type avatarService struct {
	userRepo        repository.UserRepository
	userRatingRepo  repository.UserRatingRepository
	userCommentRepo repository.UserCommentRepository
	cache           *cache.Cache
	cacheTTL        time.Duration
}

func NewAvatarService(
	userRepo repository.UserRepository,
	userRatingRepo repository.UserRatingRepository,
	userCommentRepo repository.UserCommentRepository,
	c *cache.Cache,
	ttl time.Duration,
) AvatarService {
	return &avatarService{
		userRepo:        userRepo,
		userRatingRepo:  userRatingRepo,
		userCommentRepo: userCommentRepo,
		cache:           c,
		cacheTTL:        ttl,
	}
}

// GetAvatar assembles a user's profile card: name, image, the rounded mean of
// received ratings (null when unrated), their count, and derived flairs. The
// card is cached per user and invalidated by every rating/comment/vote
// mutation that targets them.
func (s *avatarService) GetAvatar(ctx context.Context, userID string) (*dto.AvatarResponse, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return cache.GetOrFetch(ctx, s.cache, avatarCacheKey(userID), s.cacheTTL, func(ctx context.Context) (*dto.AvatarResponse, error) {
		return s.buildAvatar(ctx, userID)
	})
}

func (s *avatarService) buildAvatar(ctx context.Context, userID string) (*dto.AvatarResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	scores, err := s.userRatingRepo.ScoresByRated(userID)
	if err != nil {
		return nil, err
	}

	selfRated, err := s.userRatingRepo.HasSelfRating(userID)
	if err != nil {
		return nil, err
	}

	comments, err := s.userCommentRepo.GetByRated(userID)
	if err != nil {
		return nil, err
	}

	flairComments := make([]flair.Comment, 0, len(comments))
	for _, c := range comments {
		flairComments = append(flairComments, flair.Comment{
			Content: c.Content,
			RaterID: c.RaterUserID,
			Votes:   c.Votes,
		})
	}

	resp := &dto.AvatarResponse{
		ID:          user.ID,
		Name:        user.Name,
		RatingCount: len(scores),
		Flairs:      flair.Derive(userID, selfRated, flairComments),
	}
	if user.Image != nil {
		resp.Image = *user.Image
	}
	if len(scores) > 0 {
		mean := rank.Round1(rank.Average(scores))
		resp.AverageRating = &mean
	}
	return resp, nil
}
