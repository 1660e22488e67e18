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

var ErrUserCommentNotFound = errors.New("user comment not found")

type UserCommentService interface {
	UpsertComment(ctx context.Context, raterID, ratedID, content string) (*dto.UserCommentResponse, error)
	DeleteComment(ctx context.Context, id, requesterID string) error
	ListReceived(ctx context.Context, ratedID, viewerID string) ([]dto.UserCommentResponse, error)
	Vote(ctx context.Context, commentID, voterID string, remove bool) (*dto.UserCommentResponse, error)
}

type userCommentService struct {
	userCommentRepo repository.UserCommentRepository
	userRepo        repository.UserRepository
	cache           *cache.Cache
	cacheTTL        time.Duration
}

func NewUserCommentService(userCommentRepo repository.UserCommentRepository, userRepo repository.UserRepository, c *cache.Cache, ttl time.Duration) UserCommentService {
	return &userCommentService{
		userCommentRepo: userCommentRepo,
		userRepo:        userRepo,
		cache:           c,
		cacheTTL:        ttl,
	}
}

// UpsertComment leaves a short note on a profile, one per (rater, rated)
// pair. A resubmission replaces the text and wipes every vote with it.
func (s *userCommentService) UpsertComment(ctx context.Context, raterID, ratedID, content string) (*dto.UserCommentResponse, error) {
	if _, err := s.userRepo.FindByID(ratedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	existing, err := s.userCommentRepo.GetPair(raterID, ratedID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var commentID string
	if existing != nil {
		if err := s.userCommentRepo.ReplaceContent(existing.ID, content); err != nil {
			return nil, err
		}
		commentID = existing.ID
	} else {
		comment := &models.UserComment{
			RaterUserID: raterID,
			RatedUserID: ratedID,
			Content:     content,
		}
		if err := s.userCommentRepo.Create(comment); err != nil {
			return nil, err
		}
		commentID = comment.ID
	}

	created, err := s.userCommentRepo.GetByID(commentID)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, avatarCacheKey(ratedID))

	return dto.FromModelToUserCommentResponse(created, raterID), nil
}

// DeleteComment removes a profile note. Author only; not even admins may
// delete someone else's note.
func (s *userCommentService) DeleteComment(ctx context.Context, id, requesterID string) error {
	comment, err := s.userCommentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserCommentNotFound
		}
		return err
	}

	if err := s.userCommentRepo.Delete(id, requesterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrForbidden
		}
		return err
	}

	s.cache.Invalidate(ctx, avatarCacheKey(comment.RatedUserID))
	return nil
}

// ListReceived returns the notes on a profile ordered by votes descending,
// each carrying who upvoted it and whether the viewer did.
func (s *userCommentService) ListReceived(ctx context.Context, ratedID, viewerID string) ([]dto.UserCommentResponse, error) {
	if _, err := s.userRepo.FindByID(ratedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	comments, err := s.userCommentRepo.GetByRated(ratedID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserCommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *dto.FromModelToUserCommentResponse(&comments[i], viewerID))
	}
	return responses, nil
}

// Vote adds or retracts the caller's upvote on a profile note. Voting twice,
// or retracting a vote that was never cast, changes nothing and still
// succeeds; the current state comes back either way.
func (s *userCommentService) Vote(ctx context.Context, commentID, voterID string, remove bool) (*dto.UserCommentResponse, error) {
	comment, err := s.userCommentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserCommentNotFound
		}
		return nil, err
	}

	if remove {
		err = s.userCommentRepo.RemoveVote(commentID, voterID)
		if err != nil && !errors.Is(err, repository.ErrNoVote) {
			return nil, err
		}
	} else {
		err = s.userCommentRepo.Upvote(commentID, voterID)
		if err != nil && !errors.Is(err, repository.ErrVoteExists) {
			return nil, err
		}
	}

	updated, err := s.userCommentRepo.GetByID(commentID)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, avatarCacheKey(comment.RatedUserID))

	return dto.FromModelToUserCommentResponse(updated, voterID), nil
}
