package service

import (
	"context"
	"errors"

	"github.com/viftode4/Spotify-Ranker/internal/api/dto"
	"github.com/viftode4/Spotify-Ranker/internal/api/repository"
	"github.com/viftode4/Spotify-Ranker/internal/feed"

	"gorm.io/gorm"
)

// Feed type filters.
const (
	FeedAll      = "all"
	FeedRatings  = "ratings"
	FeedComments = "comments"
)

var ErrInvalidFeedType = errors.New("invalid feed type")

type ActivityService interface {
	GetGlobalFeed(ctx context.Context, page, limit int, feedType string) (*dto.ActivityPageResponse, error)
	GetUserFeed(ctx context.Context, userID, requesterID string, limit int, feedType string) ([]dto.ActivityItemResponse, error)
}

type activityService struct {
	ratingRepo  repository.RatingRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
}

func NewActivityService(ratingRepo repository.RatingRepository, commentRepo repository.CommentRepository, userRepo repository.UserRepository) ActivityService {
	return &activityService{
		ratingRepo:  ratingRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
	}
}

func normalizeFeedType(feedType string) (string, error) {
	switch feedType {
	case "", FeedAll:
		return FeedAll, nil
	case FeedRatings, FeedComments:
		return feedType, nil
	default:
		return "", ErrInvalidFeedType
	}
}

// GetGlobalFeed returns one page of the merged site-wide feed, newest first,
// ratings before comments on equal timestamps. Each side is fetched up to
// skip+take rows so the merged page is always complete regardless of how the
// two streams interleave.
func (s *activityService) GetGlobalFeed(ctx context.Context, page, limit int, feedType string) (*dto.ActivityPageResponse, error) {
	feedType, err := normalizeFeedType(feedType)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	skip := (page - 1) * limit

	var ratingItems, commentItems []feed.Item

	if feedType == FeedAll || feedType == FeedRatings {
		ratings, err := s.ratingRepo.GetRecent(0, skip+limit)
		if err != nil {
			return nil, err
		}
		for i := range ratings {
			ratingItems = append(ratingItems, dto.FeedItemFromRating(&ratings[i]))
		}
	}

	if feedType == FeedAll || feedType == FeedComments {
		comments, err := s.commentRepo.GetRecentVisible(0, skip+limit)
		if err != nil {
			return nil, err
		}
		for i := range comments {
			commentItems = append(commentItems, dto.FeedItemFromComment(&comments[i]))
		}
	}

	merged := feed.Merge(ratingItems, commentItems)
	pageItems := feed.Page(merged, skip, limit)

	items := make([]dto.ActivityItemResponse, 0, len(pageItems))
	for _, item := range pageItems {
		items = append(items, dto.FromFeedItem(item))
	}

	return &dto.ActivityPageResponse{
		Items: items,
		Page:  page,
		Limit: limit,
	}, nil
}

// GetUserFeed returns one user's newest album activity. Hidden comments show
// up only when the user is looking at their own feed.
func (s *activityService) GetUserFeed(ctx context.Context, userID, requesterID string, limit int, feedType string) ([]dto.ActivityItemResponse, error) {
	feedType, err := normalizeFeedType(feedType)
	if err != nil {
		return nil, err
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var ratingItems, commentItems []feed.Item

	if feedType == FeedAll || feedType == FeedRatings {
		ratings, err := s.ratingRepo.GetByUser(userID, limit)
		if err != nil {
			return nil, err
		}
		for i := range ratings {
			ratingItems = append(ratingItems, dto.FeedItemFromRating(&ratings[i]))
		}
	}

	if feedType == FeedAll || feedType == FeedComments {
		includeHidden := userID == requesterID
		comments, err := s.commentRepo.GetByUser(userID, limit, includeHidden)
		if err != nil {
			return nil, err
		}
		for i := range comments {
			commentItems = append(commentItems, dto.FeedItemFromComment(&comments[i]))
		}
	}

	merged := feed.Page(feed.Merge(ratingItems, commentItems), 0, limit)

	items := make([]dto.ActivityItemResponse, 0, len(merged))
	for _, item := range merged {
		items = append(items, dto.FromFeedItem(item))
	}
	return items, nil
}
