package service_test

import (
	"context"

	"github.com/viftode4/Spotify-Ranker/internal/api/models"

	"github.com/stretchr/testify/mock"
)

// --- MOCK REPOSITORIES ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByName(name string) (*models.User, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(token *models.RefreshToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(tokenString string) (*models.RefreshToken, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Revoke(tokenID string) error {
	args := m.Called(tokenID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) Delete(tokenID string) error {
	args := m.Called(tokenID)
	return args.Error(0)
}

type MockAlbumRepository struct {
	mock.Mock
}

func (m *MockAlbumRepository) GetAll(ctx context.Context) ([]models.Album, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Album), args.Error(1)
}

func (m *MockAlbumRepository) GetByID(ctx context.Context, id int64) (*models.Album, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Album), args.Error(1)
}

func (m *MockAlbumRepository) GetDetailed(ctx context.Context, id int64) (*models.Album, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Album), args.Error(1)
}

func (m *MockAlbumRepository) GetBySpotifyID(ctx context.Context, spotifyID string) (*models.Album, error) {
	args := m.Called(ctx, spotifyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Album), args.Error(1)
}

func (m *MockAlbumRepository) Create(ctx context.Context, album *models.Album) error {
	args := m.Called(ctx, album)
	return args.Error(0)
}

func (m *MockAlbumRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(rating *models.Rating) error {
	args := m.Called(rating)
	return args.Error(0)
}

func (m *MockRatingRepository) Update(rating *models.Rating) error {
	args := m.Called(rating)
	return args.Error(0)
}

func (m *MockRatingRepository) GetByUserAndAlbum(userID string, albumID int64) (*models.Rating, error) {
	args := m.Called(userID, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) CalculateAverage(albumID int64) (float64, error) {
	args := m.Called(albumID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRatingRepository) Count(albumID int64) (int64, error) {
	args := m.Called(albumID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRatingRepository) GetRecent(skip, take int) ([]models.Rating, error) {
	args := m.Called(skip, take)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetByUser(userID string, take int) ([]models.Rating, error) {
	args := m.Called(userID, take)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(commentID int64) (*models.Comment, error) {
	args := m.Called(commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Hide(commentID int64) error {
	args := m.Called(commentID)
	return args.Error(0)
}

func (m *MockCommentRepository) GetRecentVisible(skip, take int) ([]models.Comment, error) {
	args := m.Called(skip, take)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByUser(userID string, take int, includeHidden bool) ([]models.Comment, error) {
	args := m.Called(userID, take, includeHidden)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

type MockUserRatingRepository struct {
	mock.Mock
}

func (m *MockUserRatingRepository) Create(rating *models.UserRating) error {
	args := m.Called(rating)
	return args.Error(0)
}

func (m *MockUserRatingRepository) Update(rating *models.UserRating) error {
	args := m.Called(rating)
	return args.Error(0)
}

func (m *MockUserRatingRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRatingRepository) GetByID(id string) (*models.UserRating, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserRating), args.Error(1)
}

func (m *MockUserRatingRepository) GetPair(raterID, ratedID string) (*models.UserRating, error) {
	args := m.Called(raterID, ratedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserRating), args.Error(1)
}

func (m *MockUserRatingRepository) GetByRated(ratedID string) ([]models.UserRating, error) {
	args := m.Called(ratedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserRating), args.Error(1)
}

func (m *MockUserRatingRepository) ScoresByRated(ratedID string) ([]int, error) {
	args := m.Called(ratedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockUserRatingRepository) HasSelfRating(userID string) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

type MockUserCommentRepository struct {
	mock.Mock
}

func (m *MockUserCommentRepository) Create(comment *models.UserComment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockUserCommentRepository) Delete(id, raterID string) error {
	args := m.Called(id, raterID)
	return args.Error(0)
}

func (m *MockUserCommentRepository) GetByID(id string) (*models.UserComment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserComment), args.Error(1)
}

func (m *MockUserCommentRepository) GetPair(raterID, ratedID string) (*models.UserComment, error) {
	args := m.Called(raterID, ratedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserComment), args.Error(1)
}

func (m *MockUserCommentRepository) GetByRated(ratedID string) ([]models.UserComment, error) {
	args := m.Called(ratedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserComment), args.Error(1)
}

func (m *MockUserCommentRepository) ReplaceContent(id, content string) error {
	args := m.Called(id, content)
	return args.Error(0)
}

func (m *MockUserCommentRepository) Upvote(commentID, userID string) error {
	args := m.Called(commentID, userID)
	return args.Error(0)
}

func (m *MockUserCommentRepository) RemoveVote(commentID, userID string) error {
	args := m.Called(commentID, userID)
	return args.Error(0)
}

func (m *MockUserCommentRepository) HasVote(commentID, userID string) (bool, error) {
	args := m.Called(commentID, userID)
	return args.Bool(0), args.Error(1)
}
