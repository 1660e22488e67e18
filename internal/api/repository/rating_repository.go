package repository

import (
	"github.com/viftode4/Spotify-Ranker/internal/api/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(rating *models.Rating) error
	Update(rating *models.Rating) error
	GetByUserAndAlbum(userID string, albumID int64) (*models.Rating, error)
	CalculateAverage(albumID int64) (float64, error)
	Count(albumID int64) (int64, error)
	GetRecent(skip, take int) ([]models.Rating, error)
	GetByUser(userID string, take int) ([]models.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

func (r *ratingRepository) Update(rating *models.Rating) error {
	return r.db.Save(rating).Error
}

// GetByUserAndAlbum retrieves a user's rating for a specific album
func (r *ratingRepository) GetByUserAndAlbum(userID string, albumID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("user_id = ? AND album_id = ?", userID, albumID).
		Preload("User").
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// CalculateAverage computes the mean score for an album, 0 when unrated.
func (r *ratingRepository) CalculateAverage(albumID int64) (float64, error) {
	var avg struct {
		Average float64
	}

	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) as average").
		Where("album_id = ?", albumID).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}

	return avg.Average, nil
}

func (r *ratingRepository) Count(albumID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).Where("album_id = ?", albumID).Count(&count).Error
	return count, err
}

// GetRecent pages the newest ratings across all users for the global feed,
// with the user and album details the feed renders.
func (r *ratingRepository) GetRecent(skip, take int) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.
		Preload("User").
		Preload("Album").
		Order("created_at DESC").
		Offset(skip).
		Limit(take).
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// GetByUser returns one user's newest ratings for their profile feed.
func (r *ratingRepository) GetByUser(userID string, take int) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.
		Where("user_id = ?", userID).
		Preload("User").
		Preload("Album").
		Order("created_at DESC").
		Limit(take).
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
