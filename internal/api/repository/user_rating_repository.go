package repository

import (
	"github.com/viftode4/Spotify-Ranker/internal/api/models"

	"gorm.io/gorm"
)

type UserRatingRepository interface {
	Create(rating *models.UserRating) error
	Update(rating *models.UserRating) error
	Delete(id string) error
	GetByID(id string) (*models.UserRating, error)
	GetPair(raterID, ratedID string) (*models.UserRating, error)
	GetByRated(ratedID string) ([]models.UserRating, error)
	ScoresByRated(ratedID string) ([]int, error)
	HasSelfRating(userID string) (bool, error)
}

type userRatingRepository struct {
	db *gorm.DB
}

func NewUserRatingRepository(db *gorm.DB) UserRatingRepository {
	return &userRatingRepository{db: db}
}

func (r *userRatingRepository) Create(rating *models.UserRating) error {
	return r.db.Create(rating).Error
}

func (r *userRatingRepository) Update(rating *models.UserRating) error {
	return r.db.Save(rating).Error
}

func (r *userRatingRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.UserRating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRatingRepository) GetByID(id string) (*models.UserRating, error) {
	var rating models.UserRating
	if err := r.db.Where("id = ?", id).First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetPair retrieves the single rating one user gave another, if any.
func (r *userRatingRepository) GetPair(raterID, ratedID string) (*models.UserRating, error) {
	var rating models.UserRating
	err := r.db.Where("rater_user_id = ? AND rated_user_id = ?", raterID, ratedID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByRated lists all ratings a user has received, newest first.
func (r *userRatingRepository) GetByRated(ratedID string) ([]models.UserRating, error) {
	var ratings []models.UserRating
	err := r.db.Where("rated_user_id = ?", ratedID).
		Preload("RaterUser").
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// ScoresByRated fetches only the raw scores, enough for mean/count work.
func (r *userRatingRepository) ScoresByRated(ratedID string) ([]int, error) {
	var scores []int
	err := r.db.Model(&models.UserRating{}).
		Where("rated_user_id = ?", ratedID).
		Pluck("score", &scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// HasSelfRating reports whether the user rated themself (Echo Warrior rule).
func (r *userRatingRepository) HasSelfRating(userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserRating{}).
		Where("rated_user_id = ? AND rater_user_id = ?", userID, userID).
		Count(&count).Error
	return count > 0, err
}
