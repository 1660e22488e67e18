package repository

import (
	"github.com/viftode4/Spotify-Ranker/internal/api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(commentID int64) (*models.Comment, error)
	Hide(commentID int64) error
	GetRecentVisible(skip, take int) ([]models.Comment, error)
	GetByUser(userID string, take int, includeHidden bool) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetByID(commentID int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ?", commentID).
		Preload("User").
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Hide soft-deletes: the row stays, the status flips.
func (r *commentRepository) Hide(commentID int64) error {
	result := r.db.Model(&models.Comment{}).
		Where("id = ?", commentID).
		Update("status", models.CommentHidden)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetRecentVisible pages the newest visible comments for the global feed.
func (r *commentRepository) GetRecentVisible(skip, take int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.
		Where("status = ?", models.CommentVisible).
		Preload("User").
		Preload("Album").
		Order("created_at DESC").
		Offset(skip).
		Limit(take).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// GetByUser returns one user's newest comments. includeHidden is true only
// when the requester is that user looking at their own activity.
func (r *commentRepository) GetByUser(userID string, take int, includeHidden bool) ([]models.Comment, error) {
	q := r.db.Where("user_id = ?", userID)
	if !includeHidden {
		q = q.Where("status = ?", models.CommentVisible)
	}

	var comments []models.Comment
	err := q.
		Preload("User").
		Preload("Album").
		Order("created_at DESC").
		Limit(take).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
