package repository

import (
	"errors"

	"github.com/viftode4/Spotify-Ranker/internal/api/models"

	"gorm.io/gorm"
)

// ErrVoteExists and ErrNoVote signal the no-op cases of the vote tally:
// adding a vote that is already there, or removing one that is not.
var (
	ErrVoteExists = errors.New("vote already exists")
	ErrNoVote     = errors.New("no vote to remove")
)

type UserCommentRepository interface {
	Create(comment *models.UserComment) error
	Delete(id, raterID string) error
	GetByID(id string) (*models.UserComment, error)
	GetPair(raterID, ratedID string) (*models.UserComment, error)
	GetByRated(ratedID string) ([]models.UserComment, error)

	// ReplaceContent swaps the comment text and wipes the vote state in one
	// transaction: votes counter to 0 and every vote row deleted together.
	ReplaceContent(id, content string) error

	// Upvote / RemoveVote keep the denormalized counter and the vote set in
	// lockstep inside a transaction.
	Upvote(commentID, userID string) error
	RemoveVote(commentID, userID string) error
	HasVote(commentID, userID string) (bool, error)
}

type userCommentRepository struct {
	db *gorm.DB
}

func NewUserCommentRepository(db *gorm.DB) UserCommentRepository {
	return &userCommentRepository{db: db}
}

func (r *userCommentRepository) Create(comment *models.UserComment) error {
	return r.db.Create(comment).Error
}

// Delete removes a comment (author only); its votes cascade.
func (r *userCommentRepository) Delete(id, raterID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_comment_id = ?", id).Delete(&models.UserCommentVote{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ? AND rater_user_id = ?", id, raterID).Delete(&models.UserComment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *userCommentRepository) GetByID(id string) (*models.UserComment, error) {
	var comment models.UserComment
	err := r.db.Where("id = ?", id).
		Preload("RaterUser").
		Preload("UserVotes").
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *userCommentRepository) GetPair(raterID, ratedID string) (*models.UserComment, error) {
	var comment models.UserComment
	err := r.db.Where("rater_user_id = ? AND rated_user_id = ?", raterID, ratedID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByRated lists a user's received comments by vote count descending. Which
// comment wins a vote tie is whatever the database returns first.
func (r *userCommentRepository) GetByRated(ratedID string) ([]models.UserComment, error) {
	var comments []models.UserComment
	err := r.db.Where("rated_user_id = ?", ratedID).
		Preload("RaterUser").
		Preload("UserVotes").
		Order("votes DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *userCommentRepository) ReplaceContent(id, content string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_comment_id = ?", id).Delete(&models.UserCommentVote{}).Error; err != nil {
			return err
		}
		result := tx.Model(&models.UserComment{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{"content": content, "votes": 0})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *userCommentRepository) Upvote(commentID, userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.UserCommentVote{}).
			Where("user_comment_id = ? AND user_id = ?", commentID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrVoteExists
		}

		vote := &models.UserCommentVote{
			UserID:        userID,
			UserCommentID: commentID,
			Value:         1,
		}
		if err := tx.Create(vote).Error; err != nil {
			return err
		}

		return tx.Model(&models.UserComment{}).
			Where("id = ?", commentID).
			UpdateColumn("votes", gorm.Expr("votes + 1")).Error
	})
}

func (r *userCommentRepository) RemoveVote(commentID, userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_comment_id = ? AND user_id = ?", commentID, userID).
			Delete(&models.UserCommentVote{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNoVote
		}

		return tx.Model(&models.UserComment{}).
			Where("id = ?", commentID).
			UpdateColumn("votes", gorm.Expr("votes - 1")).Error
	})
}

func (r *userCommentRepository) HasVote(commentID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserCommentVote{}).
		Where("user_comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error
	return count > 0, err
}
