package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserCommentVote records one user's upvote on one profile comment. The
// unique (user, comment) index is what enforces at-most-one-vote-per-user.
type UserCommentVote struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID        string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_votes_user_comment"`
	UserCommentID string    `json:"user_comment_id" gorm:"type:uuid;not null;uniqueIndex:idx_votes_user_comment;index"`
	Value         int       `json:"value" gorm:"not null;default:1"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (v *UserCommentVote) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

func (UserCommentVote) TableName() string {
	return "user_comment_votes"
}
