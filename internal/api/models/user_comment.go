package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserComment is a short (max 20 chars) note on another user's profile.
// Resubmitting replaces the content and wipes the vote state.
type UserComment struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Content     string    `json:"content" gorm:"not null;size:20"`
	Votes       int       `json:"votes" gorm:"not null;default:0"`
	RaterUserID string    `json:"rater_user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_comments_pair"`
	RatedUserID string    `json:"rated_user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_comments_pair;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	RaterUser User              `json:"rater_user,omitempty" gorm:"foreignKey:RaterUserID;constraint:OnDelete:CASCADE;"`
	RatedUser User              `json:"-" gorm:"foreignKey:RatedUserID;constraint:OnDelete:CASCADE;"`
	UserVotes []UserCommentVote `json:"user_votes,omitempty" gorm:"foreignKey:UserCommentID;constraint:OnDelete:CASCADE;"`
}

func (uc *UserComment) BeforeCreate(tx *gorm.DB) (err error) {
	if uc.ID == "" {
		uc.ID = uuid.New().String()
	}
	return nil
}

func (UserComment) TableName() string {
	return "user_comments"
}
