package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRating is a 1-10 score one user gives another. Self-rating is allowed
// and feeds the flair rules.
type UserRating struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Score       int       `json:"score" gorm:"not null;check:score >= 1 AND score <= 10"`
	RaterUserID string    `json:"rater_user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_ratings_pair"`
	RatedUserID string    `json:"rated_user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_ratings_pair;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	RaterUser User `json:"rater_user,omitempty" gorm:"foreignKey:RaterUserID;constraint:OnDelete:CASCADE;"`
	RatedUser User `json:"-" gorm:"foreignKey:RatedUserID;constraint:OnDelete:CASCADE;"`
}

func (ur *UserRating) BeforeCreate(tx *gorm.DB) (err error) {
	if ur.ID == "" {
		ur.ID = uuid.New().String()
	}
	return nil
}

func (UserRating) TableName() string {
	return "user_ratings"
}
