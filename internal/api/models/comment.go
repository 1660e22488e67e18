package models

import "time"

// Comment visibility states. Hiding is a soft delete: content persists but is
// excluded from default listings except to its own author.
const (
	CommentVisible = "visible"
	CommentHidden  = "hidden"
)

type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	AlbumID   int64     `json:"album_id" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"not null;type:text"`
	Status    string    `json:"status" gorm:"not null;default:'visible'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Album Album `json:"album,omitempty" gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE;"`
}

func (Comment) TableName() string {
	return "comments"
}
