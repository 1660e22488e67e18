package models

// Track is created atomically with its Album and never mutated.
type Track struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	AlbumID    int64  `json:"album_id" gorm:"not null;index"`
	Name       string `json:"name" gorm:"not null"`
	DurationMS int    `json:"duration_ms"`
	Number     int    `json:"number" gorm:"not null"`
}

func (Track) TableName() string {
	return "tracks"
}
