package models

import "time"

// Album is imported once from the Spotify catalog; title, artist and tracks
// never change after creation.
type Album struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	SpotifyID   string    `json:"spotify_id" gorm:"uniqueIndex;not null"`
	Name        string    `json:"name" gorm:"not null"`
	Artist      string    `json:"artist" gorm:"not null"`
	ImageURL    string    `json:"image_url"`
	ReleaseDate string    `json:"release_date"`
	CreatedByID *string   `json:"created_by_id,omitempty" gorm:"type:uuid;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Tracks   []Track   `json:"tracks,omitempty" gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE;"`
	Ratings  []Rating  `json:"ratings,omitempty" gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE;"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE;"`
}

func (Album) TableName() string {
	return "albums"
}

// Scores collects the raw rating values, satisfying rank.Rated.
func (a Album) Scores() []int {
	scores := make([]int, 0, len(a.Ratings))
	for _, r := range a.Ratings {
		scores = append(scores, r.Score)
	}
	return scores
}
