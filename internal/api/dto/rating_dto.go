package dto

import (
	"time"

	"github.com/viftode4/Spotify-Ranker/internal/api/models"
)

// CreateRatingRequest for creating or updating an album rating
type CreateRatingRequest struct {
	Score int `json:"score" binding:"required,min=1,max=10"`
}

// RatingResponse for returning rating information
type RatingResponse struct {
	ID        int64     `json:"id"`
	Score     int       `json:"score"`
	User      UserRef   `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO
func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		ID:        rating.ID,
		Score:     rating.Score,
		User:      FromModelToUserRef(&rating.User),
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}

// AverageRatingResponse for the album average endpoint
type AverageRatingResponse struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}
