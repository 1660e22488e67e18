package dto

import (
	"time"

	"github.com/viftode4/Spotify-Ranker/internal/api/models"
)

// UpsertUserRatingRequest for rating another user (or yourself)
type UpsertUserRatingRequest struct {
	Score int `json:"score" binding:"required,min=1,max=10"`
}

// UserRatingResponse for returning a user-to-user rating
type UserRatingResponse struct {
	ID        string    `json:"id"`
	Score     int       `json:"score"`
	Rater     UserRef   `json:"rater"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToUserRatingResponse converts a UserRating model to its DTO
func FromModelToUserRatingResponse(rating *models.UserRating) *UserRatingResponse {
	return &UserRatingResponse{
		ID:        rating.ID,
		Score:     rating.Score,
		Rater:     FromModelToUserRef(&rating.RaterUser),
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}
