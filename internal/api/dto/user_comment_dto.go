package dto

import (
	"time"

	"github.com/viftode4/Spotify-Ranker/internal/api/models"
)

// UpsertUserCommentRequest for leaving a short note on a profile. Resubmitting
// replaces the existing note and resets its votes.
type UpsertUserCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=20"`
}

// UpvoteRequest toggles a vote on a profile note. Remove true retracts the
// caller's vote instead of adding one.
type UpvoteRequest struct {
	Remove bool `json:"remove"`
}

// UserCommentResponse for returning a profile note with its vote state
type UserCommentResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Votes     int       `json:"votes"`
	UpvotedBy []string  `json:"upvoted_by"`
	Upvoted   bool      `json:"upvoted"`
	Rater     UserRef   `json:"rater"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToUserCommentResponse converts a UserComment model to its DTO.
// Upvoted reflects whether viewerID is among the comment's voters.
func FromModelToUserCommentResponse(comment *models.UserComment, viewerID string) *UserCommentResponse {
	upvotedBy := make([]string, 0, len(comment.UserVotes))
	upvoted := false
	for _, v := range comment.UserVotes {
		upvotedBy = append(upvotedBy, v.UserID)
		if v.UserID == viewerID {
			upvoted = true
		}
	}

	return &UserCommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		Votes:     comment.Votes,
		UpvotedBy: upvotedBy,
		Upvoted:   upvoted,
		Rater:     FromModelToUserRef(&comment.RaterUser),
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}
