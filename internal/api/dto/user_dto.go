package dto

import "github.com/viftode4/Spotify-Ranker/internal/api/models"

// UserRef is the slim user shape embedded in ratings, comments and feed
// entries.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

func FromModelToUserRef(user *models.User) UserRef {
	ref := UserRef{ID: user.ID, Name: user.Name}
	if user.Image != nil {
		ref.Image = *user.Image
	}
	return ref
}

// AvatarResponse aggregates a user's public profile card: identity, received
// rating mean (one decimal, absent when unrated), and derived flairs.
type AvatarResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Image         string   `json:"image,omitempty"`
	AverageRating *float64 `json:"average_rating"`
	RatingCount   int      `json:"rating_count"`
	Flairs        []string `json:"flairs"`
}
