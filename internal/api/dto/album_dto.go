package dto

import (
	"time"

	"github.com/viftode4/Spotify-Ranker/internal/api/models"
	"github.com/viftode4/Spotify-Ranker/internal/rank"
)

// CreateAlbumRequest imports an album from the catalog by its Spotify id.
type CreateAlbumRequest struct {
	SpotifyID string `json:"spotify_id" binding:"required"`
}

// AlbumResponse is the list-view shape: ratings ride along so clients can
// recompute means locally after an optimistic update.
type AlbumResponse struct {
	ID            int64            `json:"id"`
	SpotifyID     string           `json:"spotify_id"`
	Name          string           `json:"name"`
	Artist        string           `json:"artist"`
	ImageURL      string           `json:"image_url"`
	ReleaseDate   string           `json:"release_date"`
	CreatedAt     time.Time        `json:"created_at"`
	AverageRating float64          `json:"average_rating"`
	RatingCount   int              `json:"rating_count"`
	Ratings       []RatingResponse `json:"ratings"`
}

func FromModelToAlbumResponse(album *models.Album) *AlbumResponse {
	ratings := make([]RatingResponse, 0, len(album.Ratings))
	for i := range album.Ratings {
		ratings = append(ratings, *FromModelToRatingResponse(&album.Ratings[i]))
	}

	return &AlbumResponse{
		ID:            album.ID,
		SpotifyID:     album.SpotifyID,
		Name:          album.Name,
		Artist:        album.Artist,
		ImageURL:      album.ImageURL,
		ReleaseDate:   album.ReleaseDate,
		CreatedAt:     album.CreatedAt,
		AverageRating: rank.Round1(rank.Average(album.Scores())),
		RatingCount:   len(album.Ratings),
		Ratings:       ratings,
	}
}

// TrackResponse for a single album track
type TrackResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	DurationMS int    `json:"duration_ms"`
	Number     int    `json:"number"`
}

// AlbumDetailResponse is the single-album view with tracks and comments.
type AlbumDetailResponse struct {
	AlbumResponse
	Tracks   []TrackResponse   `json:"tracks"`
	Comments []CommentResponse `json:"comments"`
}

// FromModelToAlbumDetailResponse shapes an album for its page. Hidden
// comments are stripped unless the requester authored them.
func FromModelToAlbumDetailResponse(album *models.Album, requesterID string) *AlbumDetailResponse {
	tracks := make([]TrackResponse, 0, len(album.Tracks))
	for _, t := range album.Tracks {
		tracks = append(tracks, TrackResponse{
			ID:         t.ID,
			Name:       t.Name,
			DurationMS: t.DurationMS,
			Number:     t.Number,
		})
	}

	comments := make([]CommentResponse, 0, len(album.Comments))
	for i := range album.Comments {
		c := &album.Comments[i]
		if c.Status == models.CommentHidden && c.UserID != requesterID {
			continue
		}
		comments = append(comments, *FromModelToCommentResponse(c))
	}

	return &AlbumDetailResponse{
		AlbumResponse: *FromModelToAlbumResponse(album),
		Tracks:        tracks,
		Comments:      comments,
	}
}
