package dto

// TierGroupResponse is one band of the tier list with its member albums in
// catalogue insertion order.
type TierGroupResponse struct {
	Tier   string              `json:"tier"`
	Albums []TierAlbumResponse `json:"albums"`
}

// TierAlbumResponse is an album entry inside a tier band
type TierAlbumResponse struct {
	ID            int64   `json:"id"`
	SpotifyID     string  `json:"spotify_id"`
	Name          string  `json:"name"`
	Artist        string  `json:"artist"`
	ImageURL      string  `json:"image_url"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int     `json:"rating_count"`
}
