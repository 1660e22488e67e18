package dto

import (
	"time"

	"github.com/viftode4/Spotify-Ranker/internal/api/models"
	"github.com/viftode4/Spotify-Ranker/internal/feed"
)

// AlbumRef is the slim album shape embedded in feed entries.
type AlbumRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Artist   string `json:"artist"`
	ImageURL string `json:"image_url"`
}

// ActivityItemResponse is a tagged feed entry: exactly one of Rating or
// Comment is set, matching Type.
type ActivityItemResponse struct {
	ID        string                   `json:"id"`
	Type      string                   `json:"type"`
	CreatedAt time.Time                `json:"created_at"`
	Rating    *RatingActivityResponse  `json:"rating,omitempty"`
	Comment   *CommentActivityResponse `json:"comment,omitempty"`
}

// RatingActivityResponse is the rating payload of a feed entry
type RatingActivityResponse struct {
	Score int      `json:"score"`
	User  UserRef  `json:"user"`
	Album AlbumRef `json:"album"`
}

// CommentActivityResponse is the comment payload of a feed entry
type CommentActivityResponse struct {
	Content string   `json:"content"`
	Status  string   `json:"status"`
	User    UserRef  `json:"user"`
	Album   AlbumRef `json:"album"`
}

// ActivityPageResponse is one page of the merged feed
type ActivityPageResponse struct {
	Items []ActivityItemResponse `json:"items"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}

func fromFeedUser(u feed.UserRef) UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Image: u.Image}
}

func fromFeedAlbum(a feed.AlbumRef) AlbumRef {
	return AlbumRef{ID: a.ID, Name: a.Name, Artist: a.Artist, ImageURL: a.ImageURL}
}

// FromFeedItem converts a merged feed item to its response shape
func FromFeedItem(item feed.Item) ActivityItemResponse {
	resp := ActivityItemResponse{
		ID:        item.ID,
		Type:      string(item.Kind),
		CreatedAt: item.CreatedAt,
	}
	if item.Rating != nil {
		resp.Rating = &RatingActivityResponse{
			Score: item.Rating.Score,
			User:  fromFeedUser(item.Rating.User),
			Album: fromFeedAlbum(item.Rating.Album),
		}
	}
	if item.Comment != nil {
		resp.Comment = &CommentActivityResponse{
			Content: item.Comment.Content,
			Status:  item.Comment.Status,
			User:    fromFeedUser(item.Comment.User),
			Album:   fromFeedAlbum(item.Comment.Album),
		}
	}
	return resp
}

// FeedItemFromRating maps a rating row into the merge-ready feed shape
func FeedItemFromRating(r *models.Rating) feed.Item {
	return feed.Item{
		ID:        feed.RatingID(r.ID),
		Kind:      feed.KindRating,
		CreatedAt: r.CreatedAt,
		Rating: &feed.RatingActivity{
			Score: r.Score,
			User:  feedUserRef(&r.User),
			Album: feedAlbumRef(&r.Album),
		},
	}
}

// FeedItemFromComment maps a comment row into the merge-ready feed shape
func FeedItemFromComment(c *models.Comment) feed.Item {
	return feed.Item{
		ID:        feed.CommentID(c.ID),
		Kind:      feed.KindComment,
		CreatedAt: c.CreatedAt,
		Comment: &feed.CommentActivity{
			Content: c.Content,
			Status:  c.Status,
			User:    feedUserRef(&c.User),
			Album:   feedAlbumRef(&c.Album),
		},
	}
}

func feedUserRef(u *models.User) feed.UserRef {
	ref := feed.UserRef{ID: u.ID, Name: u.Name}
	if u.Image != nil {
		ref.Image = *u.Image
	}
	return ref
}

func feedAlbumRef(a *models.Album) feed.AlbumRef {
	return feed.AlbumRef{ID: a.ID, Name: a.Name, Artist: a.Artist, ImageURL: a.ImageURL}
}
