// Package feed merges heterogeneous activity streams (album ratings and
// album comments) into a single chronological feed.
package feed

import (
	"strconv"
	"time"
)

type Kind string

const (
	KindRating  Kind = "rating"
	KindComment Kind = "comment"
)

// UserRef identifies the acting user on a feed entry.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// AlbumRef identifies the album a feed entry targets.
type AlbumRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Artist   string `json:"artist"`
	ImageURL string `json:"image_url,omitempty"`
}

// RatingActivity is the payload of a rating feed entry.
type RatingActivity struct {
	Score int      `json:"score"`
	User  UserRef  `json:"user"`
	Album AlbumRef `json:"album"`
}

// CommentActivity is the payload of a comment feed entry.
type CommentActivity struct {
	Content string   `json:"content"`
	Status  string   `json:"status,omitempty"`
	User    UserRef  `json:"user"`
	Album   AlbumRef `json:"album"`
}

// Item is a tagged variant: Kind names which payload pointer is set, the
// other is always nil. Consumers switch on Kind rather than type-asserting.
type Item struct {
	ID        string           `json:"id"`
	Kind      Kind             `json:"type"`
	CreatedAt time.Time        `json:"created_at"`
	Rating    *RatingActivity  `json:"rating,omitempty"`
	Comment   *CommentActivity `json:"comment,omitempty"`
}

// RatingID builds the feed-wide unique id for a rating entry. Ratings and
// comments have independent numeric ids, so each kind gets its own prefix.
func RatingID(id int64) string { return "rating-" + strconv.FormatInt(id, 10) }

// CommentID builds the feed-wide unique id for a comment entry.
func CommentID(id int64) string { return "comment-" + strconv.FormatInt(id, 10) }

// Merge combines two streams that are each already ordered by CreatedAt
// descending into one descending stream. The merge is stable: on equal
// timestamps items from a win, so callers pass ratings as a to keep the
// rating-before-comment tie order.
func Merge(a, b []Item) []Item {
	out := make([]Item, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if b[j].CreatedAt.After(a[i].CreatedAt) {
			out = append(out, b[j])
			j++
		} else {
			out = append(out, a[i])
			i++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Page slices the merged feed with skip/take pagination. Out-of-range skip
// yields an empty slice, never a panic.
func Page(items []Item, skip, take int) []Item {
	if skip < 0 {
		skip = 0
	}
	if take < 0 {
		take = 0
	}
	if skip >= len(items) {
		return []Item{}
	}
	end := skip + take
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}
