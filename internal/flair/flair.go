// Package flair derives profile badges from the ratings and comments a user
// has received. Derivation is read-only and recomputed per request; results
// are only ever cached at the response-cache layer.
package flair

// Badge labels. A user's top-voted profile comment is additionally rendered
// as a badge carrying its literal text.
const (
	EchoWarrior = "Echo Warrior" // the user rated themselves
	Shukar      = "Shukar"       // the user's self-comment is the top-voted one
	Dubios      = "Dubios"       // the user self-commented but someone else's is on top
	FanNane     = "Fan Nane"     // nothing else applied
)

// Comment is a received profile comment as the deriver sees it.
type Comment struct {
	Content string
	RaterID string
	Votes   int
}

// Derive evaluates the badge rules in priority order. selfRated reports
// whether any received rating came from the user themself. comments must be
// ordered by votes descending; on equal vote counts the backing store's
// ordering decides which comment counts as top, which is deliberately left
// unspecified.
func Derive(userID string, selfRated bool, comments []Comment) []string {
	var flairs []string

	if selfRated {
		flairs = append(flairs, EchoWarrior)
	}

	if len(comments) > 0 {
		top := comments[0]
		flairs = append(flairs, top.Content)

		selfCommented := false
		for _, c := range comments {
			if c.RaterID == userID {
				selfCommented = true
				break
			}
		}
		if selfCommented {
			if top.RaterID == userID {
				flairs = append(flairs, Shukar)
			} else {
				flairs = append(flairs, Dubios)
			}
		}
	}

	if len(flairs) == 0 {
		flairs = append(flairs, FanNane)
	}
	return flairs
}
