package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto HTTP
// status codes; anything else is a 500.
var (
	ErrForbidden    = errors.New("forbidden")
	ErrUserNotFound = errors.New("user not found")
)

// Cache keys for the response cache. Album and tier list entries are global;
// avatar entries are per user.
const (
	cacheKeyAlbums   = "albums"
	cacheKeyTierList = "tierlist"
)

func avatarCacheKey(userID string) string {
	return "avatar:" + userID
}
