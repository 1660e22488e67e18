package service

import (
	"context"
	"time"

	"github.com/viftode4/Spotify-Ranker/internal/api/dto"
	"github.com/viftode4/Spotify-Ranker/internal/api/models"
	"github.com/viftode4/Spotify-Ranker/internal/api/repository"
	"github.com/viftode4/Spotify-Ranker/internal/cache"
	"github.com/viftode4/Spotify-Ranker/internal/rank"
)

type TierListService interface {
	GetTierList(ctx context.Context) ([]dto.TierGroupResponse, error)
}

type tierListService struct {
	albumRepo repository.AlbumRepository
	cache     *cache.Cache
	cacheTTL  time.Duration
}

func NewTierListService(albumRepo repository.AlbumRepository, c *cache.Cache, ttl time.Duration) TierListService {
	return &tierListService{
		albumRepo: albumRepo,
		cache:     c,
		cacheTTL:  ttl,
	}
}

// GetTierList buckets every rated album into the fixed S..F bands by mean
// score. Unrated albums are left out. The whole structure is cached globally
// and invalidated whenever albums or ratings change.
func (s *tierListService) GetTierList(ctx context.Context) ([]dto.TierGroupResponse, error) {
	return cache.GetOrFetch(ctx, s.cache, cacheKeyTierList, s.cacheTTL, func(ctx context.Context) ([]dto.TierGroupResponse, error) {
		albums, err := s.albumRepo.GetAll(ctx)
		if err != nil {
			return nil, err
		}

		// GetAll returns newest first; the tier list reads better in catalogue
		// insertion order.
		ordered := make([]models.Album, len(albums))
		for i := range albums {
			ordered[len(albums)-1-i] = albums[i]
		}

		groups := rank.BuildTierList(ordered)
		responses := make([]dto.TierGroupResponse, 0, len(groups))
		for _, g := range groups {
			entry := dto.TierGroupResponse{
				Tier:   g.Name,
				Albums: make([]dto.TierAlbumResponse, 0, len(g.Entries)),
			}
			for _, e := range g.Entries {
				entry.Albums = append(entry.Albums, dto.TierAlbumResponse{
					ID:            e.Item.ID,
					SpotifyID:     e.Item.SpotifyID,
					Name:          e.Item.Name,
					Artist:        e.Item.Artist,
					ImageURL:      e.Item.ImageURL,
					AverageRating: rank.Round1(e.Mean),
					RatingCount:   len(e.Item.Ratings),
				})
			}
			responses = append(responses, entry)
		}
		return responses, nil
	})
}
