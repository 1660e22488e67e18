package service

import (
	"context"
	"errors"
	"time"

	"github.com/viftode4/Spotify-Ranker/internal/api/dto"
	"github.com/viftode4/Spotify-Ranker/internal/api/models"
	"github.com/viftode4/Spotify-Ranker/internal/api/repository"
	"github.com/viftode4/Spotify-Ranker/internal/cache"
	"github.com/viftode4/Spotify-Ranker/internal/spotify"

	"gorm.io/gorm"
)

var (
	ErrAlbumNotFound = errors.New("album not found")
	ErrAlbumExists   = errors.New("album already added")
)

type AlbumService interface {
	ListAlbums(ctx context.Context) ([]dto.AlbumResponse, error)
	GetAlbum(ctx context.Context, id int64, requesterID string) (*dto.AlbumDetailResponse, error)
	CreateAlbum(ctx context.Context, spotifyID, creatorID string) (*dto.AlbumResponse, error)
	DeleteAlbum(ctx context.Context, id int64, requesterID string, isAdmin bool) error
	SearchCatalog(ctx context.Context, query string) ([]spotify.Album, error)
}

type albumService struct {
	albumRepo repository.AlbumRepository
	catalog   *spotify.Client
	cache     *cache.Cache
	cacheTTL  time.Duration
}

func NewAlbumService(albumRepo repository.AlbumRepository, catalog *spotify.Client, c *cache.Cache, ttl time.Duration) AlbumService {
	return &albumService{
		albumRepo: albumRepo,
		catalog:   catalog,
		cache:     c,
		cacheTTL:  ttl,
	}
}

// ListAlbums returns every album with its ratings inline, newest first.
// The whole listing is cached under one global key.
func (s *albumService) ListAlbums(ctx context.Context) ([]dto.AlbumResponse, error) {
	return cache.GetOrFetch(ctx, s.cache, cacheKeyAlbums, s.cacheTTL, func(ctx context.Context) ([]dto.AlbumResponse, error) {
		albums, err := s.albumRepo.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		responses := make([]dto.AlbumResponse, 0, len(albums))
		for i := range albums {
			responses = append(responses, *dto.FromModelToAlbumResponse(&albums[i]))
		}
		return responses, nil
	})
}

// GetAlbum loads a single album with tracks, ratings and comments. Hidden
// comments are visible only to their author, so the result is per-requester
// and never cached.
func (s *albumService) GetAlbum(ctx context.Context, id int64, requesterID string) (*dto.AlbumDetailResponse, error) {
	album, err := s.albumRepo.GetDetailed(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlbumNotFound
		}
		return nil, err
	}
	return dto.FromModelToAlbumDetailResponse(album, requesterID), nil
}

// CreateAlbum imports an album from the Spotify catalog, tracks included.
func (s *albumService) CreateAlbum(ctx context.Context, spotifyID, creatorID string) (*dto.AlbumResponse, error) {
	if _, err := s.albumRepo.GetBySpotifyID(ctx, spotifyID); err == nil {
		return nil, ErrAlbumExists
	}

	detail, err := s.catalog.GetAlbum(ctx, spotifyID)
	if err != nil {
		return nil, err
	}

	tracks := make([]models.Track, 0, len(detail.Tracks))
	for _, t := range detail.Tracks {
		tracks = append(tracks, models.Track{
			Name:       t.Name,
			DurationMS: t.DurationMS,
			Number:     t.Number,
		})
	}

	album := &models.Album{
		SpotifyID:   detail.SpotifyID,
		Name:        detail.Name,
		Artist:      detail.Artist,
		ImageURL:    detail.ImageURL,
		ReleaseDate: detail.ReleaseDate,
		CreatedByID: &creatorID,
		Tracks:      tracks,
	}
	if err := s.albumRepo.Create(ctx, album); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cacheKeyAlbums)
	s.cache.Invalidate(ctx, cacheKeyTierList)

	return dto.FromModelToAlbumResponse(album), nil
}

// DeleteAlbum removes an album and everything hanging off it. Only the user
// who added the album, or an admin, may delete it.
func (s *albumService) DeleteAlbum(ctx context.Context, id int64, requesterID string, isAdmin bool) error {
	album, err := s.albumRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAlbumNotFound
		}
		return err
	}

	if !isAdmin {
		if album.CreatedByID == nil || *album.CreatedByID != requesterID {
			return ErrForbidden
		}
	}

	if err := s.albumRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAlbumNotFound
		}
		return err
	}

	s.cache.Invalidate(ctx, cacheKeyAlbums)
	s.cache.Invalidate(ctx, cacheKeyTierList)
	return nil
}

// SearchCatalog proxies an album search to the Spotify catalog.
func (s *albumService) SearchCatalog(ctx context.Context, query string) ([]spotify.Album, error) {
	return s.catalog.Search(ctx, query)
}
