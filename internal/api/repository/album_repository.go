package repository

import (
	"context"
	"fmt"

	"github.com/viftode4/Spotify-Ranker/internal/api/models"

	"gorm.io/gorm"
)

type AlbumRepository interface {
	GetAll(ctx context.Context) ([]models.Album, error)
	GetByID(ctx context.Context, id int64) (*models.Album, error)
	GetDetailed(ctx context.Context, id int64) (*models.Album, error)
	GetBySpotifyID(ctx context.Context, spotifyID string) (*models.Album, error)
	Create(ctx context.Context, album *models.Album) error
	Delete(ctx context.Context, id int64) error
}

type albumRepository struct {
	db *gorm.DB
}

func NewAlbumRepository(db *gorm.DB) AlbumRepository {
	return &albumRepository{db: db}
}

// GetAll returns every album with its ratings inline, newest first. The
// ratings ride along so callers can compute means without a second query.
func (r *albumRepository) GetAll(ctx context.Context) ([]models.Album, error) {
	var list []models.Album
	if err := r.db.WithContext(ctx).
		Preload("Ratings").
		Order("created_at desc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	return list, nil
}

func (r *albumRepository) GetByID(ctx context.Context, id int64) (*models.Album, error) {
	var album models.Album
	if err := r.db.WithContext(ctx).First(&album, id).Error; err != nil {
		return nil, err
	}
	return &album, nil
}

// GetDetailed loads an album with tracks in position order, ratings with
// their users, and comments with their users newest first.
func (r *albumRepository) GetDetailed(ctx context.Context, id int64) (*models.Album, error) {
	var album models.Album
	err := r.db.WithContext(ctx).
		Preload("Tracks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tracks.number asc")
		}).
		Preload("Ratings.User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at desc")
		}).
		Preload("Comments.User").
		First(&album, id).Error
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *albumRepository) GetBySpotifyID(ctx context.Context, spotifyID string) (*models.Album, error) {
	var album models.Album
	if err := r.db.WithContext(ctx).Where("spotify_id = ?", spotifyID).First(&album).Error; err != nil {
		return nil, err
	}
	return &album, nil
}

// Create persists the album together with its tracks in one insert.
func (r *albumRepository) Create(ctx context.Context, album *models.Album) error {
	if err := r.db.WithContext(ctx).Create(album).Error; err != nil {
		return fmt.Errorf("create album: %w", err)
	}
	return nil
}

// Delete removes the album; tracks, ratings and comments cascade with it.
func (r *albumRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Select("Tracks", "Ratings", "Comments").Delete(&models.Album{ID: id})
	if result.Error != nil {
		return fmt.Errorf("delete album: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
