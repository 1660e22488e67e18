package service

import (
	"context"
	"errors"

	"github.com/viftode4/Spotify-Ranker/internal/api/dto"
	"github.com/viftode4/Spotify-Ranker/internal/api/models"
	"github.com/viftode4/Spotify-Ranker/internal/api/repository"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentService interface {
	CreateComment(ctx context.Context, userID string, albumID int64, content string) (*dto.CommentResponse, error)
	HideComment(ctx context.Context, commentID int64, requesterID string, isAdmin bool) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	albumRepo   repository.AlbumRepository
}

func NewCommentService(commentRepo repository.CommentRepository, albumRepo repository.AlbumRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		albumRepo:   albumRepo,
	}
}

// CreateComment posts a comment on an album. Comments are never edited, only
// hidden.
func (s *commentService) CreateComment(ctx context.Context, userID string, albumID int64, content string) (*dto.CommentResponse, error) {
	if _, err := s.albumRepo.GetByID(ctx, albumID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlbumNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		UserID:  userID,
		AlbumID: albumID,
		Content: content,
		Status:  models.CommentVisible,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	// Reload with the user for the response.
	created, err := s.commentRepo.GetByID(comment.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToCommentResponse(created), nil
}

// HideComment soft-deletes a comment. Only the author or an admin may hide;
// hiding an already hidden comment is a no-op.
func (s *commentService) HideComment(ctx context.Context, commentID int64, requesterID string, isAdmin bool) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if !isAdmin && comment.UserID != requesterID {
		return ErrForbidden
	}

	if comment.Status == models.CommentHidden {
		return nil
	}

	if err := s.commentRepo.Hide(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}
