package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/viftode4/Spotify-Ranker/internal/api/dto"
	"github.com/viftode4/Spotify-Ranker/internal/api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterRoutes registers album comment routes
func (h *CommentHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	protected.POST("/albums/:album_id/comments", h.Create)
	protected.PUT("/comments/:comment_id/hide", h.Hide)
}

// Create posts a comment on an album
// POST /api/albums/:album_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	albumID, err := strconv.ParseInt(c.Param("album_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid album ID"})
		return
	}

	userID := c.GetString("userID")

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), userID, albumID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrAlbumNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// Hide soft-deletes a comment (author or admin)
// PUT /api/comments/:comment_id/hide
func (h *CommentHandler) Hide(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment ID"})
		return
	}

	userID := c.GetString("userID")
	isAdmin := c.GetBool("isAdmin")

	if err := h.commentService.HideComment(c.Request.Context(), commentID, userID, isAdmin); err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the author or an admin can hide a comment"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment hidden"})
}
