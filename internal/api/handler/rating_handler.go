package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/viftode4/Spotify-Ranker/internal/api/dto"
	"github.com/viftode4/Spotify-Ranker/internal/api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRoutes registers album rating routes
func (h *RatingHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/albums/:album_id/ratings/average", h.GetAverage)
	protected.POST("/albums/:album_id/ratings", h.CreateOrUpdate)
}

// CreateOrUpdate upserts the caller's rating for an album
// POST /api/albums/:album_id/ratings
func (h *RatingHandler) CreateOrUpdate(c *gin.Context) {
	albumID, err := strconv.ParseInt(c.Param("album_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid album ID"})
		return
	}

	userID := c.GetString("userID")

	var req dto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.RateAlbum(c.Request.Context(), userID, albumID, req.Score)
	if err != nil {
		if errors.Is(err, service.ErrAlbumNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// GetAverage returns the album's mean score and rating count
// GET /api/albums/:album_id/ratings/average
func (h *RatingHandler) GetAverage(c *gin.Context) {
	albumID, err := strconv.ParseInt(c.Param("album_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid album ID"})
		return
	}

	avg, err := h.ratingService.GetAverage(c.Request.Context(), albumID)
	if err != nil {
		if errors.Is(err, service.ErrAlbumNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, avg)
}
