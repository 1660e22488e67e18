package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/viftode4/Spotify-Ranker/internal/api/service"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityService service.ActivityService
}

func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// RegisterRoutes registers the global feed route
func (h *ActivityHandler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/activity", h.GetGlobalFeed)
}

// GetGlobalFeed returns one page of the merged site-wide feed
// GET /api/activity?page=1&limit=20&type=all|ratings|comments
func (h *ActivityHandler) GetGlobalFeed(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	feedType := c.DefaultQuery("type", service.FeedAll)

	feedPage, err := h.activityService.GetGlobalFeed(c.Request.Context(), page, limit, feedType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFeedType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, feedPage)
}
