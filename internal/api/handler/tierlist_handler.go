package handler

import (
	"net/http"

	"github.com/viftode4/Spotify-Ranker/internal/api/service"

	"github.com/gin-gonic/gin"
)

type TierListHandler struct {
	tierListService service.TierListService
}

func NewTierListHandler(tierListService service.TierListService) *TierListHandler {
	return &TierListHandler{tierListService: tierListService}
}

// RegisterRoutes registers the tier list route
func (h *TierListHandler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/tierlist", h.Get)
}

// Get returns the S..F tier groups over all rated albums
// GET /api/tierlist
func (h *TierListHandler) Get(c *gin.Context) {
	groups, err := h.tierListService.GetTierList(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, groups)
}
