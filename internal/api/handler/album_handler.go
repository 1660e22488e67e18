package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/viftode4/Spotify-Ranker/internal/api/dto"
	"github.com/viftode4/Spotify-Ranker/internal/api/service"
	"github.com/viftode4/Spotify-Ranker/internal/spotify"

	"github.com/gin-gonic/gin"
)

type AlbumHandler struct {
	albumService service.AlbumService
}

func NewAlbumHandler(albumService service.AlbumService) *AlbumHandler {
	return &AlbumHandler{albumService: albumService}
}

// RegisterRoutes registers album routes. Reads go on the public group,
// mutations and the catalog proxy on the authenticated one.
func (h *AlbumHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/albums", h.List)
	public.GET("/albums/:album_id", h.Get)

	protected.POST("/albums", h.Create)
	protected.DELETE("/albums/:album_id", h.Delete)
	protected.GET("/spotify/search", h.SearchCatalog)
}

// List returns every album with ratings inline, newest first
// GET /api/albums
func (h *AlbumHandler) List(c *gin.Context) {
	albums, err := h.albumService.ListAlbums(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, albums)
}

// Get returns one album with tracks, ratings and comments
// GET /api/albums/:album_id
func (h *AlbumHandler) Get(c *gin.Context) {
	albumID, err := strconv.ParseInt(c.Param("album_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid album ID"})
		return
	}

	// Anonymous requesters get an empty ID and see no hidden comments.
	requesterID := c.GetString("userID")

	album, err := h.albumService.GetAlbum(c.Request.Context(), albumID, requesterID)
	if err != nil {
		if errors.Is(err, service.ErrAlbumNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, album)
}

// Create imports an album from the Spotify catalog
// POST /api/albums
func (h *AlbumHandler) Create(c *gin.Context) {
	var req dto.CreateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userID")

	album, err := h.albumService.CreateAlbum(c.Request.Context(), req.SpotifyID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlbumExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, spotify.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "catalog lookup failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, album)
}

// Delete removes an album (creator or admin)
// DELETE /api/albums/:album_id
func (h *AlbumHandler) Delete(c *gin.Context) {
	albumID, err := strconv.ParseInt(c.Param("album_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid album ID"})
		return
	}

	userID := c.GetString("userID")
	isAdmin := c.GetBool("isAdmin")

	if err := h.albumService.DeleteAlbum(c.Request.Context(), albumID, userID, isAdmin); err != nil {
		switch {
		case errors.Is(err, service.ErrAlbumNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the creator or an admin can delete an album"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "album deleted"})
}

// SearchCatalog proxies an album search to the Spotify catalog
// GET /api/spotify/search?q=
func (h *AlbumHandler) SearchCatalog(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing search query"})
		return
	}

	results, err := h.albumService.SearchCatalog(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog search failed"})
		return
	}

	c.JSON(http.StatusOK, results)
}
