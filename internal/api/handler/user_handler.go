package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/viftode4/Spotify-Ranker/internal/api/dto"
	"github.com/viftode4/Spotify-Ranker/internal/api/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the social side of a profile: received ratings, profile
// notes with votes, the activity feed and the avatar card.
type UserHandler struct {
	userRatingService  service.UserRatingService
	userCommentService service.UserCommentService
	activityService    service.ActivityService
	avatarService      service.AvatarService
}

func NewUserHandler(
	userRatingService service.UserRatingService,
	userCommentService service.UserCommentService,
	activityService service.ActivityService,
	avatarService service.AvatarService,
) *UserHandler {
	return &UserHandler{
		userRatingService:  userRatingService,
		userCommentService: userCommentService,
		activityService:    activityService,
		avatarService:      avatarService,
	}
}

// RegisterRoutes registers user profile routes
func (h *UserHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/users/:user_id/avatar", h.GetAvatar)
	public.GET("/users/:user_id/activity", h.GetActivity)
	public.GET("/users/:user_id/ratings", h.ListRatings)
	public.GET("/users/:user_id/comments", h.ListComments)

	protected.POST("/users/:user_id/ratings", h.RateUser)
	protected.POST("/users/:user_id/comments", h.UpsertComment)
	protected.DELETE("/users/ratings/:rating_id", h.DeleteRating)
	protected.DELETE("/users/comments/:comment_id", h.DeleteComment)
	protected.POST("/users/comments/:comment_id/upvote", h.Vote)
}

// GetAvatar returns the profile card: name, image, rounded received mean,
// rating count and flairs
// GET /api/users/:user_id/avatar
func (h *UserHandler) GetAvatar(c *gin.Context) {
	userID := c.Param("user_id")

	avatar, err := h.avatarService.GetAvatar(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, avatar)
}

// GetActivity returns a user's newest album ratings and comments
// GET /api/users/:user_id/activity?limit=20&type=all|ratings|comments
func (h *UserHandler) GetActivity(c *gin.Context) {
	userID := c.Param("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	feedType := c.DefaultQuery("type", service.FeedAll)

	requesterID := c.GetString("userID")

	items, err := h.activityService.GetUserFeed(c.Request.Context(), userID, requesterID, limit, feedType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidFeedType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, items)
}

// ListRatings returns the ratings a user has received, newest first
// GET /api/users/:user_id/ratings
func (h *UserHandler) ListRatings(c *gin.Context) {
	userID := c.Param("user_id")

	ratings, err := h.userRatingService.ListReceived(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ratings)
}

// RateUser upserts the caller's rating of another user (self-rating allowed)
// POST /api/users/:user_id/ratings
func (h *UserHandler) RateUser(c *gin.Context) {
	ratedID := c.Param("user_id")
	raterID := c.GetString("userID")

	var req dto.UpsertUserRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.userRatingService.RateUser(c.Request.Context(), raterID, ratedID, req.Score)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// DeleteRating removes a user-to-user rating (rater or admin)
// DELETE /api/users/ratings/:rating_id
func (h *UserHandler) DeleteRating(c *gin.Context) {
	ratingID := c.Param("rating_id")
	requesterID := c.GetString("userID")
	isAdmin := c.GetBool("isAdmin")

	if err := h.userRatingService.DeleteRating(c.Request.Context(), ratingID, requesterID, isAdmin); err != nil {
		switch {
		case errors.Is(err, service.ErrUserRatingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the rater or an admin can delete a rating"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "rating deleted"})
}

// ListComments returns the profile notes a user has received, votes desc
// GET /api/users/:user_id/comments
func (h *UserHandler) ListComments(c *gin.Context) {
	userID := c.Param("user_id")
	viewerID := c.GetString("userID")

	comments, err := h.userCommentService.ListReceived(c.Request.Context(), userID, viewerID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// UpsertComment leaves or replaces the caller's note on a profile
// POST /api/users/:user_id/comments
func (h *UserHandler) UpsertComment(c *gin.Context) {
	ratedID := c.Param("user_id")
	raterID := c.GetString("userID")

	var req dto.UpsertUserCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.userCommentService.UpsertComment(c.Request.Context(), raterID, ratedID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comment)
}

// DeleteComment removes the caller's own profile note
// DELETE /api/users/comments/:comment_id
func (h *UserHandler) DeleteComment(c *gin.Context) {
	commentID := c.Param("comment_id")
	requesterID := c.GetString("userID")

	if err := h.userCommentService.DeleteComment(c.Request.Context(), commentID, requesterID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the author can delete a profile comment"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}

// Vote adds or retracts an upvote on a profile note
// POST /api/users/comments/:comment_id/upvote
func (h *UserHandler) Vote(c *gin.Context) {
	commentID := c.Param("comment_id")
	voterID := c.GetString("userID")

	var req dto.UpvoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.userCommentService.Vote(c.Request.Context(), commentID, voterID, req.Remove)
	if err != nil {
		if errors.Is(err, service.ErrUserCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comment)
}
