package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/viftode4/Spotify-Ranker/internal/api/dto"
	"github.com/viftode4/Spotify-Ranker/internal/api/handler"
	"github.com/viftode4/Spotify-Ranker/internal/api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) CreateComment(ctx context.Context, userID string, albumID int64, content string) (*dto.CommentResponse, error) {
	args := m.Called(ctx, userID, albumID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) HideComment(ctx context.Context, commentID int64, requesterID string, isAdmin bool) error {
	args := m.Called(ctx, commentID, requesterID, isAdmin)
	return args.Error(0)
}

func setupCommentRouter(svc *MockCommentService, userID string, isAdmin bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewCommentHandler(svc)

	api := r.Group("/api")
	api.Use(mockIdentity(userID, isAdmin))
	h.RegisterRoutes(api, api)
	return r
}

func TestCommentCreate(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc := new(MockCommentService)
		svc.On("CreateComment", mock.Anything, "u-1", int64(1), "great record").Return(&dto.CommentResponse{
			ID: 1, Content: "great record",
		}, nil)

		body, _ := json.Marshal(dto.CreateCommentRequest{Content: "great record"})
		r := setupCommentRouter(svc, "u-1", false)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/albums/1/comments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("UnknownAlbum", func(t *testing.T) {
		svc := new(MockCommentService)
		svc.On("CreateComment", mock.Anything, "u-1", int64(99), "great record").Return(nil, service.ErrAlbumNotFound)

		body, _ := json.Marshal(dto.CreateCommentRequest{Content: "great record"})
		r := setupCommentRouter(svc, "u-1", false)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/albums/99/comments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("EmptyContent", func(t *testing.T) {
		svc := new(MockCommentService)
		r := setupCommentRouter(svc, "u-1", false)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/albums/1/comments", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCommentHide(t *testing.T) {
	t.Run("AuthorHides", func(t *testing.T) {
		svc := new(MockCommentService)
		svc.On("HideComment", mock.Anything, int64(1), "u-1", false).Return(nil)

		r := setupCommentRouter(svc, "u-1", false)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/api/comments/1/hide", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("StrangerForbidden", func(t *testing.T) {
		svc := new(MockCommentService)
		svc.On("HideComment", mock.Anything, int64(1), "u-2", false).Return(service.ErrForbidden)

		r := setupCommentRouter(svc, "u-2", false)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/api/comments/1/hide", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("UnknownComment", func(t *testing.T) {
		svc := new(MockCommentService)
		svc.On("HideComment", mock.Anything, int64(77), "u-1", false).Return(service.ErrCommentNotFound)

		r := setupCommentRouter(svc, "u-1", false)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/api/comments/77/hide", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
