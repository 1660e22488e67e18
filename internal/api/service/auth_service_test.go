package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/viftode4/Spotify-Ranker/internal/api/dto"
	"github.com/viftode4/Spotify-Ranker/internal/api/models"
	"github.com/viftode4/Spotify-Ranker/internal/api/service"
	"github.com/viftode4/Spotify-Ranker/internal/config"
	"github.com/viftode4/Spotify-Ranker/internal/middleware/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:       strings.Repeat("s", 32),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func TestRegister(t *testing.T) {
	t.Run("CreatesUserAndIssuesTokens", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenRepo := new(MockRefreshTokenRepository)
		svc := service.NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

		userRepo.On("FindByName", "alice").Return(nil, gorm.ErrRecordNotFound)
		userRepo.On("FindByEmail", "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
		userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)
		tokenRepo.On("Create", mock.AnythingOfType("*models.RefreshToken")).Return(nil)

		resp, err := svc.Register(&dto.RegisterRequest{
			Name:     "alice",
			Email:    "alice@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "alice", resp.Name)
		assert.False(t, resp.IsAdmin)
		assert.Equal(t, int64(900), resp.ExpiresIn)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenRepo := new(MockRefreshTokenRepository)
		svc := service.NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

		userRepo.On("FindByName", "alice").Return(&models.User{ID: "u-1", Name: "alice"}, nil)

		_, err := svc.Register(&dto.RegisterRequest{
			Name:     "alice",
			Email:    "other@example.com",
			Password: "password123",
		})
		assert.ErrorIs(t, err, service.ErrNameInUse)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenRepo := new(MockRefreshTokenRepository)
		svc := service.NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

		userRepo.On("FindByName", "bob").Return(nil, gorm.ErrRecordNotFound)
		userRepo.On("FindByEmail", "alice@example.com").Return(&models.User{ID: "u-1"}, nil)

		_, err := svc.Register(&dto.RegisterRequest{
			Name:     "bob",
			Email:    "alice@example.com",
			Password: "password123",
		})
		assert.ErrorIs(t, err, service.ErrEmailInUse)
	})
}

func TestLogin(t *testing.T) {
	hashed, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		ID:       "u-1",
		Name:     "alice",
		Email:    "alice@example.com",
		Password: hashed,
	}

	t.Run("ValidCredentials", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenRepo := new(MockRefreshTokenRepository)
		svc := service.NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

		userRepo.On("FindByEmail", "alice@example.com").Return(user, nil)
		tokenRepo.On("Create", mock.AnythingOfType("*models.RefreshToken")).Return(nil)

		resp, err := svc.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, "u-1", resp.UserID)

		// The issued access token must round-trip through validation.
		claims, err := svc.ValidateToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.UserID)
		assert.Equal(t, "alice", claims.Name)
		assert.False(t, claims.IsAdmin)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenRepo := new(MockRefreshTokenRepository)
		svc := service.NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

		userRepo.On("FindByEmail", "alice@example.com").Return(user, nil)

		_, err := svc.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "nope"})
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenRepo := new(MockRefreshTokenRepository)
		svc := service.NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

		userRepo.On("FindByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login(&dto.LoginRequest{Email: "ghost@example.com", Password: "password123"})
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("SeededAccountWithoutPassword", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenRepo := new(MockRefreshTokenRepository)
		svc := service.NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

		userRepo.On("FindByEmail", "admin@example.com").Return(&models.User{ID: "a-1", Email: "admin@example.com"}, nil)

		_, err := svc.Login(&dto.LoginRequest{Email: "admin@example.com", Password: "anything"})
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestRefreshAccessToken(t *testing.T) {
	t.Run("ValidRefreshToken", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenRepo := new(MockRefreshTokenRepository)
		svc := service.NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

		tokenRepo.On("FindByToken", "rt-1").Return(&models.RefreshToken{
			ID:        "t-1",
			UserID:    "u-1",
			Token:     "rt-1",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
		userRepo.On("FindByID", "u-1").Return(&models.User{ID: "u-1", Name: "alice"}, nil)

		resp, err := svc.RefreshAccessToken("rt-1")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
	})

	t.Run("ExpiredRefreshToken", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenRepo := new(MockRefreshTokenRepository)
		svc := service.NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

		tokenRepo.On("FindByToken", "rt-old").Return(&models.RefreshToken{
			ID:        "t-2",
			UserID:    "u-1",
			Token:     "rt-old",
			ExpiresAt: time.Now().Add(-time.Hour),
		}, nil)
		tokenRepo.On("Delete", "t-2").Return(nil)

		_, err := svc.RefreshAccessToken("rt-old")
		assert.ErrorIs(t, err, service.ErrExpiredToken)
	})

	t.Run("RevokedRefreshToken", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenRepo := new(MockRefreshTokenRepository)
		svc := service.NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

		tokenRepo.On("FindByToken", "rt-revoked").Return(&models.RefreshToken{
			ID:        "t-3",
			UserID:    "u-1",
			Token:     "rt-revoked",
			ExpiresAt: time.Now().Add(time.Hour),
			Revoked:   true,
		}, nil)

		_, err := svc.RefreshAccessToken("rt-revoked")
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})
}

func TestValidateToken(t *testing.T) {
	t.Run("GarbageToken", func(t *testing.T) {
		svc := service.NewAuthService(new(MockUserRepository), new(MockRefreshTokenRepository), nil, testAuthConfig())
		_, err := svc.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		hashed, err := auth.HashPassword("password123")
		require.NoError(t, err)
		user := &models.User{ID: "u-1", Name: "alice", Email: "a@b.c", Password: hashed}

		issuerRepo := new(MockUserRepository)
		issuerTokens := new(MockRefreshTokenRepository)
		issuerRepo.On("FindByEmail", "a@b.c").Return(user, nil)
		issuerTokens.On("Create", mock.AnythingOfType("*models.RefreshToken")).Return(nil)
		issuer := service.NewAuthService(issuerRepo, issuerTokens, nil, testAuthConfig())

		otherCfg := testAuthConfig()
		otherCfg.JWTSecret = strings.Repeat("x", 32)
		verifier := service.NewAuthService(new(MockUserRepository), new(MockRefreshTokenRepository), nil, otherCfg)

		resp, err := issuer.Login(&dto.LoginRequest{Email: "a@b.c", Password: "password123"})
		require.NoError(t, err)

		_, err = verifier.ValidateToken(resp.AccessToken)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})
}
