package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/viftode4/Spotify-Ranker/database"
	"github.com/viftode4/Spotify-Ranker/internal/api/handler"
	"github.com/viftode4/Spotify-Ranker/internal/api/middleware"
	"github.com/viftode4/Spotify-Ranker/internal/api/repository"
	"github.com/viftode4/Spotify-Ranker/internal/api/service"
	"github.com/viftode4/Spotify-Ranker/internal/cache"
	"github.com/viftode4/Spotify-Ranker/internal/config"
	"github.com/viftode4/Spotify-Ranker/internal/imagehost"
	"github.com/viftode4/Spotify-Ranker/internal/spotify"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("could not load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.SeedAdmin(db, cfg, logger); err != nil {
		logger.Error("could not seed admin user", "error", err)
		os.Exit(1)
	}

	// Response cache: in-process by default, Redis when configured so cached
	// aggregates are shared between instances.
	var store cache.Store
	if cfg.RedisAddr != "" {
		redisStore, err := cache.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, 2*cfg.CacheTTL)
		if err != nil {
			logger.Error("could not connect to redis", "error", err)
			os.Exit(1)
		}
		store = redisStore
		logger.Info("Using redis response cache", "addr", cfg.RedisAddr)
	} else {
		store = cache.NewMemoryStore()
		logger.Info("Using in-process response cache")
	}
	responseCache := cache.New(store)

	catalog := spotify.NewClient(cfg.SpotifyClientID, cfg.SpotifyClientSecret)
	uploader := imagehost.NewSupabaseUploader(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseBucket)
	if uploader == nil {
		logger.Warn("Image hosting not configured; registration with profile images will fail")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	albumRepo := repository.NewAlbumRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	userRatingRepo := repository.NewUserRatingRepository(db)
	userCommentRepo := repository.NewUserCommentRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, uploaderOrNil(uploader), cfg)
	albumService := service.NewAlbumService(albumRepo, catalog, responseCache, cfg.CacheTTL)
	ratingService := service.NewRatingService(ratingRepo, albumRepo, responseCache, cfg.CacheTTL)
	commentService := service.NewCommentService(commentRepo, albumRepo)
	userRatingService := service.NewUserRatingService(userRatingRepo, userRepo, responseCache, cfg.CacheTTL)
	userCommentService := service.NewUserCommentService(userCommentRepo, userRepo, responseCache, cfg.CacheTTL)
	activityService := service.NewActivityService(ratingRepo, commentRepo, userRepo)
	avatarService := service.NewAvatarService(userRepo, userRatingRepo, userCommentRepo, responseCache, cfg.CacheTTL)
	tierListService := service.NewTierListService(albumRepo, responseCache, cfg.CacheTTL)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	albumHandler := handler.NewAlbumHandler(albumService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	commentHandler := handler.NewCommentHandler(commentService)
	activityHandler := handler.NewActivityHandler(activityService)
	tierListHandler := handler.NewTierListHandler(tierListService)
	userHandler := handler.NewUserHandler(userRatingService, userCommentService, activityService, avatarService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public reads carry optional identity (hidden-comment visibility);
	// mutations require a valid token.
	api := r.Group("/api")
	api.Use(middleware.OptionalAuthMiddleware(authService))
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authService))

	authHandler.RegisterRoutes(api)
	albumHandler.RegisterRoutes(api, protected)
	ratingHandler.RegisterRoutes(api, protected)
	commentHandler.RegisterRoutes(api, protected)
	activityHandler.RegisterRoutes(api)
	tierListHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api, protected)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Server starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// uploaderOrNil keeps a typed nil *SupabaseUploader from sneaking into the
// Uploader interface as a non-nil value.
func uploaderOrNil(u *imagehost.SupabaseUploader) imagehost.Uploader {
	if u == nil {
		return nil
	}
	return u
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
