// Package http provides the API server, router and shared middlewares.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/allisson/vidshare/internal/config"
	"github.com/allisson/vidshare/internal/identity/domain"
	identityhttp "github.com/allisson/vidshare/internal/identity/http"
	identityservice "github.com/allisson/vidshare/internal/identity/service"
	identityusecase "github.com/allisson/vidshare/internal/identity/usecase"
	mediahttp "github.com/allisson/vidshare/internal/media/http"
	"github.com/allisson/vidshare/internal/metrics"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// ServerDeps carries everything the router needs: the resolver and role
// authority for the guards, plus the bounded-context handlers.
type ServerDeps struct {
	Resolver          identityservice.PrincipalResolver
	AuthUseCase       identityusecase.AuthUseCase
	AuthHandler       *identityhttp.AuthHandler
	AdminHandler      *identityhttp.AdminHandler
	VideoHandler      *mediahttp.VideoHandler
	EngagementHandler *mediahttp.EngagementHandler
	MetricsProvider   *metrics.Provider
}

// NewServer creates the API server with all routes and middlewares wired.
func NewServer(cfg *config.Config, logger *slog.Logger, deps ServerDeps) *Server {
	router := newRouter(cfg, logger, deps)

	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// newRouter builds the Gin engine with middlewares, health endpoints and the
// versioned API routes.
func newRouter(cfg *config.Config, logger *slog.Logger, deps ServerDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsEnabled && deps.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(deps.MetricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	requireAuth := identityhttp.RequireAuthenticated(deps.Resolver, deps.AuthUseCase, logger)
	requireCreator := identityhttp.RequireRole(domain.RoleCreator, logger)
	requireRecord := identityhttp.RequireUserRecord(deps.AuthUseCase, logger)

	v1 := router.Group("/v1")

	// Unauthenticated credential endpoints, rate limited per IP.
	auth := v1.Group("/auth")
	if cfg.RateLimitAuthEnabled {
		auth.Use(IPRateLimitMiddleware(cfg.RateLimitAuthRequestsPerSec, cfg.RateLimitAuthBurst, logger))
	}
	auth.POST("/register", deps.AuthHandler.RegisterHandler)
	auth.POST("/login", deps.AuthHandler.LoginHandler)

	v1.GET("/auth/me", requireAuth, deps.AuthHandler.MeHandler)

	// Privileged role assignment, gated by the admin key inside the handler.
	v1.POST("/admin/users/role", deps.AdminHandler.SetRoleHandler)

	// Video catalog: reads are public, writes require the creator role.
	v1.GET("/videos", deps.VideoHandler.ListHandler)
	v1.GET("/videos/latest", deps.VideoHandler.LatestHandler)
	v1.GET("/videos/upload-url", requireAuth, requireCreator, deps.VideoHandler.UploadURLHandler)
	v1.POST("/videos", requireAuth, requireCreator, deps.VideoHandler.CreateHandler)
	v1.GET("/videos/:id", deps.VideoHandler.GetHandler)

	// Engagement: reads are public, writes require an authenticated account
	// whose user record still exists.
	v1.GET("/videos/:id/comments", deps.EngagementHandler.ListCommentsHandler)
	v1.POST("/videos/:id/comments", requireAuth, requireRecord, deps.EngagementHandler.CreateCommentHandler)
	v1.GET("/videos/:id/ratings", deps.EngagementHandler.ListRatingsHandler)
	v1.POST("/videos/:id/ratings", requireAuth, requireRecord, deps.EngagementHandler.CreateRatingHandler)

	return router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
