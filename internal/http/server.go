package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authService "github.com/calmcp/credvault/internal/auth/service"
	"github.com/calmcp/credvault/internal/config"
	credentialsHTTP "github.com/calmcp/credvault/internal/credentials/http"
	"github.com/calmcp/credvault/internal/metrics"
	"go.opentelemetry.io/otel/metric"
)

// Server represents the HTTP API server.
type Server struct {
	server            *http.Server
	db                *sql.DB
	logger            *slog.Logger
	cfg               *config.Config
	credentialHandler *credentialsHTTP.CredentialHandler
	apiKeyService     authService.APIKeyService
	meterProvider     metric.MeterProvider
}

// NewServer creates a new HTTP API server.
func NewServer(
	cfg *config.Config,
	db *sql.DB,
	logger *slog.Logger,
	credentialHandler *credentialsHTTP.CredentialHandler,
	apiKeyService authService.APIKeyService,
	meterProvider metric.MeterProvider,
) *Server {
	s := &Server{
		db:                db,
		logger:            logger,
		cfg:               cfg,
		credentialHandler: credentialHandler,
		apiKeyService:     apiKeyService,
		meterProvider:     meterProvider,
	}

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:      s.createRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// createRouter assembles the gin engine with middleware and routes.
func (s *Server) createRouter() *gin.Engine {
	gin.SetMode(s.cfg.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(s.cfg.CORSEnabled, s.cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if s.meterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(s.meterProvider, s.cfg.MetricsNamespace))
	}

	// Health and readiness endpoints are unauthenticated
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	if s.cfg.APIKeyHash != "" {
		v1.Use(APIKeyAuthMiddleware(s.apiKeyService, s.cfg.APIKeyHash, s.logger))
	} else {
		s.logger.Warn("api key authentication disabled: API_KEY_HASH is not set")
	}

	if s.cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(s.cfg.RateLimitRequestsPerSec, s.cfg.RateLimitBurst, s.logger))
	}

	credentials := v1.Group("/credentials")
	{
		credentials.PUT("/:provider/:user_id", s.credentialHandler.UpsertHandler)
		credentials.GET("/:provider/:user_id", s.credentialHandler.GetHandler)
		credentials.DELETE("/:provider/:user_id", s.credentialHandler.DeleteHandler)
	}

	return router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can reach its dependencies.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}
	status := "ready"
	code := http.StatusOK

	if s.db == nil {
		components["database"] = "error"
		status = "not_ready"
		code = http.StatusServiceUnavailable
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			components["database"] = "error"
			status = "not_ready"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, gin.H{"status": status, "components": components})
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
