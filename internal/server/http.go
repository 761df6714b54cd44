// Package server provides the HTTP surface for the profile evaluation
// service: the public evaluation and submission endpoints and the
// token-guarded admin cache endpoints.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultBodyLimit caps request bodies; quiz submissions are small.
const DefaultBodyLimit = "1M"

// Config holds server configuration options.
type Config struct {
	AdminToken     string // Required: hex SHA-256 of "user:password"
	MetricsEnabled bool   // Whether to expose the Prometheus metrics endpoint
	BodyLimit      string // Max request body size (default: 1M)
}

// Server wraps the Echo server.
type Server struct {
	echo    *echo.Echo
	handler *Handler
}

// New creates a new HTTP server.
func New(handler *Handler, cfg *Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware stack (order matters)
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger())
	e.Use(middleware.Recover())

	bodyLimit := DefaultBodyLimit
	if cfg != nil && cfg.BodyLimit != "" {
		bodyLimit = cfg.BodyLimit
	}
	e.Use(middleware.BodyLimit(bodyLimit))

	// Public routes
	e.GET("/api/health", handler.Health)
	e.HEAD("/api/health", handler.Health)
	e.POST("/api/evaluate", handler.Evaluate)
	e.POST("/api/submissions", handler.StoreSubmission)

	if cfg != nil && cfg.MetricsEnabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	// Admin routes (shared-secret guard)
	adminToken := ""
	if cfg != nil {
		adminToken = cfg.AdminToken
	}
	admin := e.Group("/api/admin", AdminAuthMiddleware(adminToken))
	admin.GET("/cache-stats", handler.CacheStats)
	admin.GET("/cache/:key", handler.InspectCacheEntry)
	admin.DELETE("/cache/:key", handler.DeleteCacheEntry)
	admin.POST("/cache/clear", handler.ClearCache)
	admin.GET("/submissions/:hash", handler.GetSubmission)

	return &Server{
		echo:    e,
		handler: handler,
	}
}

// requestLogger emits one slog line per request with the request id.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogMethod:    true,
		LogURI:       true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			slog.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency.Round(time.Millisecond)),
				slog.String("request_id", v.RequestID),
			)
			return nil
		},
	})
}

// Start starts the HTTP server on the given address.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// ServeHTTP implements http.Handler, allowing Server to be used with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
