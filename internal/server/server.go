// Package server wires configuration, logging, metrics, middleware, and
// routes into a runnable HTTP server.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/Algebra/internal/api/middleware"
	"github.com/GriffinCanCode/Algebra/internal/config"
	httpapi "github.com/GriffinCanCode/Algebra/internal/http"
	"github.com/GriffinCanCode/Algebra/internal/logging"
	"github.com/GriffinCanCode/Algebra/internal/monitoring"
	"github.com/GriffinCanCode/Algebra/internal/providers/algebra"
	"github.com/GriffinCanCode/Algebra/internal/service"
	"github.com/GriffinCanCode/Algebra/internal/ws"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
	httpSrv  *http.Server
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stdout"},
	})
	if err != nil {
		return nil, err
	}

	metrics := monitoring.NewMetrics()
	registry := service.NewRegistry()

	logger.Info("registering service providers")
	if err := registry.Register(algebra.NewProvider()); err != nil {
		return nil, err
	}

	stats := registry.Stats()
	logger.Info("providers registered",
		zap.Int("services", stats.Services),
		zap.Int("tools", stats.Tools),
	)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(monitoring.Middleware(metrics))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := httpapi.NewHandlers(registry, metrics, logger, cfg.Display.ASCII)
	wsHandler := ws.NewHandler(registry, metrics, logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", metrics.Handler())

	// Service management
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	// WebSocket
	router.GET("/stream", wsHandler.HandleConnection)

	return &Server{
		router:   router,
		registry: registry,
		metrics:  metrics,
		logger:   logger,
		httpSrv: &http.Server{
			Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run starts the server and blocks until it stops
func (s *Server) Run() error {
	s.logger.Info("starting server", zap.String("addr", s.httpSrv.Addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	err := s.httpSrv.Shutdown(ctx)
	_ = s.logger.Sync()
	return err
}

// Registry exposes the service registry, primarily for tests
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Router exposes the gin engine, primarily for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}
