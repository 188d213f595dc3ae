// Package server wires configuration, logging, metrics, the domain
// registries, and the HTTP surface into one runnable unit.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	api "github.com/unitbox/unitbox/internal/api/http"
	"github.com/unitbox/unitbox/internal/api/middleware"
	"github.com/unitbox/unitbox/internal/api/ws"
	"github.com/unitbox/unitbox/internal/domain/convert"
	"github.com/unitbox/unitbox/internal/domain/service"
	"github.com/unitbox/unitbox/internal/domain/session"
	"github.com/unitbox/unitbox/internal/domain/unit"
	"github.com/unitbox/unitbox/internal/infrastructure/config"
	"github.com/unitbox/unitbox/internal/infrastructure/logging"
	"github.com/unitbox/unitbox/internal/infrastructure/monitoring"
	codepointProvider "github.com/unitbox/unitbox/internal/providers/codepoint"
	digestProvider "github.com/unitbox/unitbox/internal/providers/digest"
	encodingProvider "github.com/unitbox/unitbox/internal/providers/encoding"
	historyProvider "github.com/unitbox/unitbox/internal/providers/history"
	radixProvider "github.com/unitbox/unitbox/internal/providers/radix"
	unitsProvider "github.com/unitbox/unitbox/internal/providers/units"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	units    *unit.Registry
	registry *service.Registry
	sessions *session.Manager
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	stop     chan struct{}
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	logger := logging.FromSettings(cfg.Logging.Level, cfg.Logging.Development)

	logger.Info("Initializing UnitBox server",
		zap.String("port", cfg.Server.Port),
		zap.Int("default_precision", cfg.Convert.DefaultPrecision),
	)

	metrics := monitoring.NewMetrics()

	// Domain registries
	unitRegistry := unit.NewRegistry()
	dispatcher := convert.NewDispatcher(unitRegistry, convert.Bounds{
		MinPrecision:     cfg.Convert.MinPrecision,
		MaxPrecision:     cfg.Convert.MaxPrecision,
		DefaultPrecision: cfg.Convert.DefaultPrecision,
	})
	sessions := session.NewManager()

	serviceRegistry := service.NewRegistry()
	registerProviders(serviceRegistry, unitRegistry, dispatcher, sessions, logger)

	// Router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := api.NewHandlers(unitRegistry, dispatcher, serviceRegistry, sessions, metrics)
	wsHandler := ws.NewHandler(sessions, metrics, logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Service management
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	// Conversion
	router.GET("/categories", handlers.ListCategories)
	router.GET("/categories/:name/units", handlers.ListUnits)
	router.POST("/convert", handlers.Convert)

	// Sessions and history
	router.POST("/sessions", handlers.CreateSession)
	router.DELETE("/sessions/:id", handlers.DeleteSession)
	router.GET("/sessions/:id/history", handlers.GetHistory)
	router.GET("/sessions/:id/history/export", handlers.ExportHistory)

	// Tools
	router.POST("/tools/hash-file", handlers.HashFile)

	// WebSocket
	router.GET("/stream", wsHandler.HandleConnection)

	// Metrics
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	s := &Server{
		router:   router,
		units:    unitRegistry,
		registry: serviceRegistry,
		sessions: sessions,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
		stop:     make(chan struct{}),
	}

	go s.housekeeping()

	logger.Info("Server initialized successfully")
	return s, nil
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close stops background work and flushes the logger.
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")
	close(s.stop)
	s.logger.Sync()
	return nil
}

// housekeeping sweeps idle sessions and refreshes the uptime gauge.
func (s *Server) housekeeping() {
	ticker := time.NewTicker(s.config.Session.SweepInterval)
	defer ticker.Stop()
	uptime := time.NewTicker(time.Second)
	defer uptime.Stop()

	for {
		select {
		case <-ticker.C:
			if swept := s.sessions.Sweep(s.config.Session.TTL); swept > 0 {
				s.metrics.AddSessionsSwept(swept)
				s.metrics.SetSessionsActive(s.sessions.Count())
				s.logger.Info("Swept idle sessions", zap.Int("count", swept))
			}
		case <-uptime.C:
			s.metrics.UpdateUptime()
		case <-s.stop:
			return
		}
	}
}

func registerProviders(
	registry *service.Registry,
	units *unit.Registry,
	dispatcher *convert.Dispatcher,
	sessions *session.Manager,
	logger *logging.Logger,
) {
	providers := []service.Provider{
		unitsProvider.NewProvider(units, dispatcher, sessions),
		radixProvider.NewProvider(sessions),
		codepointProvider.NewProvider(sessions),
		encodingProvider.NewProvider(sessions),
		digestProvider.NewProvider(sessions),
		historyProvider.NewProvider(sessions),
	}

	for _, p := range providers {
		if err := registry.Register(p); err != nil {
			logger.Warn("Failed to register provider",
				zap.String("service", p.Definition().ID),
				zap.Error(err),
			)
		}
	}
}
