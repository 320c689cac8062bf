// Package http exposes the assist-mode recommendation engine and its
// plumbing (scans, preferences, reports, training) over HTTP.
package http

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"inclusiveai/assist"
	"inclusiveai/ml"
)

// ServerConfig collects everything the HTTP layer needs at construction.
type ServerConfig struct {
	Port           int
	Timeout        time.Duration
	AllowedOrigins []string
	ScanCacheSize  int
	ModelPath      string
	Training       ml.TrainConfig
}

// DefaultServerConfig returns the development defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:           8080,
		Timeout:        30 * time.Second,
		AllowedOrigins: []string{"*"},
		ScanCacheSize:  256,
	}
}

// Server serves the assist API.
type Server struct {
	server  *http.Server
	config  ServerConfig
	backend assist.Backend
	logger  *zap.Logger
	hub     *EventHub

	// scanCache short-circuits repeated identical observations.
	scanCache *lru.Cache[string, assist.Recommendation]

	// training runs are serialized; trainBusy guards the single slot.
	trainMu    sync.Mutex
	trainBusy  bool
	lastReport *ml.TrainReport
}

// NewServer wires the routes and middleware chain around the given
// classification backend.
func NewServer(config ServerConfig, backend assist.Backend, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.ScanCacheSize <= 0 {
		config.ScanCacheSize = DefaultServerConfig().ScanCacheSize
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultServerConfig().Timeout
	}

	cache, _ := lru.New[string, assist.Recommendation](config.ScanCacheSize)

	s := &Server{
		config:    config,
		backend:   backend,
		logger:    logger,
		hub:       NewEventHub(logger),
		scanCache: cache,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	chain := Chain(
		RecoveryMiddleware(logger),
		LoggerMiddleware(logger),
		SecurityHeadersMiddleware,
		CORSMiddleware(config.AllowedOrigins),
		TimeoutMiddleware(config.Timeout),
		GzipMiddleware,
	)

	// The websocket endpoint lives outside the timeout/gzip chain so
	// long-lived connections are not cut off.
	wsChain := Chain(
		RecoveryMiddleware(logger),
		CORSMiddleware(config.AllowedOrigins),
	)
	root := http.NewServeMux()
	root.Handle("/ws/events", wsChain(http.HandlerFunc(s.handleEvents)))
	root.Handle("/", chain(mux))

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", config.Port),
		Handler:      root,
		ReadTimeout:  config.Timeout,
		WriteTimeout: config.Timeout,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /", s.handleRoot)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/assist-preview", s.handleAssistPreview)

	mux.HandleFunc("POST /api/assist-scan", s.handleScan)
	mux.HandleFunc("GET /api/assist-scan/health", s.handleScanHealth)

	mux.HandleFunc("POST /api/preferences", s.handleSavePreferences)
	mux.HandleFunc("GET /api/preferences/{user_id}", s.handleGetPreferences)
	mux.HandleFunc("DELETE /api/preferences/{user_id}", s.handleDeletePreferences)

	mux.HandleFunc("GET /api/reports/usage", s.handleUsageReport)
	mux.HandleFunc("GET /api/reports/health", s.handleReportsHealth)

	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("GET /api/auth/me", s.handleCurrentUser)

	mux.HandleFunc("POST /api/training", s.handleTraining)
	mux.HandleFunc("GET /api/training/status", s.handleTrainingStatus)
}

// Start runs the server and the event hub until Stop is called.
func (s *Server) Start() error {
	go s.hub.Run()
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info("shutting down HTTP server")
	s.hub.Stop()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// Addr returns the server address.
func (s *Server) Addr() string {
	return s.server.Addr
}
