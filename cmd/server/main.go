package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/tendant/simple-strings/pkg/simplestrings"
	"github.com/tendant/simple-strings/pkg/simplestrings/api"
	"github.com/tendant/simple-strings/pkg/simplestrings/config"
	"github.com/tendant/simple-strings/pkg/simplestrings/metrics"
)

const maxRequestBodyBytes = 1 << 20

func main() {
	// Load configuration from environment
	serverConfig, err := config.Load(config.WithEnv())
	if err != nil {
		slog.Error("Failed to load server configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(serverConfig.Environment))

	var sinks []simplestrings.EventSink
	var m *metrics.Metrics
	if serverConfig.EnableMetrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m, err = metrics.New(reg)
		if err != nil {
			slog.Error("Failed to register metrics", "error", err)
			os.Exit(1)
		}
		sinks = append(sinks, m)
	}

	svc, err := serverConfig.BuildService(sinks...)
	if err != nil {
		slog.Error("Failed to build service", "error", err)
		os.Exit(1)
	}

	server := NewHTTPServer(svc, serverConfig, m)

	httpServer := &http.Server{
		Addr:              serverConfig.Addr(),
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Simple Strings Server starting", "port", serverConfig.Port, "env", serverConfig.Environment)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}

func newLogger(environment string) *slog.Logger {
	if environment == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// HTTPServer wraps the simple-strings service for HTTP access
type HTTPServer struct {
	service simplestrings.Service
	config  *config.ServerConfig
	metrics *metrics.Metrics
}

// NewHTTPServer creates a new HTTP server wrapper. m may be nil when metrics are disabled.
func NewHTTPServer(service simplestrings.Service, serverConfig *config.ServerConfig, m *metrics.Metrics) *HTTPServer {
	return &HTTPServer{
		service: service,
		config:  serverConfig,
		metrics: m,
	}
}

// Routes sets up the HTTP routes
func (s *HTTPServer) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(api.RequestIDMiddleware)
	r.Use(api.PeerAddrMiddleware)
	r.Use(middleware.RealIP)
	r.Use(api.LoggingMiddleware(slog.Default()))
	if s.metrics != nil {
		r.Use(api.MetricsMiddleware(s.metrics))
	}
	r.Use(api.RecoveryMiddleware)
	if s.config.RateLimitPerSecond > 0 {
		burst := int(s.config.RateLimitPerSecond)
		r.Use(api.NewRateLimiter(s.config.RateLimitPerSecond, burst).Middleware)
	}
	r.Use(middleware.Timeout(s.config.RequestTimeout))
	r.Use(api.RequestSizeLimitMiddleware(maxRequestBodyBytes))

	r.Get("/health", s.handleHealth)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Mount("/strings", api.NewStringsHandler(s.service).Routes())

	return r
}

// Health check endpoint
func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{
		"status":      "healthy",
		"environment": s.config.Environment,
	})
}
