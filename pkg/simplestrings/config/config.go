package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/tendant/simple-strings/pkg/simplestrings"
	"github.com/tendant/simple-strings/pkg/simplestrings/repo/memory"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on top of library defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() ServerConfig {
	return ServerConfig{
		Port:               "8080",
		Environment:        "development",
		EnableEventLogging: true,
		EnableMetrics:      true,
		RequestTimeout:     60 * time.Second,
	}
}

// ServerConfig represents server configuration for the simple-strings service
type ServerConfig struct {
	Port        string
	Environment string // development, production, testing

	// Server options
	EnableEventLogging bool
	EnableMetrics      bool
	RateLimitPerSecond float64 // 0 disables rate limiting
	RequestTimeout     time.Duration
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535, got %q", c.Port)
	}

	if c.RateLimitPerSecond < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}

	return nil
}

// Addr returns the listen address for the configured port
func (c *ServerConfig) Addr() string {
	return ":" + c.Port
}

// BuildService creates a Service instance from the server configuration.
// Extra sinks (for example the metrics collector) are appended after the
// logging sink.
func (c *ServerConfig) BuildService(sinks ...simplestrings.EventSink) (simplestrings.Service, error) {
	options := []simplestrings.Option{
		simplestrings.WithRepository(memory.New()),
	}

	if c.EnableEventLogging {
		options = append(options, simplestrings.WithEventSink(simplestrings.NewLoggingEventSink(slog.Default())))
	}

	for _, sink := range sinks {
		options = append(options, simplestrings.WithEventSink(sink))
	}

	return simplestrings.New(options...)
}
