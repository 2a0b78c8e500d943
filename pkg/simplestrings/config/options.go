package config

import (
	"fmt"
	"time"
)

// WithPort sets the server port
func WithPort(port string) Option {
	return func(c *ServerConfig) error {
		if port == "" {
			return fmt.Errorf("port cannot be empty")
		}
		c.Port = port
		return nil
	}
}

// WithEnvironment sets the environment (development, production, testing)
func WithEnvironment(env string) Option {
	return func(c *ServerConfig) error {
		if env == "" {
			return fmt.Errorf("environment cannot be empty")
		}
		c.Environment = env
		return nil
	}
}

// WithEventLogging enables or disables the logging event sink
func WithEventLogging(enabled bool) Option {
	return func(c *ServerConfig) error {
		c.EnableEventLogging = enabled
		return nil
	}
}

// WithMetrics enables or disables Prometheus metrics and the /metrics route
func WithMetrics(enabled bool) Option {
	return func(c *ServerConfig) error {
		c.EnableMetrics = enabled
		return nil
	}
}

// WithRateLimit limits each client to perSecond requests; 0 disables it
func WithRateLimit(perSecond float64) Option {
	return func(c *ServerConfig) error {
		if perSecond < 0 {
			return fmt.Errorf("rate limit cannot be negative, got: %v", perSecond)
		}
		c.RateLimitPerSecond = perSecond
		return nil
	}
}

// WithRequestTimeout sets the per-request processing deadline
func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *ServerConfig) error {
		if timeout <= 0 {
			return fmt.Errorf("request timeout must be positive, got: %v", timeout)
		}
		c.RequestTimeout = timeout
		return nil
	}
}
