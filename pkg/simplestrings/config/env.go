package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfig is the process environment understood by the server.
type envConfig struct {
	Port string `env:"PORT" env-default:"8080" env-description:"HTTP listen port"`
}

// WithEnv applies environment variable overrides.
//
// Environment variables:
//
//	PORT - Server port (default: "8080")
//
// Everything else is configured programmatically.
func WithEnv() Option {
	return func(c *ServerConfig) error {
		var env envConfig
		if err := cleanenv.ReadEnv(&env); err != nil {
			return fmt.Errorf("failed to read environment: %w", err)
		}
		c.Port = env.Port
		return nil
	}
}

// EnvUsage describes the environment variables read by WithEnv.
func EnvUsage() (string, error) {
	var env envConfig
	return cleanenv.GetDescription(&env, nil)
}
