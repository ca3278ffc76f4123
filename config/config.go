package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application, populated from
// environment variables.
type Config struct {
	// Server configuration
	ServerHost string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	ServerPort string `env:"SERVER_PORT" envDefault:"3001"`

	// Database configuration
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"pantrychef"`
	DBSSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`

	// Redis configuration (normalization cache)
	RedisHost     string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisURL      string `env:"REDIS_URL"`

	// Generative API configuration. The key may be supplied directly or
	// through a file path (container secrets); the file is read only when
	// the direct value is absent.
	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
	OpenAIAPIKeyFile string `env:"OPENAI_API_KEY_FILE"`
	OpenAIAPIURL     string `env:"OPENAI_API_URL" envDefault:"https://api.openai.com/v1/chat/completions"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.OpenAIAPIKey == "" && cfg.OpenAIAPIKeyFile != "" {
		key, err := os.ReadFile(cfg.OpenAIAPIKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}
		cfg.OpenAIAPIKey = strings.TrimSpace(string(key))
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the fields required to serve requests are set.
// The generative API key is deliberately not required here: the service
// factory fails fast at construction time instead, so the pantry
// endpoints stay usable without a key.
func Validate(cfg *Config) error {
	if cfg.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT must not be empty")
	}
	if cfg.DBHost == "" || cfg.DBPort == "" {
		return fmt.Errorf("DB_HOST and DB_PORT must not be empty")
	}
	if cfg.DBName == "" {
		return fmt.Errorf("DB_NAME must not be empty")
	}
	return nil
}

// DSN returns the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// RedisAddr returns the host:port address of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
