// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// devTokenSecret signs edit tokens when TOKEN_SECRET is unset.
const devTokenSecret = "tabsplit-dev-secret-change-me"

// Config holds application configuration loaded from the environment.
type Config struct {
	Port             string
	DBPath           string
	StaticPath       string
	TokenSecret      string
	TokenTTL         time.Duration
	MetricsNamespace string
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		Port:             valueOrDefault(k.String("PORT"), "8080"),
		DBPath:           valueOrDefault(k.String("DB_PATH"), "./data/receipts.db"),
		StaticPath:       strings.TrimSpace(k.String("STATIC_PATH")),
		TokenSecret:      valueOrDefault(k.String("TOKEN_SECRET"), devTokenSecret),
		MetricsNamespace: valueOrDefault(k.String("METRICS_NAMESPACE"), "tabsplit"),
	}

	ttl, err := time.ParseDuration(valueOrDefault(k.String("TOKEN_TTL"), "72h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", ttl)
	}
	cfg.TokenTTL = ttl

	return cfg, nil
}

// UsingDevSecret reports whether tokens are signed with the built-in development secret.
func (c *Config) UsingDevSecret() bool {
	return c.TokenSecret == devTokenSecret
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
