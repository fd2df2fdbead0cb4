// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/mmynk/tipsplit/internal/models"
)

// Config holds application configuration.
type Config struct {
	Port              string
	DBPath            string
	LogLevel          string
	MetricsNamespace  string
	DefaultTipPercent int
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		Port:              valueOrDefault(k.String("PORT"), "8080"),
		DBPath:            valueOrDefault(k.String("DB_PATH"), "./data/tipsplit.db"),
		LogLevel:          valueOrDefault(k.String("LOG_LEVEL"), "info"),
		MetricsNamespace:  valueOrDefault(k.String("METRICS_NAMESPACE"), "tipsplit"),
		DefaultTipPercent: models.DefaultTipPercent,
	}

	if raw := strings.TrimSpace(k.String("DEFAULT_TIP_PERCENT")); raw != "" {
		tip, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("DEFAULT_TIP_PERCENT: %w", err)
		}
		if tip < models.MinTipPercent || tip > models.MaxTipPercent {
			return nil, fmt.Errorf("DEFAULT_TIP_PERCENT must be between %d and %d, got %d",
				models.MinTipPercent, models.MaxTipPercent, tip)
		}
		cfg.DefaultTipPercent = tip
	}

	return cfg, nil
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
		return value
	}
	return fallback
}
