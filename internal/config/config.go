// Package config loads the simulator's runtime settings from the
// environment, with optional .env bootstrap.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds everything tunable at startup.
type Config struct {
	ListenAddr        string        // API listener, default ":8420"
	MetricsListenAddr string        // Prometheus listener, default "127.0.0.1:9420"
	LogLevel          string        // zerolog level
	LogFormat         string        // "json", "console" or "auto"
	WebhookTimeout    time.Duration // outbound delivery timeout
	DefaultAccountID  string        // the platform operator's account id
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		ListenAddr:        ":8420",
		MetricsListenAddr: "127.0.0.1:9420",
		LogLevel:          "info",
		LogFormat:         "auto",
		WebhookTimeout:    30 * time.Second,
		DefaultAccountID:  "acct_default",
	}
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged first without overriding real env vars.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Debug().Err(err).Msg("No .env file loaded")
	}

	cfg := Defaults()
	if v := getenv("PAYSIM_LISTEN"); v != "" {
		cfg.ListenAddr = v
	}
	if v := getenv("PAYSIM_METRICS_LISTEN"); v != "" {
		cfg.MetricsListenAddr = v
	}
	if v := getenv("PAYSIM_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("PAYSIM_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := getenv("PAYSIM_WEBHOOK_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid PAYSIM_WEBHOOK_TIMEOUT %q: %w", v, err)
		}
		cfg.WebhookTimeout = d
	}
	if v := getenv("PAYSIM_ACCOUNT"); v != "" {
		cfg.DefaultAccountID = v
	}
	return cfg, nil
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
