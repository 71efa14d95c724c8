package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays config values from environment variables, loading a
// local .env file first when one exists. Unset variables leave the
// current value untouched.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("PACKCHANN_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("PACKCHANN_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("PACKCHANN_DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("PACKCHANN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
