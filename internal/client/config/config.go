package config

import "time"

// Config holds runtime settings for the PackChann client.
//
// Fields:
//   - ServerBaseURL: base URL of the PackChann HTTP API.
//   - RequestTimeout: single fixed timeout bounding every network call.
//   - DatabaseDSN: path of the local SQLite store holding the session snapshot.
//   - LogLevel: zap level name (debug, info, warn, error).
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabaseDSN    string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.DatabaseDSN = "packchann.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), the environment, and finally
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
