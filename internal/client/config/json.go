package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/yurin-kami/packchann-client/internal/flagx"
	"github.com/yurin-kami/packchann-client/internal/timex"
)

// JsonConfig mirrors Config for file loading. Durations accept either
// a string like "10s" or an integer nanosecond count.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabaseDSN    string         `json:"database_dsn"`
	LogLevel       string         `json:"log_level"`
}

func loadJsonConfig(fileName string) (*JsonConfig, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := &JsonConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

func parseJson(cfg *Config) {
	fileName := flagx.JsonConfigFlags()
	if fileName == "" {
		return
	}

	jsonConfig, err := loadJsonConfig(fileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load config file %s: %v\n", fileName, err)
		return
	}

	applyJson(cfg, jsonConfig)
}

func applyJson(cfg *Config, jsonConfig *JsonConfig) {
	if jsonConfig.ServerBaseURL != "" {
		cfg.ServerBaseURL = jsonConfig.ServerBaseURL
	}
	if jsonConfig.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jsonConfig.RequestTimeout.Duration
	}
	if jsonConfig.DatabaseDSN != "" {
		cfg.DatabaseDSN = jsonConfig.DatabaseDSN
	}
	if jsonConfig.LogLevel != "" {
		cfg.LogLevel = jsonConfig.LogLevel
	}
}
