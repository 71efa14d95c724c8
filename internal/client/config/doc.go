// Package config loads runtime configuration for the PackChann CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, loaded through a local .env file when present
//     (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   base URL of the PackChann HTTP API
//	-t string   request timeout, e.g. "10s"
//	-d string   local SQLite database DSN
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080",
//	  "request_timeout": "10s",
//	  "database_dsn": "packchann.db",
//	  "log_level": "info"
//	}
//
// Environment variables
//
//	PACKCHANN_SERVER_URL       base URL of the PackChann HTTP API
//	PACKCHANN_REQUEST_TIMEOUT  request timeout, e.g. "10s"
//	PACKCHANN_DATABASE_DSN     local SQLite database DSN
//	PACKCHANN_LOG_LEVEL        log level
package config
