package config

import (
	"flag"
	"os"
	"time"

	"github.com/yurin-kami/packchann-client/internal/flagx"
)

func parseFlags(cfg *Config) {
	allowed := []string{"-s", "-server", "-t", "-timeout", "-d", "-dsn", "-l", "-loglevel"}
	args := flagx.FilterArgs(os.Args[1:], allowed)

	var server, dsn, level, timeout string

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&server, "server", "", "Server base URL")
	fs.StringVar(&server, "s", "", "Server base URL (short)")
	fs.StringVar(&timeout, "timeout", "", "Request timeout, e.g. 10s")
	fs.StringVar(&timeout, "t", "", "Request timeout (short)")
	fs.StringVar(&dsn, "dsn", "", "Local database DSN")
	fs.StringVar(&dsn, "d", "", "Local database DSN (short)")
	fs.StringVar(&level, "loglevel", "", "Log level")
	fs.StringVar(&level, "l", "", "Log level (short)")
	_ = fs.Parse(args)

	if server != "" {
		cfg.ServerBaseURL = server
	}
	if timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if dsn != "" {
		cfg.DatabaseDSN = dsn
	}
	if level != "" {
		cfg.LogLevel = level
	}
}
