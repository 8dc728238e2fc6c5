package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr            = ":8080"
	defaultShutdownTimeout = 10 * time.Second
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr string
	// MetricsAddr serves /metrics on its own listener when set; otherwise
	// metrics share Addr.
	MetricsAddr string
	// SeedFile replaces the embedded seed when set.
	SeedFile        string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
// Unparseable values fall back to their defaults.
func FromEnv() Server {
	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) Server {
	cfg := Server{
		Addr:            defaultAddr,
		MetricsAddr:     strings.TrimSpace(getenv("ESCRUTINIO_METRICS_ADDR")),
		SeedFile:        strings.TrimSpace(getenv("ESCRUTINIO_SEED_FILE")),
		LogLevel:        slog.LevelInfo,
		ShutdownTimeout: defaultShutdownTimeout,
	}

	if addr := strings.TrimSpace(getenv("ESCRUTINIO_ADDR")); addr != "" {
		cfg.Addr = addr
	}
	if raw := getenv("ESCRUTINIO_LOG_LEVEL"); raw != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(raw))); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if raw := getenv("ESCRUTINIO_SHUTDOWN_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(raw)); err == nil && d > 0 {
			cfg.ShutdownTimeout = d
		}
	}
	return cfg
}
