// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/hostaudit/internal/logging"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Example:
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	logging.Init(cfg.Logging.ToLoggingConfig())
type Config struct {
	Logging LoggingConfig `koanf:"logging"`
	Audit   AuditConfig   `koanf:"audit"`
	Server  ServerConfig  `koanf:"server"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, audit, warn, error.
	// Anything above audit silences audit records.
	// Default: info
	Level string `koanf:"level" validate:"loglevel"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// ToLoggingConfig converts to the logging package's Config.
func (c LoggingConfig) ToLoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Level
	if c.Format != "" {
		cfg.Format = c.Format
	}
	cfg.Caller = c.Caller
	return cfg
}

// AuditConfig controls host event auditing.
type AuditConfig struct {
	// Enabled registers the audit dispatcher on the process hook registry.
	// Default: true
	Enabled bool `koanf:"enabled"`

	// CacheCapacity bounds the number of distinct events whose repeat
	// counts are remembered.
	// Default: 1000
	CacheCapacity int `koanf:"cache_capacity" validate:"gte=1,lte=1000000"`

	// ReportInterval is how often cache statistics are logged. Zero
	// disables the reporter.
	// Default: 5m
	ReportInterval time.Duration `koanf:"report_interval" validate:"gte=0"`

	// SinkBreakerFailures is the number of consecutive sink write failures
	// that opens the sink circuit breaker. Zero disables the breaker.
	// Default: 5
	SinkBreakerFailures uint32 `koanf:"sink_breaker_failures" validate:"lte=1000"`

	// SinkBreakerTimeout is how long an open breaker drops records before
	// trying the sink again.
	// Default: 30s
	SinkBreakerTimeout time.Duration `koanf:"sink_breaker_timeout" validate:"gte=0"`
}

// ServerConfig holds HTTP server settings for health, metrics and debug endpoints.
type ServerConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`

	// DebugRateLimit caps /debug/audit requests per client IP per minute.
	// Zero disables the limit.
	DebugRateLimit int `koanf:"debug_rate_limit" validate:"gte=0"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path" validate:"urlpath"`
}

// String renders a one-line summary suitable for a startup log.
func (c *Config) String() string {
	return fmt.Sprintf("logging=%s/%s audit=%t(capacity=%d) server=%s metrics=%t(%s)",
		c.Logging.Level, c.Logging.Format,
		c.Audit.Enabled, c.Audit.CacheCapacity,
		c.Server.Addr(),
		c.Metrics.Enabled, c.Metrics.Path)
}
