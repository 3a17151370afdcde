// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

// Package config loads Tablero's settings from defaults, an optional YAML
// file and environment variables, in that order of precedence.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("invalid configuration")
//	}
//
// A Config is read-only after Load and safe to share between goroutines.
package config

import "time"

// Supported database drivers.
const (
	DriverDuckDB    = "duckdb"
	DriverSQLServer = "sqlserver"
)

type Config struct {
	Database  DatabaseConfig  `koanf:"database"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatabaseConfig describes the one engine the dashboard reads from.
// Only the fields of the selected driver are used.
type DatabaseConfig struct {
	Driver string `koanf:"driver"`

	// DuckDB
	Path       string `koanf:"path"`
	MaxMemory  string `koanf:"max_memory"`
	Threads    int    `koanf:"threads"`
	AccessMode string `koanf:"access_mode"`

	// SQL Server
	Host              string `koanf:"host"`
	Port              int    `koanf:"port"`
	Name              string `koanf:"name"`
	User              string `koanf:"user"`
	Password          string `koanf:"password"`
	Instance          string `koanf:"instance"`
	TrustedConnection bool   `koanf:"trusted_connection"`
	Encrypt           string `koanf:"encrypt"`

	// SeedSampleData creates the Sales and Production sample tables on
	// start. DuckDB only.
	SeedSampleData bool `koanf:"seed_sample_data"`

	// Consecutive connection failures before the gateway stops trying, and
	// how long it waits before probing again.
	BreakerFailures uint32        `koanf:"breaker_failures"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`

	// QueryTimeout bounds one gateway statement. Zero disables it.
	QueryTimeout time.Duration `koanf:"query_timeout"`

	// ProbeInterval is how often the background probe pings the engine.
	// Zero disables the probe.
	ProbeInterval time.Duration `koanf:"probe_interval"`
}

// DashboardConfig holds the row bounds of the interaction pipeline.
type DashboardConfig struct {
	DefaultRows          int `koanf:"default_rows"`
	MaxRows              int `koanf:"max_rows"`
	DetailRows           int `koanf:"detail_rows"`
	ImportantPreviewRows int `koanf:"important_preview_rows"`

	// Dialect overrides the SQL dialect derived from the driver.
	Dialect string `koanf:"dialect"`
}

type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads the layered configuration and validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// EffectiveDialect is the SQL dialect previews are rendered in.
func (c *Config) EffectiveDialect() string {
	if c.Dashboard.Dialect != "" {
		return c.Dashboard.Dialect
	}
	if c.Database.Driver == DriverSQLServer {
		return "tsql"
	}
	return "duckdb"
}
