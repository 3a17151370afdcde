// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateDashboard(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDatabase() error {
	if err := c.validateBreaker(); err != nil {
		return err
	}
	switch c.Database.Driver {
	case DriverDuckDB:
		return c.validateDuckDB()
	case DriverSQLServer:
		return c.validateSQLServer()
	default:
		return fmt.Errorf("DB_DRIVER must be one of: %s, %s", DriverDuckDB, DriverSQLServer)
	}
}

func (c *Config) validateBreaker() error {
	if c.Database.BreakerFailures == 0 {
		return fmt.Errorf("DB_BREAKER_FAILURES must be at least 1")
	}
	if c.Database.BreakerTimeout <= 0 {
		return fmt.Errorf("DB_BREAKER_TIMEOUT must be positive")
	}
	if c.Database.QueryTimeout < 0 {
		return fmt.Errorf("DB_QUERY_TIMEOUT must not be negative")
	}
	if c.Database.ProbeInterval < 0 {
		return fmt.Errorf("DB_PROBE_INTERVAL must not be negative")
	}
	return nil
}

func (c *Config) validateDuckDB() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DUCKDB_PATH is required when DB_DRIVER=duckdb")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative")
	}
	switch c.Database.AccessMode {
	case "read_write", "read_only", "automatic":
	default:
		return fmt.Errorf("DUCKDB_ACCESS_MODE must be one of: read_write, read_only, automatic")
	}
	return nil
}

func (c *Config) validateSQLServer() error {
	if c.Database.Host == "" {
		return fmt.Errorf("MSSQL_HOST is required when DB_DRIVER=sqlserver")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("MSSQL_DATABASE is required when DB_DRIVER=sqlserver")
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("MSSQL_PORT must be between 1 and 65535")
	}
	if !c.Database.TrustedConnection && c.Database.User == "" {
		return fmt.Errorf("MSSQL_USER is required unless MSSQL_TRUSTED_CONNECTION=true")
	}
	if c.Database.SeedSampleData {
		return fmt.Errorf("SEED_SAMPLE_DATA is only supported with DB_DRIVER=duckdb")
	}
	return nil
}

// Preview row bounds. The upper limit matches the dashboard's row slider.
const (
	minRows = 1
	maxRows = 100
)

func (c *Config) validateDashboard() error {
	d := c.Dashboard
	if d.MaxRows < minRows || d.MaxRows > maxRows {
		return fmt.Errorf("DASHBOARD_MAX_ROWS must be between %d and %d", minRows, maxRows)
	}
	if d.DefaultRows < minRows || d.DefaultRows > d.MaxRows {
		return fmt.Errorf("DASHBOARD_DEFAULT_ROWS must be between %d and DASHBOARD_MAX_ROWS (%d)", minRows, d.MaxRows)
	}
	if d.DetailRows < minRows {
		return fmt.Errorf("DASHBOARD_DETAIL_ROWS must be at least %d", minRows)
	}
	if d.ImportantPreviewRows < minRows {
		return fmt.Errorf("DASHBOARD_IMPORTANT_PREVIEW_ROWS must be at least %d", minRows)
	}
	switch strings.ToLower(d.Dialect) {
	case "", "duckdb", "tsql":
	default:
		return fmt.Errorf("SQL_DIALECT must be one of: duckdb, tsql")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	switch c.Logging.Format {
	case "", "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
}

// IsProduction reports ENVIRONMENT=production (or prod).
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}
