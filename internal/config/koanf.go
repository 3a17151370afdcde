// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order; the first existing file wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/tablero/config.yaml",
	"/etc/tablero/config.yml",
}

// ConfigPathEnvVar names an explicit config file.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:          DriverDuckDB,
			Path:            "/data/tablero.duckdb",
			MaxMemory:       "1GB",
			Threads:         0, // runtime.NumCPU()
			AccessMode:      "read_write",
			Host:            "localhost",
			Port:            1433,
			Name:            "AdventureWorks2012",
			Encrypt:         "disable",
			SeedSampleData:  false,
			BreakerFailures: 3,
			BreakerTimeout:  30 * time.Second,
			QueryTimeout:    30 * time.Second,
			ProbeInterval:   30 * time.Second,
		},
		Dashboard: DashboardConfig{
			DefaultRows:          10,
			MaxRows:              100,
			DetailRows:           100,
			ImportantPreviewRows: 5,
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8501,
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Security: SecurityConfig{
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf layers defaults, the config file and environment
// variables (ENV > file > defaults) and validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated env values for slice fields.
// Values already loaded as lists from YAML are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		s, ok := k.Get(path).(string)
		if !ok || s == "" {
			continue
		}
		var parts []string
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) == 0 {
			continue
		}
		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

var envMappings = map[string]string{
	// Database
	"db_driver":                "database.driver",
	"duckdb_path":              "database.path",
	"duckdb_max_memory":        "database.max_memory",
	"duckdb_threads":           "database.threads",
	"duckdb_access_mode":       "database.access_mode",
	"mssql_host":               "database.host",
	"mssql_port":               "database.port",
	"mssql_database":           "database.name",
	"mssql_user":               "database.user",
	"mssql_password":           "database.password",
	"mssql_instance":           "database.instance",
	"mssql_trusted_connection": "database.trusted_connection",
	"mssql_encrypt":            "database.encrypt",
	"seed_sample_data":         "database.seed_sample_data",
	"db_breaker_failures":      "database.breaker_failures",
	"db_breaker_timeout":       "database.breaker_timeout",
	"db_query_timeout":         "database.query_timeout",
	"db_probe_interval":        "database.probe_interval",

	// Dashboard
	"dashboard_default_rows":           "dashboard.default_rows",
	"dashboard_max_rows":               "dashboard.max_rows",
	"dashboard_detail_rows":            "dashboard.detail_rows",
	"dashboard_important_preview_rows": "dashboard.important_preview_rows",
	"sql_dialect":                      "dashboard.dialect",

	// Server
	"http_host":    "server.host",
	"http_port":    "server.port",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable to its koanf path.
// Unmapped variables return "" and are ignored.
//
//	MSSQL_HOST -> database.host
//	HTTP_PORT  -> server.port
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
