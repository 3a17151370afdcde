// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package database

import (
	"fmt"
	"strings"

	"github.com/tomtom215/tablero/internal/config"
	"github.com/tomtom215/tablero/internal/models"
)

// Dialect decides how row-bounded previews are spelled.
type Dialect string

const (
	DialectDuckDB Dialect = "duckdb"
	DialectTSQL   Dialect = "tsql"
)

// ParseDialect accepts "duckdb", "tsql" or "sqlserver".
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "duckdb":
		return DialectDuckDB, nil
	case "tsql", "sqlserver", "mssql":
		return DialectTSQL, nil
	default:
		return "", fmt.Errorf("unknown SQL dialect %q", s)
	}
}

// DialectFor derives the dialect from the configuration.
func DialectFor(cfg *config.Config) Dialect {
	d, err := ParseDialect(cfg.EffectiveDialect())
	if err != nil {
		return DialectDuckDB
	}
	return d
}

// PreviewStatement selects at most n rows of every column of t. The
// identifiers are interpolated verbatim; callers only pass names taken
// from the table catalog.
func (d Dialect) PreviewStatement(t models.TableRef, n int) string {
	if d == DialectTSQL {
		return fmt.Sprintf("SELECT TOP %d * FROM %s", n, t)
	}
	return fmt.Sprintf("SELECT * FROM %s LIMIT %d", t, n)
}

// ListTablesStatement lists base tables as (table_schema, table_name).
func (d Dialect) ListTablesStatement() string {
	return "SELECT table_schema, table_name FROM information_schema.tables WHERE table_type = 'BASE TABLE'"
}
