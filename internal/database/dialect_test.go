// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package database

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/duckdb/duckdb-go/v2"
	"github.com/shopspring/decimal"

	"github.com/tomtom215/tablero/internal/config"
	"github.com/tomtom215/tablero/internal/models"
)

func TestPreviewStatement(t *testing.T) {
	t.Parallel()

	ref := models.TableRef{Schema: "Sales", Name: "Customer"}
	if got := DialectTSQL.PreviewStatement(ref, 5); got != "SELECT TOP 5 * FROM Sales.Customer" {
		t.Errorf("tsql preview = %q", got)
	}
	if got := DialectDuckDB.PreviewStatement(ref, 100); got != "SELECT * FROM Sales.Customer LIMIT 100" {
		t.Errorf("duckdb preview = %q", got)
	}
}

func TestParseDialect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Dialect
		wantErr bool
	}{
		{"duckdb", DialectDuckDB, false},
		{"TSQL", DialectTSQL, false},
		{"sqlserver", DialectTSQL, false},
		{"mysql", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDialect(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseDialect(%q) = %q, %v", tt.in, got, err)
		}
	}

	cfg := &config.Config{Database: config.DatabaseConfig{Driver: config.DriverSQLServer}}
	if DialectFor(cfg) != DialectTSQL {
		t.Error("sqlserver driver should imply tsql")
	}
}

func TestScalarTypeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want models.ScalarType
		ok   bool
	}{
		{"BIGINT", models.ScalarNumeric, true},
		{"DECIMAL(38,4)", models.ScalarNumeric, true},
		{"money", models.ScalarNumeric, true},
		{"TIMESTAMP", models.ScalarDatetime, true},
		{"DATETIME2", models.ScalarDatetime, true},
		{"VARCHAR", models.ScalarText, true},
		{"NVARCHAR", models.ScalarText, true},
		{"BOOLEAN", models.ScalarCategorical, true},
		{"ENUM('a','b')", models.ScalarCategorical, true},
		{"", "", false},
		{"STRUCT(a INTEGER)", "", false},
	}
	for _, tt := range tests {
		got, ok := scalarTypeOf(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("scalarTypeOf(%q) = %q,%v want %q,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestInferScalarType(t *testing.T) {
	t.Parallel()

	rows := []models.Row{{nil, nil}, {int64(3), "x"}}
	if got := inferScalarType(rows, 0); got != models.ScalarNumeric {
		t.Errorf("column 0 = %q", got)
	}
	if got := inferScalarType(rows, 1); got != models.ScalarText {
		t.Errorf("column 1 = %q", got)
	}
	if got := inferScalarType([]models.Row{{nil}}, 0); got != models.ScalarText {
		t.Errorf("all-NULL column = %q, want text", got)
	}
}

func TestNormalizeValue(t *testing.T) {
	t.Parallel()

	now := time.Date(2012, 1, 2, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		in     interface{}
		dbType string
		want   interface{}
	}{
		{"int32", int32(7), "INTEGER", int64(7)},
		{"float32", float32(1.5), "REAL", float64(1.5)},
		{"time", now, "TIMESTAMP", now},
		{"bytes text", []byte("hola"), "NVARCHAR", "hola"},
		{"nil", nil, "INTEGER", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeValue(tt.in, tt.dbType); got != tt.want {
				t.Errorf("normalizeValue = %#v, want %#v", got, tt.want)
			}
		})
	}

	d := normalizeValue(duckdb.Decimal{Width: 19, Scale: 4, Value: big.NewInt(12345678)}, "DECIMAL(19,4)")
	if dd, ok := d.(decimal.Decimal); !ok || !dd.Equal(decimal.RequireFromString("1234.5678")) {
		t.Errorf("duckdb decimal = %#v", d)
	}

	m := normalizeValue([]byte("19.9900"), "MONEY")
	if md, ok := m.(decimal.Decimal); !ok || !md.Equal(decimal.RequireFromString("19.99")) {
		t.Errorf("money bytes = %#v", m)
	}

	u := normalizeValue(uint64(math.MaxUint64), "UBIGINT")
	if ud, ok := u.(decimal.Decimal); !ok || ud.String() != "18446744073709551615" {
		t.Errorf("uint64 overflow = %#v", u)
	}
}
