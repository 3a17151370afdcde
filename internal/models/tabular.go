// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package models

import (
	"errors"
	"fmt"
)

// ScalarType is the declared type of a result column. The chart mapper
// decides eligibility on this alone and never inspects cell values.
type ScalarType string

const (
	ScalarNumeric     ScalarType = "numeric"
	ScalarText        ScalarType = "text"
	ScalarDatetime    ScalarType = "datetime"
	ScalarCategorical ScalarType = "categorical"
)

// Column is one named, typed column of a TabularResult.
type Column struct {
	Name string     `json:"name"`
	Type ScalarType `json:"type"`

	// DatabaseType is the engine's own type name (INTEGER, NVARCHAR, ...).
	DatabaseType string `json:"database_type,omitempty"`
}

// Row holds one value per column, in column order. Numeric cells are
// int64, float64 or decimal.Decimal; NULL is nil.
type Row []interface{}

// ErrRaggedRow is returned when a row does not have one value per column.
var ErrRaggedRow = errors.New("row width does not match column count")

// TabularResult is an in-memory query result. A result with zero rows is
// valid and distinct from a failed query; failures travel as errors next
// to an empty result.
type TabularResult struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// NewTabularResult checks that every row is as wide as the header.
func NewTabularResult(columns []Column, rows []Row) (TabularResult, error) {
	for i, r := range rows {
		if len(r) != len(columns) {
			return EmptyResult(), fmt.Errorf("row %d has %d values for %d columns: %w", i, len(r), len(columns), ErrRaggedRow)
		}
	}
	if columns == nil {
		columns = []Column{}
	}
	if rows == nil {
		rows = []Row{}
	}
	return TabularResult{Columns: columns, Rows: rows}, nil
}

// EmptyResult has no columns and no rows. It serializes as empty arrays.
func EmptyResult() TabularResult {
	return TabularResult{Columns: []Column{}, Rows: []Row{}}
}

// IsEmpty reports whether there is nothing to display or chart.
func (r TabularResult) IsEmpty() bool {
	return len(r.Rows) == 0
}

// NumRows returns the number of rows.
func (r TabularResult) NumRows() int {
	return len(r.Rows)
}

// ColumnNames returns the header in order.
func (r TabularResult) ColumnNames() []string {
	names := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		names[i] = c.Name
	}
	return names
}

// NumericColumns returns the numeric columns in result order.
func (r TabularResult) NumericColumns() []Column {
	var out []Column
	for _, c := range r.Columns {
		if c.Type == ScalarNumeric {
			out = append(out, c)
		}
	}
	return out
}

// ColumnIndex returns the position of the named column, or -1.
func (r TabularResult) ColumnIndex(name string) int {
	for i, c := range r.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Values returns the cells of the named column. It returns nil for an
// unknown column.
func (r TabularResult) Values(name string) []interface{} {
	idx := r.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]interface{}, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row[idx]
	}
	return out
}
