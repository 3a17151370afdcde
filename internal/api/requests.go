// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Query parameter structs. Field names in validation messages come from
// the query tag.

// PreviewRequest is /tables/{schema}/{table}/preview and export.xlsx.
type PreviewRequest struct {
	Table string `query:"table" validate:"required,tableref"`
	Rows  int    `query:"rows" validate:"min=1,max=100"`
}

// ChartRequest is /charts. Kind is not checked against the known kinds;
// an unrecognized one comes back as a chart warning.
type ChartRequest struct {
	Table string `query:"table" validate:"required,tableref"`
	Kind  string `query:"kind" validate:"required,max=100"`
	Rows  int    `query:"rows" validate:"min=1,max=100"`
}

// AnswerRequest is /questions/answer.
type AnswerRequest struct {
	Table    string `query:"table" validate:"required,tableref"`
	Question string `query:"question" validate:"required,max=500"`
}

// DashboardRequest is /dashboard. Every field is optional.
type DashboardRequest struct {
	Table     string `query:"table" validate:"omitempty,tableref"`
	Chart     string `query:"chart" validate:"omitempty,max=100"`
	Rows      int    `query:"rows" validate:"min=0,max=100"`
	Important string `query:"important" validate:"omitempty,tableref"`
	Question  string `query:"question" validate:"omitempty,max=500"`
}

// getIntParam reads an integer parameter, returning def when it is
// absent. ok is false for a value that is not an integer.
func getIntParam(r *http.Request, name string, def int) (n int, ok bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def, false
	}
	return n, true
}

// pathTable joins the {schema} and {table} URL parameters.
func pathTable(r *http.Request) string {
	schema, table := chi.URLParam(r, "schema"), chi.URLParam(r, "table")
	if schema == "" || table == "" {
		return ""
	}
	return schema + "." + table
}
