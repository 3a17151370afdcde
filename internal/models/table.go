// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package models

import (
	"errors"
	"strings"
)

// ErrInvalidTableRef is returned for names that are not "schema.table".
var ErrInvalidTableRef = errors.New(`table must be written as "schema.table"`)

// TableRef is a schema-qualified base table.
type TableRef struct {
	Schema string `json:"schema"`
	Name   string `json:"name"`
}

// String renders the reference the way it is selected and interpolated.
func (t TableRef) String() string {
	return t.Schema + "." + t.Name
}

// IsZero reports an unset reference.
func (t TableRef) IsZero() bool {
	return t.Schema == "" && t.Name == ""
}

// ParseTableRef splits "Sales.Customer" on its first dot.
func ParseTableRef(s string) (TableRef, error) {
	schema, name, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok || schema == "" || name == "" {
		return TableRef{}, ErrInvalidTableRef
	}
	return TableRef{Schema: schema, Name: name}, nil
}
