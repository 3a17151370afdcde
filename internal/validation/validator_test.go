// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package validation

import (
	"errors"
	"strings"
	"testing"
)

type chartParams struct {
	Table string `query:"table" validate:"required,tableref"`
	Kind  string `query:"kind" validate:"omitempty,max=20"`
	Rows  int    `query:"rows" validate:"min=1,max=100"`
	Note  string `validate:"max=3"`
}

func TestGetValidatorSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() returned different instances")
	}
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         chartParams
		wantFields []string
		wantMsg    string
	}{
		{
			name: "valid with label",
			in:   chartParams{Table: "Sales.Customer", Kind: "Gráfico de Barras", Rows: 10},
		},
		{
			name: "valid without kind",
			in:   chartParams{Table: "Production.Product", Rows: 100},
		},
		{
			name:       "missing table",
			in:         chartParams{Rows: 10},
			wantFields: []string{"table"},
			wantMsg:    "table is required",
		},
		{
			name:       "table without schema",
			in:         chartParams{Table: "Customer", Rows: 10},
			wantFields: []string{"table"},
			wantMsg:    `table must be written as "schema.table"`,
		},
		{
			name:       "long kind and rows out of range",
			in:         chartParams{Table: "Sales.Customer", Kind: strings.Repeat("k", 21), Rows: 101},
			wantFields: []string{"kind", "rows"},
			wantMsg:    "rows must be at most 100",
		},
		{
			name:       "struct field name without query tag",
			in:         chartParams{Table: "Sales.Customer", Rows: 1, Note: "long"},
			wantFields: []string{"Note"},
			wantMsg:    "Note must be at most 3 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.in)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("ValidateStruct() error = %v", err)
				}
				return
			}

			var ve *RequestValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error = %v, want *RequestValidationError", err)
			}
			if len(ve.Fields) != len(tt.wantFields) {
				t.Fatalf("fields = %+v", ve.Fields)
			}
			for i, f := range ve.Fields {
				if f.Field != tt.wantFields[i] {
					t.Errorf("field %d = %q, want %q", i, f.Field, tt.wantFields[i])
				}
			}
			if !strings.Contains(ve.Error(), tt.wantMsg) {
				t.Errorf("message %q does not contain %q", ve.Error(), tt.wantMsg)
			}
		})
	}
}
