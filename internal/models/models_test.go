// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package models

import (
	"errors"
	"testing"
)

func TestNewTabularResult(t *testing.T) {
	t.Parallel()

	cols := []Column{{Name: "Anio", Type: ScalarNumeric}, {Name: "Nombre", Type: ScalarText}}

	r, err := NewTabularResult(cols, []Row{{int64(2011), "a"}, {int64(2012), "b"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.NumRows() != 2 || r.IsEmpty() {
		t.Errorf("expected 2 rows, got %d", r.NumRows())
	}

	_, err = NewTabularResult(cols, []Row{{int64(2011)}})
	if !errors.Is(err, ErrRaggedRow) {
		t.Errorf("expected ErrRaggedRow, got %v", err)
	}
}

func TestEmptyResultIsValid(t *testing.T) {
	t.Parallel()

	r, err := NewTabularResult([]Column{{Name: "TotalClientes", Type: ScalarNumeric}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !r.IsEmpty() {
		t.Error("zero rows should be empty")
	}
	if r.Rows == nil {
		t.Error("rows should be a non-nil slice")
	}
	if len(r.Columns) != 1 {
		t.Error("empty result keeps its header")
	}
}

func TestColumnHelpers(t *testing.T) {
	t.Parallel()

	r, _ := NewTabularResult(
		[]Column{{Name: "a", Type: ScalarText}, {Name: "b", Type: ScalarNumeric}, {Name: "c", Type: ScalarNumeric}},
		[]Row{{"x", int64(1), 2.5}, {"y", int64(3), 4.5}},
	)

	if got := r.NumericColumns(); len(got) != 2 || got[0].Name != "b" || got[1].Name != "c" {
		t.Errorf("NumericColumns = %+v", got)
	}
	if r.ColumnIndex("c") != 2 || r.ColumnIndex("zz") != -1 {
		t.Error("ColumnIndex mismatch")
	}
	vals := r.Values("b")
	if len(vals) != 2 || vals[1] != int64(3) {
		t.Errorf("Values(b) = %v", vals)
	}
	if r.Values("zz") != nil {
		t.Error("unknown column should yield nil")
	}
}

func TestParseChartKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want ChartKind
		ok   bool
	}{
		{"bar", ChartBar, true},
		{" Scatter ", ChartScatter, true},
		{"Gráfico de Dispersión", ChartScatter, true},
		{"Gráfico de Cascada", ChartWaterfall, true},
		{"sparkline-set", ChartSparklines, true},
		{"Sparklines", ChartSparklines, true},
		{"heatmap", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseChartKind(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseChartKind(%q) = %q,%v want %q,%v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestChartKindsOrderAndLabels(t *testing.T) {
	t.Parallel()

	kinds := ChartKinds()
	if len(kinds) != 11 {
		t.Fatalf("expected 11 kinds, got %d", len(kinds))
	}
	if kinds[0] != ChartBar || kinds[len(kinds)-1] != ChartWaterfall {
		t.Errorf("unexpected order: %v", kinds)
	}
	for _, k := range kinds {
		if !k.Valid() || k.Label() == string(k) && k != ChartSparklines {
			t.Errorf("kind %q missing label", k)
		}
		if k.Requirement().MinColumns < 1 {
			t.Errorf("kind %q missing requirement", k)
		}
	}
	if ChartKind("nope").Valid() {
		t.Error("unknown kind reported valid")
	}

	kinds[0] = "mutated"
	if ChartKinds()[0] != ChartBar {
		t.Error("ChartKinds must return a copy")
	}
}

func TestScatterRequirement(t *testing.T) {
	t.Parallel()

	req := ChartScatter.Requirement()
	if req.MinNumeric != 2 || req.MinColumns != 2 {
		t.Errorf("scatter requirement = %+v", req)
	}
}

func TestParseTableRef(t *testing.T) {
	t.Parallel()

	ref, err := ParseTableRef(" Sales.SalesOrderHeader ")
	if err != nil {
		t.Fatal(err)
	}
	if ref.Schema != "Sales" || ref.Name != "SalesOrderHeader" || ref.String() != "Sales.SalesOrderHeader" {
		t.Errorf("ParseTableRef = %+v", ref)
	}

	for _, bad := range []string{"", "Customer", ".Customer", "Sales."} {
		if _, err := ParseTableRef(bad); !errors.Is(err, ErrInvalidTableRef) {
			t.Errorf("ParseTableRef(%q) error = %v", bad, err)
		}
	}
	if !(TableRef{}).IsZero() {
		t.Error("zero ref should report IsZero")
	}
}
