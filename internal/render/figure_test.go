// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package render

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/tomtom215/tablero/internal/charts"
	"github.com/tomtom215/tablero/internal/models"
)

func sales(t *testing.T) models.TabularResult {
	t.Helper()
	r, err := models.NewTabularResult(
		[]models.Column{
			{Name: "Anio", Type: models.ScalarNumeric},
			{Name: "TotalVentas", Type: models.ScalarNumeric},
		},
		[]models.Row{
			{int64(2011), decimal.RequireFromString("100.50")},
			{int64(2012), decimal.RequireFromString("250.25")},
			{int64(2013), decimal.RequireFromString("30")},
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func figureFor(t *testing.T, r models.TabularResult, kind models.ChartKind) Figure {
	t.Helper()
	spec, err := charts.Map(r, kind)
	if err != nil {
		t.Fatalf("Map(%s) error = %v", kind, err)
	}
	fig, err := NewFigure(spec, r)
	if err != nil {
		t.Fatalf("NewFigure(%s) error = %v", kind, err)
	}
	return fig
}

func TestNewFigureTraceTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     models.ChartKind
		typ      string
		mode     string
		fill     string
		nTraces  int
		hasXAxis bool
	}{
		{models.ChartBar, "bar", "", "", 1, true},
		{models.ChartWaterfall, "bar", "", "", 1, true},
		{models.ChartLine, "scatter", "lines", "", 1, true},
		{models.ChartArea, "scatter", "lines", "tozeroy", 1, true},
		{models.ChartHistogram, "histogram", "", "", 1, true},
		{models.ChartPie, "pie", "", "", 1, false},
		{models.ChartFunnel, "funnel", "", "", 1, true},
		{models.ChartBox, "box", "", "", 1, true},
		{models.ChartRadar, "scatterpolar", "lines", "", 1, false},
		{models.ChartScatter, "scatter", "markers", "", 1, true},
		{models.ChartSparklines, "scatter", "lines", "", 2, true},
	}

	r := sales(t)
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			fig := figureFor(t, r, tt.kind)
			if len(fig.Data) != tt.nTraces {
				t.Fatalf("traces = %d, want %d", len(fig.Data), tt.nTraces)
			}
			tr := fig.Data[0]
			if tr.Type != tt.typ || tr.Mode != tt.mode || tr.Fill != tt.fill {
				t.Errorf("trace = %s/%s/%s, want %s/%s/%s", tr.Type, tr.Mode, tr.Fill, tt.typ, tt.mode, tt.fill)
			}
			if (fig.Layout.XAxis != nil) != tt.hasXAxis {
				t.Errorf("xaxis present = %v", fig.Layout.XAxis != nil)
			}
			if fig.Layout.Title.Text == "" {
				t.Error("layout title is empty")
			}
		})
	}
}

func TestNewFigureConvertsDecimals(t *testing.T) {
	t.Parallel()

	fig := figureFor(t, sales(t), models.ChartBar)
	want := []interface{}{100.5, 250.25, 30.0}
	if !reflect.DeepEqual(fig.Data[0].Y, want) {
		t.Errorf("y = %#v, want %#v", fig.Data[0].Y, want)
	}

	b, err := json.Marshal(fig)
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Data []struct {
			Y []float64 `json:"y"`
		} `json:"data"`
	}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("figure JSON does not decode: %v\n%s", err, b)
	}
}

func TestNewFigureWaterfall(t *testing.T) {
	t.Parallel()

	tr := figureFor(t, sales(t), models.ChartWaterfall).Data[0]
	if len(tr.Text) != 3 || tr.Marker == nil || len(tr.Marker.Color) != 3 {
		t.Fatalf("waterfall trace = %+v", tr)
	}
	if tr.Text[1] != 250.25 {
		t.Errorf("text[1] = %v", tr.Text[1])
	}
}

func TestNewFigurePieCounts(t *testing.T) {
	t.Parallel()

	r, err := models.NewTabularResult(
		[]models.Column{{Name: "Color", Type: models.ScalarText}},
		[]models.Row{{"Rojo"}, {"Negro"}, {"Rojo"}, {nil}},
	)
	if err != nil {
		t.Fatal(err)
	}
	tr := figureFor(t, r, models.ChartPie).Data[0]
	if !reflect.DeepEqual(tr.Labels, []interface{}{"Rojo", "Negro", nil}) {
		t.Errorf("labels = %v", tr.Labels)
	}
	if !reflect.DeepEqual(tr.Values, []interface{}{2, 1, 1}) {
		t.Errorf("values = %v", tr.Values)
	}
}

func TestNewFigureScatterSize(t *testing.T) {
	t.Parallel()

	m := figureFor(t, sales(t), models.ChartScatter).Data[0].Marker
	if m == nil || m.SizeMode != "area" {
		t.Fatalf("marker = %+v", m)
	}
	if !reflect.DeepEqual(m.Size, []float64{100.5, 250.25, 30}) {
		t.Errorf("sizes = %v", m.Size)
	}
	// The largest value 250.25 is also the cap, so it is drawn 250.25px wide.
	want := 2 / 250.25
	if math.Abs(m.SizeRef-want) > 1e-9 {
		t.Errorf("sizeref = %v, want %v", m.SizeRef, want)
	}
}

func TestNewFigureScatterSizeFollowsColumnMax(t *testing.T) {
	t.Parallel()

	r, err := models.NewTabularResult(
		[]models.Column{{Name: "Qty", Type: models.ScalarNumeric}, {Name: "Price", Type: models.ScalarNumeric}},
		[]models.Row{{int64(1), int64(900)}, {int64(2), int64(450)}},
	)
	if err != nil {
		t.Fatal(err)
	}
	spec := models.ChartSpec{Kind: models.ChartScatter, X: "Qty", Y: "Price", Size: "Price", SizeMax: "Price"}
	fig, err := NewFigure(spec, r)
	if err != nil {
		t.Fatal(err)
	}
	m := fig.Data[0].Marker
	if m == nil {
		t.Fatal("marker missing")
	}
	// No pixel ceiling beyond the column maximum.
	if want := 2 / 900.0; math.Abs(m.SizeRef-want) > 1e-12 {
		t.Errorf("sizeref = %v, want %v", m.SizeRef, want)
	}
}

func TestNewFigureSparklines(t *testing.T) {
	t.Parallel()

	fig := figureFor(t, sales(t), models.ChartSparklines)
	if fig.Data[0].Name != "Anio" || fig.Data[1].Name != "TotalVentas" {
		t.Errorf("series = %s, %s", fig.Data[0].Name, fig.Data[1].Name)
	}
	if !reflect.DeepEqual(fig.Data[0].X, []interface{}{0, 1, 2}) {
		t.Errorf("x = %v", fig.Data[0].X)
	}
	if fig.Layout.XAxis.Title.Text != "Fecha" || fig.Layout.YAxis.Title.Text != "Valor" {
		t.Errorf("axes = %+v / %+v", fig.Layout.XAxis, fig.Layout.YAxis)
	}
}

func TestNewFigureMissingColumn(t *testing.T) {
	t.Parallel()

	spec := models.ChartSpec{Kind: models.ChartBar, X: "Anio", Y: "Nope"}
	if _, err := NewFigure(spec, sales(t)); err == nil {
		t.Error("expected an error for a missing column")
	}
	if _, err := NewFigure(models.ChartSpec{Kind: "heatmap", X: "Anio", Y: "Anio"}, sales(t)); err == nil {
		t.Error("expected an error for an unknown kind")
	}
}

func TestScalar(t *testing.T) {
	t.Parallel()

	ts := time.Date(2012, 3, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		in   interface{}
		want interface{}
	}{
		{decimal.RequireFromString("1.5"), 1.5},
		{ts, "2012-03-01T00:00:00Z"},
		{[]byte("abc"), "abc"},
		{math.NaN(), nil},
		{int64(3), int64(3)},
		{nil, nil},
	}
	for _, tt := range tests {
		if got := Scalar(tt.in); got != tt.want {
			t.Errorf("Scalar(%v) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestDecimal(t *testing.T) {
	t.Parallel()

	if d, ok := Decimal(int64(7)); !ok || !d.Equal(decimal.NewFromInt(7)) {
		t.Errorf("Decimal(int64) = %v, %v", d, ok)
	}
	if _, ok := Decimal("7"); ok {
		t.Error("text must not read as a number")
	}
	if _, ok := Decimal(math.Inf(1)); ok {
		t.Error("infinity must not read as a number")
	}
}
