// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package models

import "strings"

// ChartKind is the closed set of chart types a user can pick.
type ChartKind string

const (
	ChartBar        ChartKind = "bar"
	ChartLine       ChartKind = "line"
	ChartHistogram  ChartKind = "histogram"
	ChartPie        ChartKind = "pie"
	ChartFunnel     ChartKind = "funnel"
	ChartScatter    ChartKind = "scatter"
	ChartSparklines ChartKind = "sparklines"
	ChartBox        ChartKind = "box"
	ChartArea       ChartKind = "area"
	ChartRadar      ChartKind = "radar"
	ChartWaterfall  ChartKind = "waterfall"
)

// Dropdown order.
var chartKinds = []ChartKind{
	ChartBar, ChartLine, ChartHistogram, ChartPie, ChartFunnel, ChartScatter,
	ChartSparklines, ChartBox, ChartArea, ChartRadar, ChartWaterfall,
}

var chartLabels = map[ChartKind]string{
	ChartBar:        "Gráfico de Barras",
	ChartLine:       "Gráfico Lineal",
	ChartHistogram:  "Histograma",
	ChartPie:        "Gráfico Circular (Pie)",
	ChartFunnel:     "Gráfico de Embudo",
	ChartScatter:    "Gráfico de Dispersión",
	ChartSparklines: "Sparklines",
	ChartBox:        "Diagrama de Caja",
	ChartArea:       "Gráfico de Área",
	ChartRadar:      "Gráfico de Radar",
	ChartWaterfall:  "Gráfico de Cascada",
}

// ChartKinds returns every kind in dropdown order.
func ChartKinds() []ChartKind {
	out := make([]ChartKind, len(chartKinds))
	copy(out, chartKinds)
	return out
}

// Valid reports whether k is one of the known kinds.
func (k ChartKind) Valid() bool {
	_, ok := chartLabels[k]
	return ok
}

// Label is the Spanish display name. Unknown kinds return their raw value.
func (k ChartKind) Label() string {
	if l, ok := chartLabels[k]; ok {
		return l
	}
	return string(k)
}

// ParseChartKind accepts an identifier ("scatter") or a display label
// ("Gráfico de Dispersión"), ignoring case and surrounding space.
func ParseChartKind(s string) (ChartKind, bool) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "sparkline", "sparkline-set":
		return ChartSparklines, true
	}
	for _, k := range chartKinds {
		if strings.EqualFold(s, string(k)) || strings.EqualFold(s, chartLabels[k]) {
			return k, true
		}
	}
	return "", false
}

// Axis roles.
const (
	RoleX        = "x"
	RoleY        = "y"
	RoleCategory = "category"
	RoleTheta    = "theta"
	RoleRadius   = "r"
	RoleSize     = "size"
	RoleSeries   = "series"
)

// AxisRequirement is what a kind needs from a result before it can be drawn.
type AxisRequirement struct {
	MinColumns int `json:"min_columns"`

	// MinNumeric counts columns declared numeric.
	MinNumeric int      `json:"min_numeric"`
	Roles      []string `json:"roles"`
}

// Requirement returns the axis requirement for k. Unknown kinds get the
// zero value.
func (k ChartKind) Requirement() AxisRequirement {
	switch k {
	case ChartBar, ChartLine, ChartArea, ChartBox, ChartWaterfall, ChartFunnel:
		return AxisRequirement{MinColumns: 2, Roles: []string{RoleX, RoleY}}
	case ChartHistogram:
		return AxisRequirement{MinColumns: 1, Roles: []string{RoleX}}
	case ChartPie:
		return AxisRequirement{MinColumns: 1, Roles: []string{RoleCategory}}
	case ChartRadar:
		return AxisRequirement{MinColumns: 2, Roles: []string{RoleTheta, RoleRadius}}
	case ChartScatter:
		return AxisRequirement{MinColumns: 2, MinNumeric: 2, Roles: []string{RoleX, RoleY, RoleSize}}
	case ChartSparklines:
		return AxisRequirement{MinColumns: 1, MinNumeric: 1, Roles: []string{RoleSeries}}
	default:
		return AxisRequirement{}
	}
}

// Aggregate names a value the renderer derives instead of reading a column.
type Aggregate string

// AggregateCount plots how often each x value occurs.
const AggregateCount Aggregate = "count"

// ChartSpec is a renderer-agnostic description of one chart. Fields name
// result columns; no values are copied in.
type ChartSpec struct {
	Kind  ChartKind `json:"kind"`
	Title string    `json:"title"`

	X string `json:"x,omitempty"`
	Y string `json:"y,omitempty"`

	// XFromRowIndex plots against row position instead of a column.
	XFromRowIndex bool `json:"x_row_index,omitempty"`

	Aggregate Aggregate `json:"aggregate,omitempty"`

	Size string `json:"size,omitempty"`

	// SizeMax names the column whose largest value caps marker size.
	SizeMax string `json:"size_max,omitempty"`

	Color  string   `json:"color,omitempty"`
	Text   string   `json:"text,omitempty"`
	Series []string `json:"series,omitempty"`

	XAxisTitle string `json:"x_axis_title,omitempty"`
	YAxisTitle string `json:"y_axis_title,omitempty"`
}
