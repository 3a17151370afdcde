// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

// Package render turns a ChartSpec and the result it was mapped from into
// a Plotly figure the browser draws with Plotly.newPlot(el, data, layout).
//
// This is the only place cell values are converted: decimals become
// float64, times become RFC 3339 strings and byte slices become strings.
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tomtom215/tablero/internal/models"
)

// Figure is a Plotly figure.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one Plotly trace. Only the attributes a kind needs are set.
type Trace struct {
	Type     string        `json:"type"`
	Mode     string        `json:"mode,omitempty"`
	Name     string        `json:"name,omitempty"`
	X        []interface{} `json:"x,omitempty"`
	Y        []interface{} `json:"y,omitempty"`
	Labels   []interface{} `json:"labels,omitempty"`
	Values   []interface{} `json:"values,omitempty"`
	Theta    []interface{} `json:"theta,omitempty"`
	R        []interface{} `json:"r,omitempty"`
	Text     []interface{} `json:"text,omitempty"`
	Fill     string        `json:"fill,omitempty"`
	HistFunc string        `json:"histfunc,omitempty"`
	Marker   *Marker       `json:"marker,omitempty"`
}

// Marker styles points and bars.
type Marker struct {
	Color    []interface{} `json:"color,omitempty"`
	Size     []float64     `json:"size,omitempty"`
	SizeMode string        `json:"sizemode,omitempty"`
	SizeRef  float64       `json:"sizeref,omitempty"`
	SizeMin  float64       `json:"sizemin,omitempty"`
}

// Layout carries titles and axes.
type Layout struct {
	Title      Title `json:"title"`
	XAxis      *Axis `json:"xaxis,omitempty"`
	YAxis      *Axis `json:"yaxis,omitempty"`
	ShowLegend *bool `json:"showlegend,omitempty"`
}

type Title struct {
	Text string `json:"text"`
}

type Axis struct {
	Title Title `json:"title"`
}

// NewFigure builds the figure for spec over result. It fails only when
// spec names a column result does not have.
func NewFigure(spec models.ChartSpec, result models.TabularResult) (Figure, error) {
	fig := Figure{Layout: Layout{Title: Title{Text: spec.Title}}}

	column := func(name string) ([]interface{}, error) {
		idx := result.ColumnIndex(name)
		if idx < 0 {
			return nil, fmt.Errorf("column %q not in result", name)
		}
		out := make([]interface{}, len(result.Rows))
		for i, row := range result.Rows {
			out[i] = Scalar(row[idx])
		}
		return out, nil
	}

	switch spec.Kind {
	case models.ChartSparklines:
		index := make([]interface{}, len(result.Rows))
		for i := range index {
			index[i] = i
		}
		for _, name := range spec.Series {
			y, err := column(name)
			if err != nil {
				return Figure{}, err
			}
			fig.Data = append(fig.Data, Trace{Type: "scatter", Mode: "lines", Name: name, X: index, Y: y})
		}
		fig.Layout.XAxis = &Axis{Title: Title{Text: spec.XAxisTitle}}
		fig.Layout.YAxis = &Axis{Title: Title{Text: spec.YAxisTitle}}
		return fig, nil

	case models.ChartPie:
		x, err := column(spec.X)
		if err != nil {
			return Figure{}, err
		}
		labels, values := countValues(x)
		fig.Data = []Trace{{Type: "pie", Labels: labels, Values: values}}
		return fig, nil

	case models.ChartHistogram:
		x, err := column(spec.X)
		if err != nil {
			return Figure{}, err
		}
		fig.Data = []Trace{{Type: "histogram", X: x, HistFunc: string(spec.Aggregate)}}
		fig.Layout.XAxis = &Axis{Title: Title{Text: spec.X}}
		fig.Layout.YAxis = &Axis{Title: Title{Text: "count"}}
		return fig, nil
	}

	x, err := column(spec.X)
	if err != nil {
		return Figure{}, err
	}
	y, err := column(spec.Y)
	if err != nil {
		return Figure{}, err
	}

	var trace Trace
	switch spec.Kind {
	case models.ChartBar, models.ChartWaterfall:
		trace = Trace{Type: "bar", X: x, Y: y}
		if spec.Text != "" {
			if trace.Text, err = column(spec.Text); err != nil {
				return Figure{}, err
			}
		}
		if spec.Color != "" {
			colors, err := column(spec.Color)
			if err != nil {
				return Figure{}, err
			}
			trace.Marker = &Marker{Color: colors}
		}
	case models.ChartLine:
		trace = Trace{Type: "scatter", Mode: "lines", X: x, Y: y}
	case models.ChartArea:
		trace = Trace{Type: "scatter", Mode: "lines", Fill: "tozeroy", X: x, Y: y}
	case models.ChartFunnel:
		trace = Trace{Type: "funnel", X: x, Y: y}
	case models.ChartBox:
		trace = Trace{Type: "box", X: x, Y: y}
	case models.ChartRadar:
		fig.Data = []Trace{{Type: "scatterpolar", Mode: "lines", Theta: x, R: y}}
		return fig, nil
	case models.ChartScatter:
		trace = Trace{Type: "scatter", Mode: "markers", X: x, Y: y}
		if spec.Size != "" {
			marker, err := sizedMarker(result, spec.Size, spec.SizeMax)
			if err != nil {
				return Figure{}, err
			}
			trace.Marker = marker
		}
	default:
		return Figure{}, fmt.Errorf("cannot render chart kind %q", spec.Kind)
	}

	fig.Data = []Trace{trace}
	fig.Layout.XAxis = &Axis{Title: Title{Text: spec.X}}
	fig.Layout.YAxis = &Axis{Title: Title{Text: spec.Y}}
	return fig, nil
}

// sizedMarker scales point area by the size column. The largest point is
// drawn at the largest value of maxCol, in pixels.
// Values that are not numbers or are negative get size zero.
func sizedMarker(result models.TabularResult, sizeCol, maxCol string) (*Marker, error) {
	si := result.ColumnIndex(sizeCol)
	if si < 0 {
		return nil, fmt.Errorf("column %q not in result", sizeCol)
	}
	if maxCol == "" {
		maxCol = sizeCol
	}
	mi := result.ColumnIndex(maxCol)
	if mi < 0 {
		return nil, fmt.Errorf("column %q not in result", maxCol)
	}

	sizes := make([]float64, len(result.Rows))
	largest := decimal.Zero
	capValue := decimal.Zero
	for i, row := range result.Rows {
		if d, ok := Decimal(row[si]); ok && d.IsPositive() {
			sizes[i] = d.InexactFloat64()
			if d.GreaterThan(largest) {
				largest = d
			}
		}
		if d, ok := Decimal(row[mi]); ok && d.GreaterThan(capValue) {
			capValue = d
		}
	}

	pixels := capValue.InexactFloat64()
	if pixels < 1 || largest.IsZero() {
		return &Marker{Size: sizes, SizeMode: "area", SizeRef: 1, SizeMin: 1}, nil
	}
	// Plotly draws area-mode markers with diameter sqrt(size/sizeref).
	ref := 2 * largest.InexactFloat64() / (pixels * pixels)
	return &Marker{Size: sizes, SizeMode: "area", SizeRef: ref, SizeMin: 1}, nil
}

// countValues tallies x in first-seen order.
func countValues(x []interface{}) (labels, values []interface{}) {
	index := make(map[string]int)
	var counts []int
	for _, v := range x {
		key := fmt.Sprint(v)
		i, ok := index[key]
		if !ok {
			i = len(labels)
			index[key] = i
			labels = append(labels, v)
			counts = append(counts, 0)
		}
		counts[i]++
	}
	values = make([]interface{}, len(counts))
	for i, c := range counts {
		values[i] = c
	}
	return labels, values
}

// Scalar converts a cell into something encoding/json and Plotly agree on.
func Scalar(v interface{}) interface{} {
	switch t := v.(type) {
	case decimal.Decimal:
		return t.InexactFloat64()
	case *decimal.Decimal:
		if t == nil {
			return nil
		}
		return t.InexactFloat64()
	case time.Time:
		return t.Format(time.RFC3339)
	case []byte:
		return string(t)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
		return t
	default:
		return v
	}
}

// Decimal reads a numeric cell exactly. Text and nil report false.
func Decimal(v interface{}) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case decimal.Decimal:
		return t, true
	case int64:
		return decimal.NewFromInt(t), true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int32:
		return decimal.NewFromInt32(t), true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(t), true
	case float32:
		return decimal.NewFromFloat32(t), true
	default:
		return decimal.Zero, false
	}
}
