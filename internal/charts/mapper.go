// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

// Package charts maps a TabularResult and a chart kind onto a ChartSpec.
//
// Columns are addressed by position only. The mapper reads declared column
// types to decide eligibility but never looks at or converts cell values,
// so the outcome depends on the result's shape and the kind alone.
// Anything that cannot be drawn comes back as a *Warning, never a panic.
package charts

import (
	"fmt"

	"github.com/tomtom215/tablero/internal/models"
)

// Map builds the ChartSpec for kind over result. The error is always a
// *Warning: empty input, a result of the wrong shape, or an unknown kind.
func Map(result models.TabularResult, kind models.ChartKind) (models.ChartSpec, error) {
	if result.IsEmpty() {
		return models.ChartSpec{}, emptyWarning(kind)
	}

	switch kind {
	case models.ChartBar, models.ChartLine, models.ChartArea, models.ChartBox, models.ChartFunnel:
		return mapXY(result, kind)
	case models.ChartWaterfall:
		return mapWaterfall(result)
	case models.ChartHistogram:
		return mapHistogram(result)
	case models.ChartPie:
		return mapPie(result)
	case models.ChartRadar:
		return mapRadar(result)
	case models.ChartScatter:
		return mapScatter(result)
	case models.ChartSparklines:
		return mapSparklines(result)
	default:
		return models.ChartSpec{}, unknownKindWarning(string(kind))
	}
}

// MapString is Map for a kind still in its raw form (identifier or
// Spanish label) as it arrives from a request.
func MapString(result models.TabularResult, kind string) (models.ChartSpec, error) {
	k, ok := models.ParseChartKind(kind)
	if !ok {
		if result.IsEmpty() {
			return models.ChartSpec{}, emptyWarning(models.ChartKind(kind))
		}
		return models.ChartSpec{}, unknownKindWarning(kind)
	}
	return Map(result, k)
}

func requireColumns(result models.TabularResult, kind models.ChartKind) error {
	need := kind.Requirement().MinColumns
	if have := len(result.Columns); have < need {
		return &Warning{
			Kind:      WarningShape,
			ChartKind: kind,
			Message:   fmt.Sprintf("%s necesita al menos %d columnas; el resultado tiene %d.", kind.Label(), need, have),
		}
	}
	return nil
}

func xyTitle(kind models.ChartKind, x, y string) string {
	return fmt.Sprintf("%s - %s vs %s", kind.Label(), x, y)
}

func mapXY(result models.TabularResult, kind models.ChartKind) (models.ChartSpec, error) {
	if err := requireColumns(result, kind); err != nil {
		return models.ChartSpec{}, err
	}
	x, y := result.Columns[0].Name, result.Columns[1].Name
	return models.ChartSpec{Kind: kind, Title: xyTitle(kind, x, y), X: x, Y: y}, nil
}

// Waterfall is a bar chart labelled and colored by its value column.
func mapWaterfall(result models.TabularResult) (models.ChartSpec, error) {
	spec, err := mapXY(result, models.ChartWaterfall)
	if err != nil {
		return spec, err
	}
	spec.Text = spec.Y
	spec.Color = spec.Y
	return spec, nil
}

func mapHistogram(result models.TabularResult) (models.ChartSpec, error) {
	if err := requireColumns(result, models.ChartHistogram); err != nil {
		return models.ChartSpec{}, err
	}
	x := result.Columns[0].Name
	return models.ChartSpec{
		Kind:      models.ChartHistogram,
		Title:     fmt.Sprintf("%s - %s", models.ChartHistogram.Label(), x),
		X:         x,
		Aggregate: models.AggregateCount,
	}, nil
}

// Pie slices are the occurrence counts of the first column's values.
func mapPie(result models.TabularResult) (models.ChartSpec, error) {
	if err := requireColumns(result, models.ChartPie); err != nil {
		return models.ChartSpec{}, err
	}
	x := result.Columns[0].Name
	return models.ChartSpec{
		Kind:      models.ChartPie,
		Title:     fmt.Sprintf("%s - %s", models.ChartPie.Label(), x),
		X:         x,
		Aggregate: models.AggregateCount,
	}, nil
}

// Radar puts the first column on the angular axis and the second on the
// radial one.
func mapRadar(result models.TabularResult) (models.ChartSpec, error) {
	return mapXY(result, models.ChartRadar)
}

// Scatter uses the first two numeric columns, wherever they sit, and
// scales point size by the second one up to its largest value.
func mapScatter(result models.TabularResult) (models.ChartSpec, error) {
	numeric := result.NumericColumns()
	if len(numeric) < 2 {
		return models.ChartSpec{}, &Warning{
			Kind:      WarningShape,
			ChartKind: models.ChartScatter,
			Message:   "No hay suficientes columnas numéricas para crear un gráfico de dispersión.",
		}
	}
	x, y := numeric[0].Name, numeric[1].Name
	return models.ChartSpec{
		Kind:    models.ChartScatter,
		Title:   xyTitle(models.ChartScatter, x, y),
		X:       x,
		Y:       y,
		Size:    y,
		SizeMax: y,
	}, nil
}

func mapSparklines(result models.TabularResult) (models.ChartSpec, error) {
	numeric := result.NumericColumns()
	if len(numeric) == 0 {
		return models.ChartSpec{}, &Warning{
			Kind:      WarningShape,
			ChartKind: models.ChartSparklines,
			Message:   "No hay columnas numéricas para crear sparklines.",
		}
	}
	series := make([]string, len(numeric))
	for i, c := range numeric {
		series[i] = c.Name
	}
	return models.ChartSpec{
		Kind:          models.ChartSparklines,
		Title:         "Sparklines - Tendencias de Métricas",
		XFromRowIndex: true,
		Series:        series,
		XAxisTitle:    "Fecha",
		YAxisTitle:    "Valor",
	}, nil
}
