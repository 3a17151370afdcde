// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package charts

import (
	"errors"

	"github.com/tomtom215/tablero/internal/models"
)

// WarningKind says why no chart was produced.
type WarningKind string

const (
	WarningEmpty       WarningKind = "empty"
	WarningShape       WarningKind = "shape"
	WarningUnknownKind WarningKind = "unknown_kind"
)

// Warning is the non-fatal "nothing to render" signal. Callers show
// Message to the user and carry on.
type Warning struct {
	Kind      WarningKind      `json:"kind"`
	ChartKind models.ChartKind `json:"chart_kind,omitempty"`
	Message   string           `json:"message"`
}

func (w *Warning) Error() string {
	return w.Message
}

// AsWarning extracts a *Warning from err.
func AsWarning(err error) (*Warning, bool) {
	var w *Warning
	if errors.As(err, &w) {
		return w, true
	}
	return nil, false
}

func emptyWarning(kind models.ChartKind) *Warning {
	return &Warning{
		Kind:      WarningEmpty,
		ChartKind: kind,
		Message:   "El resultado está vacío. No se puede crear el gráfico.",
	}
}

func unknownKindWarning(kind string) *Warning {
	return &Warning{
		Kind:      WarningUnknownKind,
		ChartKind: models.ChartKind(kind),
		Message:   "Tipo de gráfico no reconocido.",
	}
}
