// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package dashboard

import (
	"github.com/tomtom215/tablero/internal/charts"
	"github.com/tomtom215/tablero/internal/models"
	"github.com/tomtom215/tablero/internal/questions"
	"github.com/tomtom215/tablero/internal/render"
)

// Selection is what the user picked for one interaction. Zero fields fall
// back to the defaults.
type Selection struct {
	// Table is "schema.table"; empty means nothing selected.
	Table string `json:"table"`

	// Chart is a kind identifier or its Spanish label.
	Chart string `json:"chart"`

	Rows      int    `json:"rows"`
	Important string `json:"important"`
	Question  string `json:"question"`
}

// Message levels.
const (
	LevelError   = "error"
	LevelWarning = "warning"
	LevelInfo    = "info"
)

// Pipeline steps, in run order.
const (
	StepConnect   = "connect"
	StepCatalog   = "catalog"
	StepDetail    = "detail"
	StepSample    = "sample"
	StepChart     = "chart"
	StepImportant = "important"
	StepQuestion  = "question"
)

// Message is a user-facing error, warning or note raised by one step.
type Message struct {
	Level string `json:"level"`
	Step  string `json:"step"`
	Text  string `json:"text"`
}

// ChartView is the chart area: a spec and its figure, or a warning.
type ChartView struct {
	Spec    *models.ChartSpec `json:"spec,omitempty"`
	Figure  *render.Figure    `json:"figure,omitempty"`
	Warning *charts.Warning   `json:"warning,omitempty"`
}

// Answer statuses.
const (
	StatusAnswered       = "answered"
	StatusNotImplemented = "not_implemented"
	StatusFailed         = "failed"
)

// AnswerView is the canned question panel.
type AnswerView struct {
	Question string               `json:"question"`
	Status   string               `json:"status"`
	SQL      string               `json:"sql,omitempty"`
	Result   models.TabularResult `json:"result"`

	// Subheader is shown above the chart, e.g. "Gráfico de Barras - Total de Ventas por Año".
	Subheader string            `json:"subheader,omitempty"`
	Chart     *models.ChartSpec `json:"chart,omitempty"`
	Figure    *render.Figure    `json:"figure,omitempty"`
}

// ImportantView is the important-table panel.
type ImportantView struct {
	Table     string               `json:"table"`
	Questions []string             `json:"questions"`
	Preview   models.TabularResult `json:"preview"`
	Answer    *AnswerView          `json:"answer,omitempty"`
}

// View is everything one interaction produces.
type View struct {
	Title     string               `json:"title"`
	Connected bool                 `json:"connected"`
	Selection Selection            `json:"selection"`
	Tables    []string             `json:"tables"`
	Kinds     []KindOption         `json:"kinds"`
	Detail    models.TabularResult `json:"detail"`
	Sample    models.TabularResult `json:"sample"`
	Chart     ChartView            `json:"chart"`
	Important ImportantView        `json:"important"`
	Messages  []Message            `json:"messages"`
}

// KindOption is one entry of the chart kind dropdown.
type KindOption struct {
	ID    models.ChartKind `json:"id"`
	Label string           `json:"label"`
}

// KindOptions lists the chart kinds in dropdown order.
func KindOptions() []KindOption {
	kinds := models.ChartKinds()
	out := make([]KindOption, len(kinds))
	for i, k := range kinds {
		out[i] = KindOption{ID: k, Label: k.Label()}
	}
	return out
}

// ImportantTables lists the important tables in selection order.
func ImportantTables() []string {
	tables := questions.Tables()
	out := make([]string, len(tables))
	for i, t := range tables {
		out[i] = t.String()
	}
	return out
}

func (v *View) addMessage(level, step, text string) {
	v.Messages = append(v.Messages, Message{Level: level, Step: step, Text: text})
}
