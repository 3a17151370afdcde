// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package questions

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/tablero/internal/database"
	"github.com/tomtom215/tablero/internal/logging"
	"github.com/tomtom215/tablero/internal/metrics"
	"github.com/tomtom215/tablero/internal/models"
)

var (
	ErrUnknownTable    = errors.New("table has no canned questions")
	ErrUnknownQuestion = errors.New("question is not offered for this table")
	ErrNotImplemented  = errors.New("question is not implemented")
)

// Executor runs one complete SQL statement. *database.Gateway satisfies it.
type Executor interface {
	Execute(ctx context.Context, stmt string) (models.TabularResult, error)
}

// Answer is the outcome of one canned question. Chart is nil when the
// question has no chart or the query failed.
type Answer struct {
	Table    models.TableRef      `json:"table"`
	Question string               `json:"question"`
	SQL      string               `json:"sql"`
	Result   models.TabularResult `json:"result"`
	Chart    *models.ChartSpec    `json:"chart,omitempty"`
}

// Runner answers canned questions through an Executor.
type Runner struct {
	exec Executor
}

// NewRunner returns a Runner over exec.
func NewRunner(exec Executor) *Runner {
	return &Runner{exec: exec}
}

// Ask resolves the pair and runs its query. Unknown pairs return
// ErrUnknownTable or ErrUnknownQuestion and unbound ones ErrNotImplemented,
// all without touching the database. A failed query returns the Answer
// with an empty Result alongside the gateway error.
//
// The table name interpolated into SQL always comes from the catalog,
// never from the caller.
func (r *Runner) Ask(ctx context.Context, table models.TableRef, question string) (Answer, error) {
	t, err := find(table)
	if err != nil {
		metrics.RecordQuestionAnswer("other", "unknown")
		return Answer{}, err
	}

	binding, err := Lookup(t.Table, question)
	if err != nil {
		metrics.RecordQuestionAnswer(t.Table.String(), "unknown")
		return Answer{}, err
	}

	answer := Answer{Table: t.Table, Question: question, Result: models.EmptyResult()}

	b, ok := binding.(Bound)
	if !ok {
		metrics.RecordQuestionAnswer(t.Table.String(), "not_implemented")
		logging.Ctx(ctx).Debug().
			Str("table", t.Table.String()).
			Str("question", question).
			Msg("Canned question has no bound query")
		return answer, ErrNotImplemented
	}

	answer.SQL = b.Statement(t.Table)
	start := time.Now()
	res, err := r.exec.Execute(database.WithStatementName(ctx, "question"), answer.SQL)
	answer.Result = res
	if err != nil {
		metrics.RecordQuestionAnswer(t.Table.String(), "error")
		return answer, err
	}

	if b.Chart != nil && !res.IsEmpty() {
		spec := b.Chart.Spec()
		answer.Chart = &spec
	}

	metrics.RecordQuestionAnswer(t.Table.String(), "answered")
	logging.Ctx(ctx).Debug().
		Str("table", t.Table.String()).
		Int("rows", res.NumRows()).
		Dur("duration", time.Since(start)).
		Msg("Canned question answered")
	return answer, nil
}
