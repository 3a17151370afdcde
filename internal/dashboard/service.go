// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

// Package dashboard runs one dashboard interaction end to end: table
// catalog, detail preview, sample preview, chart, important-table preview
// and canned question. Every failure becomes a Message on the View; Run
// itself never fails.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/tablero/internal/charts"
	"github.com/tomtom215/tablero/internal/config"
	"github.com/tomtom215/tablero/internal/database"
	"github.com/tomtom215/tablero/internal/logging"
	"github.com/tomtom215/tablero/internal/metrics"
	"github.com/tomtom215/tablero/internal/models"
	"github.com/tomtom215/tablero/internal/questions"
	"github.com/tomtom215/tablero/internal/render"
)

var (
	// ErrNoEngine is returned when the service was built without a
	// database engine.
	ErrNoEngine = errors.New("no database engine available")

	// ErrTableNotInCatalog rejects a table that is not a listed base table.
	ErrTableNotInCatalog = errors.New("table is not in the catalog")
)

// Options bound the row counts of each preview.
type Options struct {
	DefaultRows   int
	MaxRows       int
	DetailRows    int
	ImportantRows int
	Dialect       database.Dialect
}

// OptionsFromConfig reads Options from the dashboard section.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		DefaultRows:   cfg.Dashboard.DefaultRows,
		MaxRows:       cfg.Dashboard.MaxRows,
		DetailRows:    cfg.Dashboard.DetailRows,
		ImportantRows: cfg.Dashboard.ImportantPreviewRows,
		Dialect:       database.DialectFor(cfg),
	}
}

func (o Options) withDefaults() Options {
	if o.MaxRows <= 0 {
		o.MaxRows = 100
	}
	if o.DefaultRows <= 0 {
		o.DefaultRows = 10
	}
	if o.DefaultRows > o.MaxRows {
		o.DefaultRows = o.MaxRows
	}
	if o.DetailRows <= 0 {
		o.DetailRows = 100
	}
	if o.ImportantRows <= 0 {
		o.ImportantRows = 5
	}
	if o.Dialect == "" {
		o.Dialect = database.DialectDuckDB
	}
	return o
}

// Service owns the gateway handle for the lifetime of the process. A nil
// gateway means the engine could not be opened; every query is skipped.
type Service struct {
	gw     *database.Gateway
	runner *questions.Runner
	opts   Options
}

// NewService builds a Service. gw may be nil.
func NewService(gw *database.Gateway, opts Options) *Service {
	s := &Service{gw: gw, opts: opts.withDefaults()}
	if gw != nil {
		s.runner = questions.NewRunner(gw)
	}
	return s
}

// Connected reports whether an engine is available.
func (s *Service) Connected() bool {
	return s.gw != nil
}

// Options returns the effective options.
func (s *Service) Options() Options {
	return s.opts
}

// ClampRows maps a requested sample size into [1, MaxRows]; zero picks the
// default.
func (s *Service) ClampRows(n int) int {
	switch {
	case n == 0:
		return s.opts.DefaultRows
	case n < 1:
		return 1
	case n > s.opts.MaxRows:
		return s.opts.MaxRows
	default:
		return n
	}
}

// Tables lists the base tables.
func (s *Service) Tables(ctx context.Context) ([]models.TableRef, error) {
	if s.gw == nil {
		return nil, ErrNoEngine
	}
	return s.gw.ListTables(ctx, s.opts.Dialect)
}

// Ping checks the engine.
func (s *Service) Ping(ctx context.Context) error {
	if s.gw == nil {
		return ErrNoEngine
	}
	res, err := s.gw.Execute(database.WithStatementName(ctx, "ping"), "SELECT 1 AS ok")
	if err != nil {
		return err
	}
	if res.NumRows() != 1 {
		return fmt.Errorf("ping returned %d rows", res.NumRows())
	}
	return nil
}

// resolve finds name among catalog. Matching ignores case because SQL
// Server identifiers do; the catalog's own spelling is returned.
func resolve(catalog []models.TableRef, name string) (models.TableRef, error) {
	ref, err := models.ParseTableRef(name)
	if err != nil {
		return models.TableRef{}, err
	}
	for _, t := range catalog {
		if strings.EqualFold(t.Schema, ref.Schema) && strings.EqualFold(t.Name, ref.Name) {
			return t, nil
		}
	}
	return models.TableRef{}, fmt.Errorf("%w: %s", ErrTableNotInCatalog, ref)
}

// ResolveTable checks name against the live catalog.
func (s *Service) ResolveTable(ctx context.Context, name string) (models.TableRef, error) {
	catalog, err := s.Tables(ctx)
	if err != nil {
		return models.TableRef{}, err
	}
	return resolve(catalog, name)
}

// Preview returns at most rows rows of a catalog table; rows is clamped.
func (s *Service) Preview(ctx context.Context, table string, rows int) (models.TabularResult, error) {
	t, err := s.ResolveTable(ctx, table)
	if err != nil {
		return models.EmptyResult(), err
	}
	return s.gw.Preview(ctx, s.opts.Dialect, t, s.ClampRows(rows))
}

// Chart samples a catalog table and maps it onto kind. A mapping failure
// is reported in ChartView.Warning with a nil error.
func (s *Service) Chart(ctx context.Context, table, kind string, rows int) (models.TabularResult, ChartView, error) {
	sample, err := s.Preview(ctx, table, rows)
	if err != nil {
		return sample, ChartView{}, err
	}
	return sample, s.chart(ctx, sample, kind), nil
}

func (s *Service) chart(ctx context.Context, sample models.TabularResult, kind string) ChartView {
	label := "unknown"
	if k, ok := models.ParseChartKind(kind); ok {
		label = string(k)
	}

	spec, err := charts.MapString(sample, kind)
	if err != nil {
		w, _ := charts.AsWarning(err)
		metrics.RecordChartMapping(label, string(w.Kind))
		logging.Ctx(ctx).Debug().Str("chart", kind).Str("reason", string(w.Kind)).Msg("Chart not drawn")
		return ChartView{Warning: w}
	}

	fig, err := render.NewFigure(spec, sample)
	if err != nil {
		metrics.RecordChartMapping(label, "render_error")
		logging.Ctx(ctx).Warn().Err(err).Str("chart", kind).Msg("Chart could not be rendered")
		return ChartView{Warning: &charts.Warning{Kind: charts.WarningShape, ChartKind: spec.Kind, Message: err.Error()}}
	}

	metrics.RecordChartMapping(label, "ok")
	return ChartView{Spec: &spec, Figure: &fig}
}

// Ask answers a canned question.
func (s *Service) Ask(ctx context.Context, table, question string) (questions.Answer, error) {
	if s.runner == nil {
		return questions.Answer{Result: models.EmptyResult()}, ErrNoEngine
	}
	ref, err := models.ParseTableRef(table)
	if err != nil {
		return questions.Answer{Result: models.EmptyResult()}, questions.ErrUnknownTable
	}
	return s.runner.Ask(ctx, ref, question)
}

// Title is the chart header: "<kind label> - <schema.table>", or only the
// label when no table is selected.
func Title(kind, table string) string {
	label := kind
	if k, ok := models.ParseChartKind(kind); ok {
		label = k.Label()
	}
	if table == "" {
		return label
	}
	return label + " - " + table
}

// ErrorText is the message shown for a failed step.
func ErrorText(err error) string {
	var connErr *database.ConnectionError
	if errors.Is(err, ErrNoEngine) || errors.As(err, &connErr) {
		return "Error al conectar a la base de datos: " + err.Error()
	}
	return "Error al ejecutar la consulta SQL: " + err.Error()
}

func (s *Service) normalize(sel Selection) Selection {
	sel.Table = strings.TrimSpace(sel.Table)
	sel.Chart = strings.TrimSpace(sel.Chart)
	if sel.Chart == "" {
		sel.Chart = string(models.ChartBar)
	}
	sel.Rows = s.ClampRows(sel.Rows)
	if strings.TrimSpace(sel.Important) == "" {
		sel.Important = questions.DefaultTable().String()
	}
	return sel
}

// Run executes one interaction. Steps run in order; a failed step leaves
// its part of the View empty and the rest still run. Without an engine
// only the connection message is produced.
func (s *Service) Run(ctx context.Context, sel Selection) View {
	ctx = logging.ContextWithInteraction(ctx)
	start := time.Now()
	defer func() { metrics.RecordDashboardRun(time.Since(start)) }()

	sel = s.normalize(sel)
	view := View{
		Title:     Title(sel.Chart, sel.Table),
		Connected: s.gw != nil,
		Selection: sel,
		Tables:    []string{},
		Kinds:     KindOptions(),
		Detail:    models.EmptyResult(),
		Sample:    models.EmptyResult(),
		Important: ImportantView{
			Table:     sel.Important,
			Questions: []string{},
			Preview:   models.EmptyResult(),
		},
		Messages: []Message{},
	}

	important, importantErr := models.ParseTableRef(sel.Important)
	if importantErr == nil {
		if qs, err := questions.QuestionsFor(important); err == nil {
			view.Important.Questions = qs
			if sel.Question == "" && len(qs) > 0 {
				sel.Question = qs[0]
				view.Selection.Question = qs[0]
			}
		} else {
			importantErr = err
		}
	}

	if s.gw == nil {
		view.addMessage(LevelError, StepConnect, ErrorText(ErrNoEngine))
		logging.Ctx(ctx).Warn().Msg("Dashboard run skipped: no database engine")
		return view
	}

	// 1. catalog
	catalog, err := s.Tables(ctx)
	if err != nil {
		view.addMessage(LevelError, StepCatalog, ErrorText(err))
	}
	for _, t := range catalog {
		view.Tables = append(view.Tables, t.String())
	}

	// 2-3. detail and sample of the selected table
	if sel.Table != "" {
		if t, err := resolve(catalog, sel.Table); err != nil {
			view.addMessage(LevelError, StepDetail, fmt.Sprintf("La tabla %s no está disponible: %v", sel.Table, err))
		} else {
			if view.Detail, err = s.gw.Preview(ctx, s.opts.Dialect, t, s.opts.DetailRows); err != nil {
				view.addMessage(LevelError, StepDetail, ErrorText(err))
			}
			if view.Sample, err = s.gw.Preview(ctx, s.opts.Dialect, t, sel.Rows); err != nil {
				view.addMessage(LevelError, StepSample, ErrorText(err))
			}
		}
	}

	// 4. chart over the sample, even when empty
	view.Chart = s.chart(ctx, view.Sample, sel.Chart)
	if view.Chart.Warning != nil {
		view.addMessage(LevelWarning, StepChart, view.Chart.Warning.Message)
	}

	// 5-6. important table and its question
	if importantErr != nil {
		view.addMessage(LevelError, StepImportant, fmt.Sprintf("La tabla %s no tiene preguntas asociadas.", sel.Important))
	} else {
		s.runImportant(ctx, &view, important, sel.Question)
	}

	logging.Ctx(ctx).Info().
		Str("table", sel.Table).
		Str("chart", sel.Chart).
		Int("rows", sel.Rows).
		Int("messages", len(view.Messages)).
		Dur("duration", time.Since(start)).
		Msg("Dashboard interaction completed")
	return view
}

func (s *Service) runImportant(ctx context.Context, view *View, important models.TableRef, question string) {
	// The runner's catalog spelling is the only name interpolated here.
	for _, t := range questions.Tables() {
		if strings.EqualFold(t.String(), important.String()) {
			important = t
		}
	}
	view.Important.Table = important.String()

	var err error
	if view.Important.Preview, err = s.gw.Preview(ctx, s.opts.Dialect, important, s.opts.ImportantRows); err != nil {
		view.addMessage(LevelError, StepImportant, ErrorText(err))
	}

	if question == "" {
		return
	}
	ans, err := s.runner.Ask(ctx, important, question)
	av := &AnswerView{Question: question, SQL: ans.SQL, Result: ans.Result}
	view.Important.Answer = av

	switch {
	case errors.Is(err, questions.ErrNotImplemented):
		av.Status = StatusNotImplemented
		view.addMessage(LevelInfo, StepQuestion, "Esta pregunta todavía no tiene un análisis implementado.")
	case errors.Is(err, questions.ErrUnknownQuestion):
		av.Status = StatusFailed
		view.addMessage(LevelError, StepQuestion, fmt.Sprintf("La pregunta no corresponde a la tabla %s.", important))
	case err != nil:
		av.Status = StatusFailed
		view.addMessage(LevelError, StepQuestion, ErrorText(err))
	default:
		av.Status = StatusAnswered
		if ans.Chart != nil {
			av.Chart = ans.Chart
			av.Subheader = ans.Chart.Kind.Label() + " - " + ans.Chart.Title
			if fig, err := render.NewFigure(*ans.Chart, ans.Result); err == nil {
				av.Figure = &fig
			} else {
				view.addMessage(LevelWarning, StepQuestion, err.Error())
			}
		}
	}
	if av.Result.Columns == nil {
		av.Result = models.EmptyResult()
	}
}
