// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/tablero/internal/charts"
	"github.com/tomtom215/tablero/internal/dashboard"
	"github.com/tomtom215/tablero/internal/database"
	"github.com/tomtom215/tablero/internal/export"
	"github.com/tomtom215/tablero/internal/models"
	"github.com/tomtom215/tablero/internal/questions"
	"github.com/tomtom215/tablero/internal/render"
	"github.com/tomtom215/tablero/internal/validation"
)

// Handler serves the dashboard API over one dashboard.Service.
type Handler struct {
	svc       *dashboard.Service
	version   string
	startTime time.Time
}

// NewHandler builds a Handler. svc must not be nil; a service without an
// engine is fine.
func NewHandler(svc *dashboard.Service, version string) *Handler {
	return &Handler{svc: svc, version: version, startTime: time.Now()}
}

// KindInfo describes one chart kind for clients.
type KindInfo struct {
	ID          models.ChartKind       `json:"id"`
	Label       string                 `json:"label"`
	Requirement models.AxisRequirement `json:"requirement"`
}

// QuestionInfo is one canned question.
type QuestionInfo struct {
	Text  string `json:"text"`
	Bound bool   `json:"bound"`
}

// ImportantTableInfo lists the questions of one important table.
type ImportantTableInfo struct {
	Table     string         `json:"table"`
	Questions []QuestionInfo `json:"questions"`
}

// ChartResponse is the /charts payload. Spec and Figure are nil when a
// Warning explains why nothing can be drawn.
type ChartResponse struct {
	Table   string               `json:"table"`
	Kind    string               `json:"kind"`
	Title   string               `json:"title"`
	Rows    int                  `json:"rows"`
	Sample  models.TabularResult `json:"sample"`
	Spec    *models.ChartSpec    `json:"spec,omitempty"`
	Figure  *render.Figure       `json:"figure,omitempty"`
	Warning *charts.Warning      `json:"warning,omitempty"`
}

// AnswerResponse is the /questions/answer payload.
type AnswerResponse struct {
	Table    string               `json:"table"`
	Question string               `json:"question"`
	SQL      string               `json:"sql"`
	Result   models.TabularResult `json:"result"`
	Chart    *models.ChartSpec    `json:"chart,omitempty"`
	Figure   *render.Figure       `json:"figure,omitempty"`
}

// writeServiceError maps dashboard, question and gateway errors onto
// envelopes.
func writeServiceError(rw *ResponseWriter, err error) {
	var (
		connErr  *database.ConnectionError
		queryErr *database.QueryError
	)
	switch {
	case errors.Is(err, dashboard.ErrNoEngine), errors.As(err, &connErr):
		rw.ServiceUnavailable(dashboard.ErrorText(err))
	case errors.Is(err, models.ErrInvalidTableRef):
		rw.ValidationError(err.Error(), nil)
	case errors.Is(err, dashboard.ErrTableNotInCatalog),
		errors.Is(err, questions.ErrUnknownTable),
		errors.Is(err, questions.ErrUnknownQuestion):
		rw.NotFound(err.Error())
	case errors.As(err, &queryErr):
		rw.DatabaseError(dashboard.ErrorText(err), err)
	default:
		rw.InternalError(err.Error())
	}
}

// validate writes a 400 and returns false when req is invalid.
func validate(rw *ResponseWriter, req interface{}) bool {
	err := validation.ValidateStruct(req)
	if err == nil {
		return true
	}
	var ve *validation.RequestValidationError
	if errors.As(err, &ve) {
		rw.ValidationError(ve.Error(), ve.Fields)
		return false
	}
	rw.ValidationError(err.Error(), nil)
	return false
}

func (h *Handler) rowsParam(rw *ResponseWriter, r *http.Request) (int, bool) {
	rows, ok := getIntParam(r, "rows", h.svc.Options().DefaultRows)
	if !ok {
		rw.ValidationError("rows must be an integer", nil)
	}
	return rows, ok
}

// Tables lists the base tables.
//
// @Summary List tables
// @Description Base tables of the connected database as "schema.table", in catalog order
// @Tags Tables
// @Produce json
// @Success 200 {object} APIResponse{data=[]string}
// @Failure 503 {object} APIResponse
// @Router /tables [get]
func (h *Handler) Tables(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	refs, err := h.svc.Tables(r.Context())
	if err != nil {
		writeServiceError(rw, err)
		return
	}
	names := make([]string, len(refs))
	for i, t := range refs {
		names[i] = t.String()
	}
	rw.SuccessWithCount(names, len(names))
}

// Preview returns the first rows of a table.
//
// @Summary Preview a table
// @Tags Tables
// @Produce json
// @Param schema path string true "Schema"
// @Param table path string true "Table"
// @Param rows query int false "Rows (1-100)" default(10)
// @Success 200 {object} APIResponse{data=models.TabularResult}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 502 {object} APIResponse
// @Router /tables/{schema}/{table}/preview [get]
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rows, ok := h.rowsParam(rw, r)
	if !ok {
		return
	}
	req := PreviewRequest{Table: pathTable(r), Rows: rows}
	if !validate(rw, &req) {
		return
	}

	res, err := h.svc.Preview(r.Context(), req.Table, req.Rows)
	if err != nil {
		writeServiceError(rw, err)
		return
	}
	rw.SuccessWithCount(res, res.NumRows())
}

// ExportXLSX downloads a table preview as a spreadsheet.
//
// @Summary Export a table preview
// @Tags Tables
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param schema path string true "Schema"
// @Param table path string true "Table"
// @Param rows query int false "Rows (1-100)" default(10)
// @Success 200 {file} binary
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /tables/{schema}/{table}/export.xlsx [get]
func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rows, ok := h.rowsParam(rw, r)
	if !ok {
		return
	}
	req := PreviewRequest{Table: pathTable(r), Rows: rows}
	if !validate(rw, &req) {
		return
	}

	res, err := h.svc.Preview(r.Context(), req.Table, req.Rows)
	if err != nil {
		writeServiceError(rw, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, req.Table, res); err != nil {
		rw.InternalError("failed to build spreadsheet")
		return
	}

	w.Header().Set("Content-Type", export.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", req.Table+".xlsx"))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// ChartKinds lists the chart kinds.
//
// @Summary List chart kinds
// @Description Kinds in dropdown order with Spanish labels and axis requirements
// @Tags Charts
// @Produce json
// @Success 200 {object} APIResponse{data=[]KindInfo}
// @Router /charts/kinds [get]
func (h *Handler) ChartKinds(w http.ResponseWriter, r *http.Request) {
	kinds := models.ChartKinds()
	out := make([]KindInfo, len(kinds))
	for i, k := range kinds {
		out[i] = KindInfo{ID: k, Label: k.Label(), Requirement: k.Requirement()}
	}
	NewResponseWriter(w, r).SuccessWithCount(out, len(out))
}

// Chart samples a table and maps it onto a chart kind.
//
// @Summary Chart a table sample
// @Description A shape mismatch is reported in data.warning, not as an error
// @Tags Charts
// @Produce json
// @Param table query string true "schema.table"
// @Param kind query string true "Chart kind id or label"
// @Param rows query int false "Sample rows (1-100)" default(10)
// @Success 200 {object} APIResponse{data=ChartResponse}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /charts [get]
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rows, ok := h.rowsParam(rw, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	req := ChartRequest{Table: q.Get("table"), Kind: q.Get("kind"), Rows: rows}
	if !validate(rw, &req) {
		return
	}

	sample, cv, err := h.svc.Chart(r.Context(), req.Table, req.Kind, req.Rows)
	if err != nil {
		writeServiceError(rw, err)
		return
	}
	rw.Success(ChartResponse{
		Table:   req.Table,
		Kind:    req.Kind,
		Title:   dashboard.Title(req.Kind, req.Table),
		Rows:    sample.NumRows(),
		Sample:  sample,
		Spec:    cv.Spec,
		Figure:  cv.Figure,
		Warning: cv.Warning,
	})
}

// Questions lists the important tables and their canned questions.
//
// @Summary List canned questions
// @Tags Questions
// @Produce json
// @Success 200 {object} APIResponse{data=[]ImportantTableInfo}
// @Router /questions [get]
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	catalog := questions.Catalog()
	out := make([]ImportantTableInfo, len(catalog))
	for i, it := range catalog {
		qs := make([]QuestionInfo, len(it.Questions))
		for j, q := range it.Questions {
			qs[j] = QuestionInfo{Text: q.Text, Bound: questions.IsBound(q.Binding)}
		}
		out[i] = ImportantTableInfo{Table: it.Table.String(), Questions: qs}
	}
	NewResponseWriter(w, r).SuccessWithCount(out, len(out))
}

// Answer runs a canned question.
//
// @Summary Answer a canned question
// @Description Unbound questions answer 501 NOT_IMPLEMENTED
// @Tags Questions
// @Produce json
// @Param table query string true "Important table"
// @Param question query string true "Question text"
// @Success 200 {object} APIResponse{data=AnswerResponse}
// @Failure 404 {object} APIResponse
// @Failure 501 {object} APIResponse
// @Router /questions/answer [get]
func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	q := r.URL.Query()
	req := AnswerRequest{Table: q.Get("table"), Question: q.Get("question")}
	if !validate(rw, &req) {
		return
	}

	ans, err := h.svc.Ask(r.Context(), req.Table, req.Question)
	if errors.Is(err, questions.ErrNotImplemented) {
		rw.NotImplemented("question is not implemented", map[string]string{
			"table":    ans.Table.String(),
			"question": req.Question,
			"status":   dashboard.StatusNotImplemented,
		})
		return
	}
	if err != nil {
		writeServiceError(rw, err)
		return
	}

	resp := AnswerResponse{
		Table:    ans.Table.String(),
		Question: ans.Question,
		SQL:      ans.SQL,
		Result:   ans.Result,
		Chart:    ans.Chart,
	}
	if ans.Chart != nil {
		if fig, err := render.NewFigure(*ans.Chart, ans.Result); err == nil {
			resp.Figure = &fig
		}
	}
	rw.Success(resp)
}

// Dashboard runs the whole interaction pipeline.
//
// @Summary Run a dashboard interaction
// @Description Errors of individual steps are reported in data.messages
// @Tags Dashboard
// @Produce json
// @Param table query string false "Selected table"
// @Param chart query string false "Chart kind id or label" default(bar)
// @Param rows query int false "Sample rows (1-100)" default(10)
// @Param important query string false "Important table" default(Sales.SalesOrderHeader)
// @Param question query string false "Canned question"
// @Success 200 {object} APIResponse{data=dashboard.View}
// @Failure 400 {object} APIResponse
// @Router /dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rows, ok := getIntParam(r, "rows", 0)
	if !ok {
		rw.ValidationError("rows must be an integer", nil)
		return
	}
	q := r.URL.Query()
	req := DashboardRequest{
		Table:     q.Get("table"),
		Chart:     q.Get("chart"),
		Rows:      rows,
		Important: q.Get("important"),
		Question:  q.Get("question"),
	}
	if !validate(rw, &req) {
		return
	}

	rw.Success(h.svc.Run(r.Context(), dashboard.Selection{
		Table:     req.Table,
		Chart:     req.Chart,
		Rows:      req.Rows,
		Important: req.Important,
		Question:  req.Question,
	}))
}
