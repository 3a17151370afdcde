// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

// Package metrics registers Tablero's Prometheus collectors on the default
// registry. They are exposed at /metrics.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Gateway
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tablero_db_query_duration_seconds",
			Help:    "Duration of gateway statements in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"engine", "statement"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablero_db_query_errors_total",
			Help: "Total number of failed gateway statements",
		},
		[]string{"engine", "statement", "error_type"},
	)

	DBRowsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tablero_db_rows_returned",
			Help:    "Rows returned per gateway statement",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 500, 1000},
		},
		[]string{"engine"},
	)

	// Circuit breaker around connection acquisition
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tablero_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablero_circuit_breaker_requests_total",
			Help: "Connection acquisitions through the circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablero_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Chart mapper and canned questions
	ChartMappings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablero_chart_mappings_total",
			Help: "Chart mapping outcomes by kind",
		},
		[]string{"kind", "outcome"}, // outcome: "ok", "empty", "shape", "unknown_kind"
	)

	QuestionAnswers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablero_question_answers_total",
			Help: "Canned question runs by table and outcome",
		},
		[]string{"table", "outcome"}, // outcome: "answered", "not_implemented", "error"
	)

	DashboardRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tablero_dashboard_runs_total",
			Help: "Total number of dashboard interaction pipeline runs",
		},
	)

	DashboardRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tablero_dashboard_run_duration_seconds",
			Help:    "Duration of a full dashboard interaction in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablero_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tablero_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tablero_api_active_requests",
			Help: "Number of in-flight API requests",
		},
	)

	// Background engine probe
	DatabaseUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tablero_database_up",
			Help: "Whether the last engine probe succeeded (1) or failed (0)",
		},
	)
)

// Error types used as the error_type label.
const (
	ErrorTypeCanceled   = "canceled"
	ErrorTypeTimeout    = "timeout"
	ErrorTypeConnection = "connection"
	ErrorTypeQuery      = "query"
)

// Classifier lets error types report their own label.
type Classifier interface {
	MetricErrorType() string
}

// ErrorType maps err onto a small fixed label set so raw driver messages
// never become label values.
func ErrorType(err error) string {
	var c Classifier
	switch {
	case errors.Is(err, context.Canceled):
		return ErrorTypeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return ErrorTypeTimeout
	case errors.As(err, &c):
		return c.MetricErrorType()
	default:
		return ErrorTypeQuery
	}
}

// RecordDBQuery observes one gateway statement.
func RecordDBQuery(engine, statement string, duration time.Duration, rows int, err error) {
	DBQueryDuration.WithLabelValues(engine, statement).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(engine, statement, ErrorType(err)).Inc()
		return
	}
	DBRowsReturned.WithLabelValues(engine).Observe(float64(rows))
}

func RecordChartMapping(kind, outcome string) {
	ChartMappings.WithLabelValues(kind, outcome).Inc()
}

func RecordQuestionAnswer(table, outcome string) {
	QuestionAnswers.WithLabelValues(table, outcome).Inc()
}

func RecordDashboardRun(duration time.Duration) {
	DashboardRuns.Inc()
	DashboardRunDuration.Observe(duration.Seconds())
}

// RecordBreakerTransition tracks a state change. States follow gobreaker's
// numbering: 0 closed, 1 half-open, 2 open.
func RecordBreakerTransition(name, from, to string, toState int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(toState))
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

func RecordBreakerRequest(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

func RecordAPIRequest(method, endpoint, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

func SetDatabaseUp(up bool) {
	if up {
		DatabaseUp.Set(1)
	} else {
		DatabaseUp.Set(0)
	}
}
