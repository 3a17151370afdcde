// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type typedErr struct{}

func (typedErr) Error() string           { return "engine unreachable" }
func (typedErr) MetricErrorType() string { return ErrorTypeConnection }

func TestErrorType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"canceled", context.Canceled, ErrorTypeCanceled},
		{"deadline", fmt.Errorf("run: %w", context.DeadlineExceeded), ErrorTypeTimeout},
		{"classified", fmt.Errorf("wrap: %w", typedErr{}), ErrorTypeConnection},
		{"plain", errors.New("syntax error at or near FROM"), ErrorTypeQuery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorType(tt.err); got != tt.want {
				t.Errorf("ErrorType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordDBQuery(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("duckdb", "preview", ErrorTypeQuery))

	RecordDBQuery("duckdb", "preview", 5*time.Millisecond, 10, nil)
	RecordDBQuery("duckdb", "preview", time.Millisecond, 0, errors.New("Parser Error: syntax error"))

	after := testutil.ToFloat64(DBQueryErrors.WithLabelValues("duckdb", "preview", ErrorTypeQuery))
	if after != before+1 {
		t.Errorf("error counter = %v, want %v", after, before+1)
	}
	if n := testutil.CollectAndCount(DBQueryDuration); n == 0 {
		t.Error("expected duration series")
	}
}

func TestRecordChartMapping(t *testing.T) {
	c := ChartMappings.WithLabelValues("scatter", "shape")
	before := testutil.ToFloat64(c)
	RecordChartMapping("scatter", "shape")
	if got := testutil.ToFloat64(c); got != before+1 {
		t.Errorf("counter = %v, want %v", got, before+1)
	}
}

func TestRecordBreakerTransition(t *testing.T) {
	RecordBreakerTransition("gateway-test", "closed", "open", 2)
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("gateway-test")); got != 2 {
		t.Errorf("state gauge = %v, want 2", got)
	}
	RecordBreakerTransition("gateway-test", "open", "half-open", 1)
	if got := testutil.ToFloat64(CircuitBreakerTransitions.WithLabelValues("gateway-test", "open", "half-open")); got != 1 {
		t.Errorf("transition counter = %v, want 1", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("gauge = %v after inc", got)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("gauge = %v after dec", got)
	}
}

func TestRecordDashboardRun(t *testing.T) {
	before := testutil.ToFloat64(DashboardRuns)
	RecordDashboardRun(20 * time.Millisecond)
	if got := testutil.ToFloat64(DashboardRuns); got != before+1 {
		t.Errorf("runs = %v, want %v", got, before+1)
	}
}
