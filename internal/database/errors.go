// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package database

import (
	"fmt"
	"io"

	"github.com/tomtom215/tablero/internal/metrics"
)

// ConnectionError means the engine could not be opened or no connection
// could be acquired. Nothing was executed.
type ConnectionError struct {
	Driver string
	Err    error
}

func (e *ConnectionError) Error() string {
	if e.Driver == "" {
		return fmt.Sprintf("database connection failed: %v", e.Err)
	}
	return fmt.Sprintf("database connection failed (%s): %v", e.Driver, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

func (e *ConnectionError) MetricErrorType() string { return metrics.ErrorTypeConnection }

// QueryError means a statement failed. It always travels together with an
// empty TabularResult.
type QueryError struct {
	Statement string
	Err       error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed: %v", e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

func (e *QueryError) MetricErrorType() string { return metrics.ErrorType(e.Err) }

// closeQuietly is for error paths where a Close failure is not actionable.
func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
