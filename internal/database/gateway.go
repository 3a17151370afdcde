// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/tablero/internal/config"
	"github.com/tomtom215/tablero/internal/logging"
	"github.com/tomtom215/tablero/internal/metrics"
	"github.com/tomtom215/tablero/internal/models"
)

// Connector hands out one dedicated connection at a time. *sql.DB and
// *Engine both satisfy it; tests inject fakes.
type Connector interface {
	Conn(ctx context.Context) (*sql.Conn, error)
}

// GatewayOptions tune a Gateway. Zero values pick the defaults.
type GatewayOptions struct {
	// Engine labels metrics and logs ("duckdb", "sqlserver").
	Engine string

	// BreakerFailures consecutive acquisition failures open the breaker
	// for BreakerTimeout.
	BreakerFailures uint32
	BreakerTimeout  time.Duration

	// QueryTimeout bounds each statement once its connection is held.
	// Zero means no bound.
	QueryTimeout time.Duration
}

// Gateway is the Data Access Gateway. Execute runs one complete SQL
// string on one scoped connection and returns its rows.
//
// The gateway does no parsing, quoting or parameterization. Statements
// must already be safe to run; see Dialect.PreviewStatement.
type Gateway struct {
	conn    Connector
	engine  string
	timeout time.Duration
	cb      *gobreaker.CircuitBreaker[*sql.Conn]
}

// NewGateway wraps c. Only connection acquisition goes through the
// circuit breaker; a failing statement never trips it.
func NewGateway(c Connector, opts GatewayOptions) *Gateway {
	if opts.Engine == "" {
		opts.Engine = "unknown"
	}
	if opts.BreakerFailures == 0 {
		opts.BreakerFailures = 3
	}
	if opts.BreakerTimeout <= 0 {
		opts.BreakerTimeout = 30 * time.Second
	}

	name := "gateway-" + opts.Engine
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	failures := opts.BreakerFailures
	cb := gobreaker.NewCircuitBreaker[*sql.Conn](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     opts.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// A caller giving up says nothing about the engine.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Database circuit breaker state change")
			metrics.RecordBreakerTransition(name, from.String(), to.String(), int(to))
		},
	})

	return &Gateway{
		conn:    c,
		engine:  opts.Engine,
		timeout: opts.QueryTimeout,
		cb:      cb,
	}
}

// GatewayOptionsFromConfig takes the breaker and timeout settings of the
// database section.
func GatewayOptionsFromConfig(cfg *config.DatabaseConfig) GatewayOptions {
	return GatewayOptions{
		Engine:          cfg.Driver,
		BreakerFailures: cfg.BreakerFailures,
		BreakerTimeout:  cfg.BreakerTimeout,
		QueryTimeout:    cfg.QueryTimeout,
	}
}

// NewEngineGateway builds a gateway over an open engine.
func NewEngineGateway(e *Engine, opts GatewayOptions) *Gateway {
	if opts.Engine == "" {
		opts.Engine = e.Driver()
	}
	return NewGateway(e, opts)
}

// Engine returns the engine label.
func (g *Gateway) Engine() string {
	return g.engine
}

type statementKey struct{}

// WithStatementName labels the statements run under ctx ("preview",
// "catalog", "question") for metrics and logs.
func WithStatementName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, statementKey{}, name)
}

func statementName(ctx context.Context) string {
	if s, ok := ctx.Value(statementKey{}).(string); ok && s != "" {
		return s
	}
	return "adhoc"
}

// Execute runs stmt and returns its rows. On any failure it returns an
// empty result together with a *ConnectionError (nothing ran) or a
// *QueryError (the statement failed). An empty result with a nil error is
// a successful query that matched no rows.
func (g *Gateway) Execute(ctx context.Context, stmt string) (models.TabularResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	name := statementName(ctx)
	start := time.Now()

	result, err := g.execute(ctx, stmt)
	metrics.RecordDBQuery(g.engine, name, time.Since(start), result.NumRows(), err)

	log := logging.CtxWith(ctx).Str("component", "gateway").Logger()
	if err != nil {
		ev := log.Warn()
		var connErr *ConnectionError
		if errors.As(err, &connErr) {
			ev = log.Error()
		}
		ev.Err(err).Str("engine", g.engine).Str("statement", name).Str("sql", stmt).Msg("Gateway statement failed")
		return models.EmptyResult(), err
	}

	log.Debug().
		Str("engine", g.engine).
		Str("statement", name).
		Int("rows", result.NumRows()).
		Dur("duration", time.Since(start)).
		Msg("Gateway statement executed")
	return result, nil
}

func (g *Gateway) execute(ctx context.Context, stmt string) (models.TabularResult, error) {
	conn, err := g.acquire(ctx)
	if err != nil {
		return models.EmptyResult(), err
	}
	defer closeQuietly(conn)

	// Only the statement is timed, not the wait for a pooled connection.
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	rows, err := conn.QueryContext(ctx, stmt)
	if err != nil {
		return models.EmptyResult(), &QueryError{Statement: stmt, Err: err}
	}
	defer closeQuietly(rows)

	result, err := scanResult(rows)
	if err != nil {
		return models.EmptyResult(), &QueryError{Statement: stmt, Err: err}
	}
	return result, nil
}

func (g *Gateway) acquire(ctx context.Context) (*sql.Conn, error) {
	name := g.cb.Name()
	conn, err := g.cb.Execute(func() (*sql.Conn, error) {
		return g.conn.Conn(ctx)
	})
	switch {
	case err == nil:
		metrics.RecordBreakerRequest(name, "success")
		return conn, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordBreakerRequest(name, "rejected")
	default:
		metrics.RecordBreakerRequest(name, "failure")
	}
	return nil, &ConnectionError{Driver: g.engine, Err: err}
}

// scanResult drains rows into a TabularResult, typing each column from its
// declared engine type and falling back to the values when the driver
// reports none.
func scanResult(rows *sql.Rows) (models.TabularResult, error) {
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return models.EmptyResult(), fmt.Errorf("failed to read column types: %w", err)
	}

	columns := make([]models.Column, len(colTypes))
	declared := make([]bool, len(colTypes))
	for i, ct := range colTypes {
		st, ok := scalarTypeOf(ct.DatabaseTypeName())
		columns[i] = models.Column{Name: ct.Name(), Type: st, DatabaseType: ct.DatabaseTypeName()}
		declared[i] = ok
	}

	var out []models.Row
	for rows.Next() {
		raw := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return models.EmptyResult(), fmt.Errorf("failed to scan row: %w", err)
		}
		row := make(models.Row, len(raw))
		for i, v := range raw {
			row[i] = normalizeValue(v, columns[i].DatabaseType)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return models.EmptyResult(), fmt.Errorf("row iteration failed: %w", err)
	}

	for i := range columns {
		if !declared[i] {
			columns[i].Type = inferScalarType(out, i)
		}
	}
	return models.NewTabularResult(columns, out)
}
