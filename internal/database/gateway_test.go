// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package database

import (
	"context"
	"database/sql"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/tablero/internal/config"
	"github.com/tomtom215/tablero/internal/models"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	return NewEngineGateway(setupTestEngine(t, true), GatewayOptions{QueryTimeout: 10 * time.Second})
}

func TestGatewayCountQuery(t *testing.T) {
	g := newTestGateway(t)

	res, err := g.Execute(context.Background(), "SELECT COUNT(*) AS TotalClientes FROM Sales.Customer")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(res.Columns) != 1 || res.Columns[0].Name != "TotalClientes" {
		t.Fatalf("columns = %+v", res.Columns)
	}
	if res.Columns[0].Type != models.ScalarNumeric {
		t.Errorf("type = %q, want numeric", res.Columns[0].Type)
	}
	if res.NumRows() != 1 || res.Rows[0][0] != int64(40) {
		t.Errorf("rows = %v, want [[40]]", res.Rows)
	}
}

func TestGatewaySalesByYear(t *testing.T) {
	g := newTestGateway(t)

	res, err := g.Execute(context.Background(),
		"SELECT YEAR(OrderDate) AS Anio, SUM(TotalDue) AS TotalVentas FROM Sales.SalesOrderHeader GROUP BY YEAR(OrderDate) ORDER BY Anio")
	if err != nil {
		t.Fatal(err)
	}

	names := res.ColumnNames()
	if len(names) != 2 || names[0] != "Anio" || names[1] != "TotalVentas" {
		t.Fatalf("columns = %v", names)
	}
	if res.NumRows() != 4 {
		t.Fatalf("rows = %d, want 4 (2011-2014)", res.NumRows())
	}

	prev := int64(0)
	for _, r := range res.Rows {
		year, ok := r[0].(int64)
		if !ok || year <= prev {
			t.Errorf("years not ascending: %v", res.Rows)
		}
		prev = year
		if _, ok := r[1].(decimal.Decimal); !ok {
			t.Errorf("TotalVentas should be an exact decimal, got %T", r[1])
		}
	}
	if res.Rows[0][0] != int64(2011) {
		t.Errorf("first year = %v, want 2011", res.Rows[0][0])
	}
}

func TestGatewayFailureReturnsEmptyResult(t *testing.T) {
	g := newTestGateway(t)

	res, err := g.Execute(context.Background(), "SELEC nonsense FROM")
	if err == nil {
		t.Fatal("expected error for malformed SQL")
	}
	var qErr *QueryError
	if !errors.As(err, &qErr) {
		t.Fatalf("expected QueryError, got %T", err)
	}
	if qErr.Statement != "SELEC nonsense FROM" {
		t.Errorf("Statement = %q", qErr.Statement)
	}
	if !res.IsEmpty() || len(res.Columns) != 0 {
		t.Errorf("failure must yield an empty result, got %+v", res)
	}
}

func TestGatewaySuccessfulEmptyResult(t *testing.T) {
	g := newTestGateway(t)

	res, err := g.Execute(context.Background(), "SELECT * FROM Sales.Customer WHERE 1 = 0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsEmpty() {
		t.Error("expected zero rows")
	}
	if len(res.Columns) != 5 {
		t.Errorf("header should survive, got %d columns", len(res.Columns))
	}
}

func TestGatewayColumnTyping(t *testing.T) {
	g := newTestGateway(t)

	res, err := g.Execute(context.Background(),
		"SELECT SalesOrderID, OrderDate, TotalDue, CAST(TerritoryID AS VARCHAR) AS Territory, TerritoryID > 5 AS Norte FROM Sales.SalesOrderHeader LIMIT 3")
	if err != nil {
		t.Fatal(err)
	}
	want := []models.ScalarType{
		models.ScalarNumeric, models.ScalarDatetime, models.ScalarNumeric, models.ScalarText, models.ScalarCategorical,
	}
	for i, c := range res.Columns {
		if c.Type != want[i] {
			t.Errorf("column %s type = %q, want %q", c.Name, c.Type, want[i])
		}
	}
	if _, ok := res.Rows[0][1].(time.Time); !ok {
		t.Errorf("OrderDate should scan as time.Time, got %T", res.Rows[0][1])
	}
}

func TestPreviewRowBound(t *testing.T) {
	g := newTestGateway(t)
	ref := models.TableRef{Schema: "Sales", Name: "SalesOrderHeader"}

	for _, n := range []int{1, 5, 10, 37, 100} {
		res, err := g.Preview(context.Background(), DialectDuckDB, ref, n)
		if err != nil {
			t.Fatalf("Preview(%d) error = %v", n, err)
		}
		if res.NumRows() > n {
			t.Errorf("Preview(%d) returned %d rows", n, res.NumRows())
		}
		if res.NumRows() != n {
			t.Errorf("Preview(%d) returned %d rows from a 120-row table", n, res.NumRows())
		}
	}
}

func TestListTables(t *testing.T) {
	g := newTestGateway(t)

	refs, err := g.ListTables(context.Background(), DialectDuckDB)
	if err != nil {
		t.Fatal(err)
	}
	found := map[string]bool{}
	for _, r := range refs {
		found[r.String()] = true
	}
	for _, want := range []string{"Sales.SalesOrderHeader", "Sales.Customer", "Production.Product"} {
		if !found[want] {
			t.Errorf("catalog missing %s: %v", want, refs)
		}
	}
}

type failingConnector struct {
	calls atomic.Int32
	err   error
}

func (f *failingConnector) Conn(context.Context) (*sql.Conn, error) {
	f.calls.Add(1)
	return nil, f.err
}

func TestGatewayBreakerOpensOnConnectionFailures(t *testing.T) {
	t.Parallel()

	fc := &failingConnector{err: errors.New("dial tcp: connection refused")}
	g := NewGateway(fc, GatewayOptions{Engine: "fake", BreakerFailures: 2, BreakerTimeout: time.Minute})

	for i := 0; i < 2; i++ {
		res, err := g.Execute(context.Background(), "SELECT 1")
		var connErr *ConnectionError
		if !errors.As(err, &connErr) {
			t.Fatalf("call %d: expected ConnectionError, got %v", i, err)
		}
		if !res.IsEmpty() {
			t.Errorf("call %d: expected empty result", i)
		}
	}

	_, err := g.Execute(context.Background(), "SELECT 1")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected open breaker, got %v", err)
	}
	if got := fc.calls.Load(); got != 2 {
		t.Errorf("connector called %d times, want 2", got)
	}
}

func TestGatewayQueryErrorsDoNotTripBreaker(t *testing.T) {
	e := setupTestEngine(t, false)
	g := NewEngineGateway(e, GatewayOptions{BreakerFailures: 1})

	for i := 0; i < 3; i++ {
		if _, err := g.Execute(context.Background(), "SELECT * FROM missing_table"); err == nil {
			t.Fatal("expected query error")
		}
	}
	if _, err := g.Execute(context.Background(), "SELECT 1 AS uno"); err != nil {
		t.Errorf("breaker should stay closed after query errors: %v", err)
	}
}

// slowConnector waits before handing out a real connection and records
// whether the gateway bounded the wait.
type slowConnector struct {
	engine      *Engine
	delay       time.Duration
	hadDeadline atomic.Bool
}

func (s *slowConnector) Conn(ctx context.Context) (*sql.Conn, error) {
	if _, ok := ctx.Deadline(); ok {
		s.hadDeadline.Store(true)
	}
	time.Sleep(s.delay)
	return s.engine.Conn(ctx)
}

func TestGatewayTimeoutExcludesConnectionWait(t *testing.T) {
	sc := &slowConnector{engine: setupTestEngine(t, false), delay: 400 * time.Millisecond}
	g := NewGateway(sc, GatewayOptions{Engine: "slow", BreakerFailures: 1, QueryTimeout: 250 * time.Millisecond})

	for i := 0; i < 3; i++ {
		res, err := g.Execute(context.Background(), "SELECT 1 AS uno")
		if err != nil {
			t.Fatalf("call %d: Execute() error = %v", i, err)
		}
		if res.NumRows() != 1 {
			t.Errorf("call %d: rows = %v", i, res.Rows)
		}
	}
	if sc.hadDeadline.Load() {
		t.Error("connection wait should not carry the statement timeout")
	}
	if g.cb.State() != gobreaker.StateClosed {
		t.Errorf("breaker state = %v, want closed", g.cb.State())
	}
}

func TestStatementName(t *testing.T) {
	t.Parallel()

	if statementName(context.Background()) != "adhoc" {
		t.Error("default statement name should be adhoc")
	}
	ctx := WithStatementName(context.Background(), "question")
	if statementName(ctx) != "question" {
		t.Error("statement name not carried")
	}
}

func TestGatewayOptionsFromConfig(t *testing.T) {
	t.Parallel()

	got := GatewayOptionsFromConfig(&config.DatabaseConfig{
		Driver:          config.DriverSQLServer,
		BreakerFailures: 5,
		BreakerTimeout:  time.Minute,
		QueryTimeout:    15 * time.Second,
	})
	want := GatewayOptions{Engine: "sqlserver", BreakerFailures: 5, BreakerTimeout: time.Minute, QueryTimeout: 15 * time.Second}
	if got != want {
		t.Errorf("options = %+v, want %+v", got, want)
	}
}
