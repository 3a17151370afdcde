// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

//go:build integration

package testinfra

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tomtom215/tablero/internal/dashboard"
	"github.com/tomtom215/tablero/internal/database"
	"github.com/tomtom215/tablero/internal/models"
	"github.com/tomtom215/tablero/internal/questions"
)

// setupAdventureWorks starts SQL Server, creates a fresh database with the
// sample tables and returns a T-SQL gateway over it.
func setupAdventureWorks(t *testing.T) *database.Gateway {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	mssql, err := NewSQLServerContainer(ctx, WithContainerLogger(NewContainerLogger(t)))
	if err != nil {
		t.Fatalf("failed to start sql server: %v", err)
	}
	t.Cleanup(func() { CleanupContainer(t, context.Background(), mssql) })

	master, err := database.Open(mssql.DatabaseConfig("master"))
	if err != nil {
		t.Fatalf("failed to open master: %v", err)
	}
	defer master.Close()
	if err := CreateDatabase(ctx, master.DB(), "Tablero"); err != nil {
		t.Fatal(err)
	}

	cfg := mssql.DatabaseConfig("Tablero")
	engine, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("failed to open Tablero: %v", err)
	}
	t.Cleanup(func() { _ = engine.Close() })
	if err := SeedAdventureWorks(ctx, engine.DB()); err != nil {
		t.Fatal(err)
	}

	return database.NewEngineGateway(engine, database.GatewayOptions{
		BreakerFailures: cfg.BreakerFailures,
		BreakerTimeout:  cfg.BreakerTimeout,
		QueryTimeout:    cfg.QueryTimeout,
	})
}

func TestSQLServerDialect(t *testing.T) {
	gw := setupAdventureWorks(t)
	ctx := context.Background()

	tables, err := gw.ListTables(ctx, database.DialectTSQL)
	if err != nil {
		t.Fatalf("ListTables: %v", err)
	}
	if len(tables) != 3 {
		t.Fatalf("tables = %v, want the three sample tables", tables)
	}

	product := models.TableRef{Schema: "Production", Name: "Product"}
	res, err := gw.Preview(ctx, database.DialectTSQL, product, 2)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if res.NumRows() != 2 || len(res.Columns) != 4 {
		t.Fatalf("preview = %d rows x %d columns", res.NumRows(), len(res.Columns))
	}
	if res.Columns[2].Type != models.ScalarNumeric {
		t.Errorf("MONEY column typed %s, want numeric", res.Columns[2].Type)
	}
	if res.Columns[1].Type != models.ScalarCategorical {
		t.Errorf("NVARCHAR column typed %s, want categorical", res.Columns[1].Type)
	}
}

func TestSQLServerCannedQuestions(t *testing.T) {
	gw := setupAdventureWorks(t)
	runner := questions.NewRunner(gw)
	ctx := context.Background()

	sales, err := runner.Ask(ctx, models.TableRef{Schema: "Sales", Name: "SalesOrderHeader"}, "¿Cuál es el total de ventas por año?")
	if err != nil {
		t.Fatalf("sales by year: %v", err)
	}
	if sales.Result.NumRows() != 3 || sales.Chart == nil {
		t.Fatalf("sales by year = %+v", sales.Result)
	}
	// 2011 holds the first two orders.
	want := decimal.RequireFromString("24610.5627")
	if got, ok := sales.Result.Rows[0][1].(decimal.Decimal); !ok || !got.Equal(want) {
		t.Errorf("2011 total = %v, want %s", sales.Result.Rows[0][1], want)
	}

	customers, err := runner.Ask(ctx, models.TableRef{Schema: "Sales", Name: "Customer"}, "¿Cuántos clientes tenemos en total?")
	if err != nil {
		t.Fatalf("customer total: %v", err)
	}
	if got := customers.Result.Rows[0][0]; got != int64(3) {
		t.Errorf("TotalClientes = %v (%T), want 3", got, got)
	}
}

func TestSQLServerDashboardRun(t *testing.T) {
	gw := setupAdventureWorks(t)
	svc := dashboard.NewService(gw, dashboard.Options{Dialect: database.DialectTSQL})

	view := svc.Run(context.Background(), dashboard.Selection{
		Table:     "sales.customer",
		Chart:     "pie",
		Rows:      2,
		Important: "Production.Product",
	})
	if len(view.Messages) != 0 {
		t.Fatalf("messages = %+v", view.Messages)
	}
	if view.Sample.NumRows() != 2 || view.Chart.Figure == nil {
		t.Errorf("sample rows = %d, figure = %v", view.Sample.NumRows(), view.Chart.Figure)
	}
	if ans := view.Important.Answer; ans == nil || ans.Status != dashboard.StatusAnswered || ans.Figure == nil {
		t.Errorf("important answer = %+v", ans)
	}
}
