// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/tablero/internal/config"
	"github.com/tomtom215/tablero/internal/logging"
)

// sampleStatements build a small, deterministic slice of AdventureWorks:
// 120 orders from mid 2011 to late 2014, 40 customers and 60 products, a
// sixth of them without a subcategory. Existing tables are left alone.
var sampleStatements = []string{
	`CREATE SCHEMA IF NOT EXISTS Sales`,
	`CREATE SCHEMA IF NOT EXISTS Production`,

	`CREATE TABLE IF NOT EXISTS Sales.SalesOrderHeader AS
	SELECT
		CAST(43659 + i AS INTEGER) AS SalesOrderID,
		TIMESTAMP '2011-05-31 00:00:00' + to_days(CAST(i * 10 AS INTEGER)) AS OrderDate,
		CAST(11000 + (i * 7) % 40 AS INTEGER) AS CustomerID,
		CAST(1 + i % 10 AS INTEGER) AS TerritoryID,
		sub AS SubTotal,
		CAST(sub * 0.08 AS DECIMAL(19,4)) AS TaxAmt,
		CAST(sub * 0.025 AS DECIMAL(19,4)) AS Freight,
		CAST(sub * 1.105 AS DECIMAL(19,4)) AS TotalDue
	FROM (
		SELECT i, CAST(250 + (i * 37) % 900 + 0.99 AS DECIMAL(19,4)) AS sub
		FROM range(120) t(i)
	)`,

	`CREATE TABLE IF NOT EXISTS Sales.Customer AS
	SELECT
		CAST(11000 + i AS INTEGER) AS CustomerID,
		CASE WHEN i % 4 = 0 THEN NULL ELSE CAST(1700 + i AS INTEGER) END AS PersonID,
		CASE WHEN i % 4 = 0 THEN CAST(900 + i AS INTEGER) ELSE NULL END AS StoreID,
		CAST(1 + i % 10 AS INTEGER) AS TerritoryID,
		'AW' || lpad(CAST(11000 + i AS VARCHAR), 8, '0') AS AccountNumber
	FROM range(40) t(i)`,

	`CREATE TABLE IF NOT EXISTS Production.Product AS
	SELECT
		CAST(680 + i AS INTEGER) AS ProductID,
		'Producto ' || CAST(i + 1 AS VARCHAR) AS Name,
		'PR-' || lpad(CAST(680 + i AS VARCHAR), 4, '0') AS ProductNumber,
		['Negro', 'Rojo', 'Plata', 'Azul', 'Amarillo'][1 + i % 5] AS Color,
		CAST(9.5 + (i * 53) % 3500 AS DECIMAL(19,4)) AS ListPrice,
		CASE WHEN i % 6 = 0 THEN NULL ELSE CAST(1 + i % 12 AS INTEGER) END AS ProductSubcategoryID,
		DATE '2008-04-30' + CAST(i AS INTEGER) AS SellStartDate
	FROM range(60) t(i)`,
}

// SeedSampleData creates the Sales and Production sample tables so the
// dashboard and the canned questions work without SQL Server.
func (e *Engine) SeedSampleData(ctx context.Context) error {
	if e.driver != config.DriverDuckDB {
		return fmt.Errorf("sample data can only be seeded into duckdb, not %s", e.driver)
	}

	conn, err := e.db.Conn(ctx)
	if err != nil {
		return &ConnectionError{Driver: e.driver, Err: err}
	}
	defer closeQuietly(conn)

	for i, stmt := range sampleStatements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seed statement %d failed: %w", i+1, err)
		}
	}

	logging.Info().
		Strs("tables", []string{"Sales.SalesOrderHeader", "Sales.Customer", "Production.Product"}).
		Msg("Sample data ready")
	return nil
}
