// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

/*
Command server runs the Tablero dashboard over HTTP.

Start-up order:

 1. Configuration: Koanf v2, environment > config file > defaults
 2. Logging: zerolog, json or console
 3. Database: DuckDB or SQL Server; a failed connection is logged and the
    dashboard keeps serving with the connection error on every page
 4. Dashboard service: gateway with circuit breaker, question runner
 5. Supervisor tree: engine probe (data layer), HTTP server (api layer)

# Configuration

	DB_DRIVER=duckdb             # duckdb or sqlserver
	DUCKDB_PATH=/data/tablero.duckdb
	SEED_SAMPLE_DATA=true        # create the Sales/Production sample tables

	MSSQL_HOST=localhost
	MSSQL_PORT=1433
	MSSQL_DATABASE=AdventureWorks2012
	MSSQL_TRUSTED_CONNECTION=true

	HTTP_PORT=8501
	LOG_LEVEL=info
	LOG_FORMAT=json

# Endpoints

	/                    single page dashboard
	/api/v1/dashboard    one interaction as JSON
	/api/v1/health       health, /live and /ready probes
	/metrics             Prometheus
	/swagger/            API documentation
*/
package main
