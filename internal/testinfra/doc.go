// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

// Package testinfra starts real database engines in containers for
// integration tests. Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/testinfra/...
//
// SQLServerContainer runs Microsoft SQL Server so the T-SQL dialect and
// the canned questions are checked against the engine they were written
// for:
//
//	mssql, err := testinfra.NewSQLServerContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer mssql.Terminate(ctx)
//
//	engine, err := database.Open(mssql.DatabaseConfig("master"))
//
// Tests skip when Docker is not available. The first run pulls the image,
// which takes a while.
package testinfra
