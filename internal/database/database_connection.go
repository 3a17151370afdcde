// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package database

import (
	"database/sql"
	"runtime"
	"time"

	"github.com/tomtom215/tablero/internal/config"
)

// configureConnectionPool sizes the pool behind Engine.Conn. Each gateway
// call still takes and returns exactly one connection.
func configureConnectionPool(db *sql.DB, driver string) {
	switch driver {
	case config.DriverSQLServer:
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(30 * time.Minute)
	default:
		db.SetMaxOpenConns(runtime.NumCPU())
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(time.Hour)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)
}
