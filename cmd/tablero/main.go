// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

// Command tablero runs dashboard operations from a terminal and prints
// the results as JSON. It reads the same configuration as the server.
//
//	tablero tables
//	tablero preview Sales.Customer --rows 5
//	tablero chart Sales.SalesOrderHeader --kind scatter
//	tablero ask --table Sales.Customer --question "¿Cuántos clientes tenemos en total?"
//	tablero export Production.Product -o productos.xlsx
package main

import (
	"context"
	"os"

	"github.com/tomtom215/tablero/internal/config"
	"github.com/tomtom215/tablero/internal/dashboard"
	"github.com/tomtom215/tablero/internal/database"
	"github.com/tomtom215/tablero/internal/logging"
)

func main() {
	root := newRootCmd(os.Stdout, connectFromConfig)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// connectFromConfig opens the configured engine. Unlike the server, a
// connection failure ends the command.
func connectFromConfig(ctx context.Context) (*dashboard.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	engine, err := database.Open(&cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Database.SeedSampleData {
		if err := engine.SeedSampleData(ctx); err != nil {
			_ = engine.Close()
			return nil, nil, err
		}
	}

	gw := database.NewEngineGateway(engine, database.GatewayOptionsFromConfig(&cfg.Database))
	closeEngine := func() {
		if err := engine.Close(); err != nil {
			logging.Warn().Err(err).Msg("Error closing database")
		}
	}
	return dashboard.NewService(gw, dashboard.OptionsFromConfig(cfg)), closeEngine, nil
}
