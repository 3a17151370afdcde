// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/tablero/docs" // generated swagger docs
	"github.com/tomtom215/tablero/internal/api"
	"github.com/tomtom215/tablero/internal/config"
	"github.com/tomtom215/tablero/internal/dashboard"
	"github.com/tomtom215/tablero/internal/database"
	"github.com/tomtom215/tablero/internal/logging"
	"github.com/tomtom215/tablero/internal/supervisor"
	"github.com/tomtom215/tablero/internal/supervisor/services"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("driver", cfg.Database.Driver).
		Str("dialect", cfg.EffectiveDialect()).
		Msg("Starting Tablero")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine, gw := openEngine(ctx, cfg)
	if engine != nil {
		defer func() {
			if err := engine.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing database")
			}
		}()
	}

	svc := dashboard.NewService(gw, dashboard.OptionsFromConfig(cfg))
	router := api.NewRouter(
		api.NewHandler(svc, version),
		api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security)),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if engine != nil && cfg.Database.ProbeInterval > 0 {
		tree.AddDataService(services.NewEngineProbeService(engine, cfg.Database.ProbeInterval))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, s := range unstopped {
		logging.Warn().Str("service", s.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Tablero stopped")
}

// openEngine connects and, when asked to, seeds the sample tables. A
// connection failure is not fatal: both results are nil and the dashboard
// reports the error on every interaction.
func openEngine(ctx context.Context, cfg *config.Config) (*database.Engine, *database.Gateway) {
	engine, err := database.Open(&cfg.Database)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to connect to database; serving without an engine")
		return nil, nil
	}
	logging.Info().Str("driver", engine.Driver()).Msg("Database connected")

	if cfg.Database.SeedSampleData {
		if err := engine.SeedSampleData(ctx); err != nil {
			logging.Error().Err(err).Msg("Failed to seed sample data")
		} else {
			logging.Info().Msg("Sample data ready")
		}
	}

	return engine, database.NewEngineGateway(engine, database.GatewayOptionsFromConfig(&cfg.Database))
}
