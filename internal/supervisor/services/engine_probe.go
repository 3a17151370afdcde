// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package services

import (
	"context"
	"time"

	"github.com/tomtom215/tablero/internal/logging"
	"github.com/tomtom215/tablero/internal/metrics"
)

// Pinger is satisfied by *database.Engine.
type Pinger interface {
	Ping(ctx context.Context) error
}

// EngineProbeService pings the engine every interval. Probe failures are
// recorded, not returned, so the supervisor never restarts it for an
// unreachable database.
type EngineProbeService struct {
	engine   Pinger
	interval time.Duration
	timeout  time.Duration
	name     string

	// up is only touched from Serve.
	up *bool
}

// NewEngineProbeService probes engine every interval. A non-positive
// interval becomes 30s.
func NewEngineProbeService(engine Pinger, interval time.Duration) *EngineProbeService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	timeout := interval / 2
	if timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	return &EngineProbeService{
		engine:   engine,
		interval: interval,
		timeout:  timeout,
		name:     "engine-probe",
	}
}

// Serve implements suture.Service. The first probe runs immediately.
func (p *EngineProbeService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.probe(ctx)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p *EngineProbeService) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, p.timeout)
	err := p.engine.Ping(pingCtx)
	cancel()
	if ctx.Err() != nil {
		return
	}

	up := err == nil
	metrics.SetDatabaseUp(up)

	log := logging.WithComponent(p.name)
	switch {
	case p.up == nil && up:
		log.Debug().Msg("Database engine reachable")
	case up && !*p.up:
		log.Info().Msg("Database engine reachable again")
	case !up && (p.up == nil || *p.up):
		log.Warn().Err(err).Msg("Database engine unreachable")
	}
	p.up = &up
}

func (p *EngineProbeService) String() string {
	return p.name
}
