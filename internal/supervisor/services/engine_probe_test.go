// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tablero/internal/logging"
	"github.com/tomtom215/tablero/internal/metrics"
)

// scriptedPinger answers pings from a script, repeating the last answer.
type scriptedPinger struct {
	mu     sync.Mutex
	script []error
	calls  int
}

func (p *scriptedPinger) Ping(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.calls
	if i >= len(p.script) {
		i = len(p.script) - 1
	}
	p.calls++
	return p.script[i]
}

func (p *scriptedPinger) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestNewEngineProbeServiceDefaults(t *testing.T) {
	t.Parallel()

	p := NewEngineProbeService(&scriptedPinger{script: []error{nil}}, 0)
	if p.interval != 30*time.Second || p.timeout != 5*time.Second {
		t.Errorf("interval=%v timeout=%v", p.interval, p.timeout)
	}
	if p.String() != "engine-probe" {
		t.Errorf("String() = %q", p.String())
	}
	if q := NewEngineProbeService(&scriptedPinger{script: []error{nil}}, time.Second); q.timeout != 500*time.Millisecond {
		t.Errorf("timeout = %v, want half the interval", q.timeout)
	}
}

// Not parallel: both cases assert on the same process-wide gauge.
func TestEngineProbeServiceTracksReachability(t *testing.T) {
	down := errors.New("connection refused")

	t.Run("down", func(t *testing.T) {
		var buf bytes.Buffer
		prev, prevLevel := logging.Logger(), zerolog.GlobalLevel()
		logging.SetLogger(logging.NewTestLogger(&buf))
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		t.Cleanup(func() {
			logging.SetLogger(prev)
			zerolog.SetGlobalLevel(prevLevel)
		})

		p := &scriptedPinger{script: []error{down}}
		svc := NewEngineProbeService(p, time.Hour)
		svc.probe(context.Background())

		out := buf.String()
		if !strings.Contains(out, `"component":"engine-probe"`) || !strings.Contains(out, "Database engine unreachable") {
			t.Errorf("unexpected log output: %s", out)
		}

		if v := testutil.ToFloat64(metrics.DatabaseUp); v != 0 {
			t.Errorf("tablero_database_up = %v, want 0", v)
		}
		if svc.up == nil || *svc.up {
			t.Error("probe state should be down")
		}
	})

	t.Run("recovers", func(t *testing.T) {
		p := &scriptedPinger{script: []error{down, nil}}
		svc := NewEngineProbeService(p, 10*time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- svc.Serve(ctx) }()

		deadline := time.Now().Add(2 * time.Second)
		for p.count() < 3 && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}
		cancel()

		if err := <-errCh; !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v, want context.Canceled", err)
		}
		if p.count() < 3 {
			t.Fatalf("probed %d times, want at least 3", p.count())
		}
		if v := testutil.ToFloat64(metrics.DatabaseUp); v != 1 {
			t.Errorf("tablero_database_up = %v, want 1", v)
		}
	})
}
