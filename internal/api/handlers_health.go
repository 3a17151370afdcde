// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package api

import (
	"context"
	"net/http"
	"time"
)

// HealthStatus is the /health payload.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	Dialect           string  `json:"dialect"`
	Uptime            float64 `json:"uptime_seconds"`
	Error             string  `json:"error,omitempty"`
}

const healthPingTimeout = 3 * time.Second

func (h *Handler) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	return h.svc.Ping(ctx)
}

// Health reports overall status. It always answers 200; a missing or
// failing engine shows as "degraded".
//
// @Summary Get health status
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:  "healthy",
		Version: h.version,
		Dialect: string(h.svc.Options().Dialect),
		Uptime:  time.Since(h.startTime).Seconds(),
	}
	if err := h.ping(r.Context()); err != nil {
		status.Status = "degraded"
		status.Error = err.Error()
	} else {
		status.DatabaseConnected = true
	}
	NewResponseWriter(w, r).Success(status)
}

// HealthLive is the liveness probe: the process is serving.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "alive"})
}

// HealthReady is the readiness probe: 503 until the engine answers.
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if err := h.ping(r.Context()); err != nil {
		rw.ServiceUnavailable("database is not ready: " + err.Error())
		return
	}
	rw.Success(map[string]string{"status": "ready"})
}
