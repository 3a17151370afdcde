// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	requestIDKey     contextKey = "request_id"
	interactionIDKey contextKey = "interaction_id"
)

// NewRequestID returns a full UUID for one HTTP request.
func NewRequestID() string {
	return uuid.New().String()
}

// NewInteractionID returns a short id for one dashboard pipeline run.
func NewInteractionID() string {
	return uuid.New().String()[:8]
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns "" when no id is set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// ContextWithInteraction tags ctx with a fresh interaction id unless one
// is already present.
func ContextWithInteraction(ctx context.Context) context.Context {
	if InteractionIDFromContext(ctx) != "" {
		return ctx
	}
	return context.WithValue(ctx, interactionIDKey, NewInteractionID())
}

func InteractionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(interactionIDKey).(string)
	return id
}

// Ctx returns the global logger enriched with the request and interaction
// ids carried by ctx.
//
//	logging.Ctx(ctx).Info().Str("table", name).Msg("Preview loaded")
func Ctx(ctx context.Context) *zerolog.Logger {
	l := CtxWith(ctx).Logger()
	return &l
}

// CtxWith is Ctx for callers that want to add more fields first.
func CtxWith(ctx context.Context) zerolog.Context {
	c := With()
	if id := RequestIDFromContext(ctx); id != "" {
		c = c.Str("request_id", id)
	}
	if id := InteractionIDFromContext(ctx); id != "" {
		c = c.Str("interaction_id", id)
	}
	return c
}

// CtxErr is shorthand for Ctx(ctx).Err(err).
func CtxErr(ctx context.Context, err error) *zerolog.Event {
	return Ctx(ctx).Err(err)
}

// WithComponent creates a child logger tagged with a component name.
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
