// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

/*
Package middleware holds the HTTP middleware shared by every Tablero route.

  - RequestID: X-Request-ID propagation into the logging context
  - Compression: gzip for JSON and HTML bodies
  - PrometheusMetrics: request counts, latencies and in-flight gauge

Order matters. RequestID runs first so every later log line carries the
id; PrometheusMetrics sits inside chi routing so it can label by route
pattern instead of raw path:

	r.Use(middleware.RequestID)
	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	    r.Use(middleware.Compression)
	    r.Get("/tables", h.Tables)
	})
*/
package middleware
