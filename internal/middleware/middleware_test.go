// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/tablero/internal/logging"
	"github.com/tomtom215/tablero/internal/metrics"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.RequestIDFromContext(r.Context())
	}))

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		got := rec.Header().Get(RequestIDHeader)
		if got == "" || got != seen {
			t.Errorf("header %q, context %q", got, seen)
		}
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Header().Get(RequestIDHeader) != "abc-123" || seen != "abc-123" {
			t.Errorf("header %q, context %q", rec.Header().Get(RequestIDHeader), seen)
		}
	})

	t.Run("replaces oversized ids", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", 500))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if len(rec.Header().Get(RequestIDHeader)) > maxRequestIDLength {
			t.Error("oversized id was echoed")
		}
	})
}

func TestCompression(t *testing.T) {
	t.Parallel()

	body := strings.Repeat(`{"columns":["Anio","TotalVentas"]}`, 100)
	h := Compression(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))

	tests := []struct {
		name     string
		path     string
		encoding string
		gzipped  bool
	}{
		{"json with gzip", "/api/v1/tables", "gzip, deflate", true},
		{"no accept-encoding", "/api/v1/tables", "", false},
		{"xlsx download", "/api/v1/tables/Sales/Customer/export.xlsx", "gzip", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.encoding != "" {
				req.Header.Set("Accept-Encoding", tt.encoding)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if got := rec.Header().Get("Content-Encoding") == "gzip"; got != tt.gzipped {
				t.Fatalf("gzipped = %v, want %v", got, tt.gzipped)
			}

			var r io.Reader = rec.Body
			if tt.gzipped {
				zr, err := gzip.NewReader(rec.Body)
				if err != nil {
					t.Fatal(err)
				}
				defer zr.Close()
				r = zr
			}
			out, err := io.ReadAll(r)
			if err != nil {
				t.Fatal(err)
			}
			if string(out) != body {
				t.Error("body changed")
			}
		})
	}
}

func TestPrometheusMetricsUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/api/v1/tables/{schema}/{table}/preview", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	pattern := "/api/v1/tables/{schema}/{table}/preview"
	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, pattern, "418"))

	for _, table := range []string{"Customer", "Product"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tables/Sales/"+table+"/preview", nil))
		if rec.Code != http.StatusTeapot {
			t.Fatalf("status = %d", rec.Code)
		}
	}

	after := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, pattern, "418"))
	if after-before != 2 {
		t.Errorf("requests recorded under pattern = %v, want 2", after-before)
	}
}

func TestRoutePatternOutsideChi(t *testing.T) {
	t.Parallel()

	if got := routePattern(httptest.NewRequest(http.MethodGet, "/x", nil)); got != "unmatched" {
		t.Errorf("routePattern = %q", got)
	}
}
