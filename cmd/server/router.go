// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/hostaudit/internal/audit"
	"github.com/tomtom215/hostaudit/internal/cache"
	"github.com/tomtom215/hostaudit/internal/config"
	"github.com/tomtom215/hostaudit/internal/hooks"
	"github.com/tomtom215/hostaudit/internal/logging"
	"github.com/tomtom215/hostaudit/internal/middleware"
)

const (
	healthPath     = "/healthz"
	debugAuditPath = "/debug/audit"
)

// auditStatus is the body served on /debug/audit.
type auditStatus struct {
	Enabled bool                `json:"enabled"`
	Hooks   int                 `json:"hooks"`
	Events  []string            `json:"events"`
	Cache   *cache.CounterStats `json:"cache,omitempty"`
}

// newRouter builds the HTTP surface. d is nil when audit logging is disabled.
// gatherer serves the metrics endpoint; nil uses the default registry.
func newRouter(cfg *config.Config, d *audit.Dispatcher, registry *hooks.Registry, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)

	r.Get(healthPath, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if cfg.Metrics.Enabled {
		if gatherer == nil {
			r.Handle(cfg.Metrics.Path, promhttp.Handler())
		} else {
			r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
		}
	}

	r.With(middleware.RateLimitByIP(cfg.Server.DebugRateLimit, time.Minute)).
		Get(debugAuditPath, func(w http.ResponseWriter, _ *http.Request) {
			status := auditStatus{
				Enabled: d != nil,
				Hooks:   registry.Len(),
				Events:  audit.EventNames(),
			}
			if d != nil {
				stats := d.Cache().Stats()
				status.Cache = &stats
			}
			writeJSON(w, http.StatusOK, status)
		})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}
