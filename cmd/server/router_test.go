// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tomtom215/hostaudit/internal/audit"
	"github.com/tomtom215/hostaudit/internal/config"
	"github.com/tomtom215/hostaudit/internal/hooks"
	"github.com/tomtom215/hostaudit/internal/middleware"
)

func testConfig() *config.Config {
	return &config.Config{
		Logging: config.LoggingConfig{Level: "info", Format: "json"},
		Audit: config.AuditConfig{
			Enabled:        true,
			CacheCapacity:  10,
			ReportInterval: time.Minute,
		},
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            9477,
			ShutdownTimeout: time.Second,
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func discardDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(slog.NewTextHandler(io.Discard, nil), audit.WithCapacity(10))
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	h := newRouter(testConfig(), nil, &hooks.Registry{}, prometheus.NewRegistry())
	rec := get(t, h, healthPath)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("missing request ID header")
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRouter_DebugAudit(t *testing.T) {
	t.Parallel()

	reg := &hooks.Registry{}
	d := discardDispatcher()
	d.Register(reg)
	reg.Raise(hooks.EventOpen, "/etc/hosts", "r", 0)
	reg.Raise(hooks.EventOpen, "/etc/hosts", "r", 0)

	h := newRouter(testConfig(), d, reg, prometheus.NewRegistry())
	rec := get(t, h, debugAuditPath)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var status auditStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !status.Enabled {
		t.Error("Enabled = false, want true")
	}
	if status.Hooks != 1 {
		t.Errorf("Hooks = %d, want 1", status.Hooks)
	}
	if len(status.Events) != len(audit.EventNames()) {
		t.Errorf("Events = %v", status.Events)
	}
	if status.Cache == nil {
		t.Fatal("Cache stats missing")
	}
	if status.Cache.Capacity != 10 {
		t.Errorf("Capacity = %d, want 10", status.Cache.Capacity)
	}
	if status.Cache.Hits < 1 {
		t.Errorf("Hits = %d, want at least 1", status.Cache.Hits)
	}
}

func TestRouter_DebugAuditDisabled(t *testing.T) {
	t.Parallel()

	h := newRouter(testConfig(), nil, &hooks.Registry{}, prometheus.NewRegistry())
	rec := get(t, h, debugAuditPath)

	var status auditStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.Enabled {
		t.Error("Enabled = true, want false")
	}
	if status.Cache != nil {
		t.Errorf("Cache = %+v, want nil", status.Cache)
	}
	if strings.Contains(rec.Body.String(), `"cache"`) {
		t.Errorf("body should omit cache: %s", rec.Body.String())
	}
}

func TestRouter_DebugAuditRateLimited(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Server.DebugRateLimit = 2
	h := newRouter(cfg, nil, &hooks.Registry{}, prometheus.NewRegistry())

	for i := 0; i < 2; i++ {
		if rec := get(t, h, debugAuditPath); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}
	if rec := get(t, h, debugAuditPath); rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}

	// Health checks are not limited.
	if rec := get(t, h, healthPath); rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		enabled  bool
		path     string
		wantCode int
	}{
		{name: "enabled default path", enabled: true, path: "/metrics", wantCode: http.StatusOK},
		{name: "enabled custom path", enabled: true, path: "/internal/metrics", wantCode: http.StatusOK},
		{name: "disabled", enabled: false, path: "/metrics", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gatherer := prometheus.NewRegistry()
			sample := prometheus.NewCounter(prometheus.CounterOpts{
				Name: "hostaudit_router_test_sample_total",
				Help: "Probe counter for router tests.",
			})
			gatherer.MustRegister(sample)
			sample.Inc()

			cfg := testConfig()
			cfg.Metrics.Enabled = tt.enabled
			cfg.Metrics.Path = tt.path

			rec := get(t, newRouter(cfg, nil, &hooks.Registry{}, gatherer), tt.path)
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.enabled && !strings.Contains(rec.Body.String(), "hostaudit_router_test_sample_total 1") {
				t.Errorf("metrics body missing sample counter:\n%s", rec.Body.String())
			}
		})
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	t.Parallel()

	h := newRouter(testConfig(), nil, &hooks.Registry{}, prometheus.NewRegistry())
	if rec := get(t, h, "/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
