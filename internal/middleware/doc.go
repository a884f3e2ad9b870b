// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

/*
Package middleware provides chi-compatible HTTP middleware for the Hostaudit
server.

Key Components:

  - RequestID: X-Request-ID propagation into logging.Ctx
  - AccessLog: debug-level request log
  - PrometheusMetrics: request count and latency per route pattern
  - RateLimitByIP: go-chi/httprate limiter for the debug endpoints

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)
	r.With(middleware.RateLimitByIP(60, time.Minute)).Get("/debug/audit", h)

Metrics are labelled with the chi route pattern rather than the raw path,
so unknown paths cannot grow label cardinality.
*/
package middleware
