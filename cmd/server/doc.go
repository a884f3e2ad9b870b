// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

/*
Package main is the entry point for the Hostaudit server.

Hostaudit installs a process-wide audit hook that writes security-relevant
host events (file opens, renames, process starts, dials, lookups, outbound
HTTP requests) as throttled AUDIT-level log records, and serves a small HTTP
surface for health, metrics and cache inspection.

# Application Architecture

	RootSupervisor ("hostaudit")
	├── AuditSupervisor ("audit-layer")
	│   └── Cache reporter (periodic occurrence cache stats)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config file and environment
 2. Logging: zerolog with JSON/console output modes
 3. Audit: dispatcher registered on hooks.Default
 4. Supervisor Tree: Suture v4 process supervision
 5. HTTP Server: Chi router with request ID, access log and metrics middleware

# HTTP Endpoints

	GET /healthz       liveness
	GET /metrics       Prometheus metrics (METRICS_PATH)
	GET /debug/audit   hook count, audited events and cache stats (rate limited)

# Configuration

See internal/config for the full list. Common variables:

	LOG_LEVEL              trace, debug, info, audit, warn, error
	AUDIT_ENABLED          install the audit hook (default: true)
	AUDIT_CACHE_CAPACITY   distinct events tracked (default: 1000)
	HTTP_HOST / HTTP_PORT  listen address (default: 127.0.0.1:9477)

# Graceful Shutdown

SIGINT or SIGTERM cancels the root context. Suture stops each service in
reverse order, the HTTP server drains within SHUTDOWN_TIMEOUT, and services
that fail to stop are logged.
*/
package main
