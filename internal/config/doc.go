// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

// Package config loads Hostaudit configuration with Koanf v2.
//
// Sources are layered, later ones overriding earlier ones:
//
//  1. Struct defaults (structs provider)
//  2. YAML file at $CONFIG_PATH, ./config.yaml or /etc/hostaudit/config.yaml
//  3. Environment variables
//
// # Environment Variables
//
//	LOG_LEVEL             logging.level            info
//	LOG_FORMAT            logging.format           json
//	LOG_CALLER            logging.caller           false
//	AUDIT_ENABLED         audit.enabled            true
//	AUDIT_CACHE_CAPACITY  audit.cache_capacity     1000
//	AUDIT_REPORT_INTERVAL audit.report_interval    5m
//	HTTP_HOST             server.host              127.0.0.1
//	HTTP_PORT             server.port              9477
//	SHUTDOWN_TIMEOUT      server.shutdown_timeout  10s
//	DEBUG_RATE_LIMIT      server.debug_rate_limit  60
//	METRICS_ENABLED       metrics.enabled          true
//	METRICS_PATH          metrics.path             /metrics
//
// Other environment variables are ignored.
//
// # Example config.yaml
//
//	logging:
//	  level: audit
//	  format: console
//	audit:
//	  cache_capacity: 5000
//	server:
//	  port: 9500
//
// # Validation
//
// Validate runs go-playground/validator rules from the struct tags (see
// internal/validation) and rejects a metrics path that shadows a built-in
// route.
package config
