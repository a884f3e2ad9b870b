// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

// Package logging provides centralized zerolog-based structured logging for Hostaudit.
//
// # Overview
//
// The package provides:
//   - Zero-allocation structured logging via zerolog
//   - JSON output format for production (machine-parseable)
//   - Console output format for development (human-readable)
//   - An AUDIT level between info and warn for security events
//   - slog adapter used by the audit dispatcher and Suture v4
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//	logging.Error().Err(err).Msg("Shutdown failed")
//
// # The AUDIT Level
//
// zerolog has no level between info and warn, so audit records are written
// as level-less events carrying "level":"AUDIT" and are gated exactly like
// info:
//
//	logging.Audit().Str("arg.path", "/etc/passwd").Int("count", 1).Msg("open")
//	// {"level":"AUDIT","arg.path":"/etc/passwd","count":1,"time":"...","message":"open"}
//
// On the slog side the level is LevelAudit (slog.Level(2)). SlogHandler maps
// it onto the record above; stdlib handlers can render it by setting
// ReplaceAttr to ReplaceLevelAttr.
//
// zerolog reports a failed write on stderr and drops it. The audit sink needs
// to see those failures, so NewAuditHandler renders each record into a buffer
// and writes it to the configured output itself:
//
//	sink := logging.NewAuditHandler() // Handle returns "write log record: ..." on failure
//
// # Configuration
//
// Environment variables (read through internal/config):
//
//	LOG_LEVEL   - trace, debug, info, audit, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// Setting LOG_LEVEL=warn silences audit records.
//
// # Context-Aware Logging
//
//	ctx = logging.ContextWithRequestID(ctx, id)
//	logging.Ctx(ctx).Info().Msg("request handled") // adds request_id
//
// # Thread Safety
//
// The global logger is guarded by a RWMutex. Init and SetLogger may be called
// concurrently with logging calls.
package logging
