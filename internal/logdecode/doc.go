// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

// Package logdecode makes Hostaudit's JSON logs readable when developing or
// troubleshooting.
//
// Each zerolog JSON line becomes one aligned text line:
//
//	14:03:07.120  hostaudit                            main.go:88                   info     HTTP server listening     addr=127.0.0.1:9477
//
// Columns are time, component, caller, level and message, followed by the
// remaining fields as sorted key=value pairs. AUDIT records are dropped;
// read those from the raw JSON. Lines that are not JSON pass through
// unchanged, and `docker compose logs` prefixes ("svc-1  | {...}") are
// stripped before decoding.
//
// Dates are only printed when the first line is more than ten hours old.
//
// The cmd/decodelog binary wraps a Decoder around stdin and stdout:
//
//	./hostaudit 2>&1 | decodelog
package logdecode
