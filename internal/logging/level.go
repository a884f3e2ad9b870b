// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package logging

import (
	"log/slog"

	"github.com/rs/zerolog"
)

// LevelAudit is the severity of security audit records. It sits between
// slog.LevelInfo and slog.LevelWarn.
const LevelAudit = slog.Level(2)

// LevelAuditName is the label written in the level field of audit records.
const LevelAuditName = "AUDIT"

// auditEvent starts an event on l whose level field reads AUDIT.
// Audit records are gated like info records.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func auditEvent(l zerolog.Logger) *zerolog.Event {
	if l.GetLevel() > zerolog.InfoLevel || zerolog.GlobalLevel() > zerolog.InfoLevel {
		return nil
	}
	return l.Log().Str(zerolog.LevelFieldName, LevelAuditName)
}

// ReplaceLevelAttr renames LevelAudit to AUDIT for stdlib slog handlers.
//
//	h := slog.NewJSONHandler(w, &slog.HandlerOptions{ReplaceAttr: logging.ReplaceLevelAttr})
func ReplaceLevelAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok && level == LevelAudit {
		a.Value = slog.StringValue(LevelAuditName)
	}
	return a
}
