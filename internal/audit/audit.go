// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package audit

import (
	"log/slog"

	"github.com/tomtom215/hostaudit/internal/hooks"
)

// Init starts audit logging for the whole process: it builds a Dispatcher
// writing to sink and registers it on hooks.Default.
//
// Hooks cannot be removed, so calling Init twice installs two dispatchers
// and every event is logged twice. Call it once, from main.
func Init(sink slog.Handler, opts ...Option) *Dispatcher {
	d := NewDispatcher(sink, opts...)
	d.Register(hooks.Default)
	return d
}
