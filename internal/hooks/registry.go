// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package hooks

import "sync"

// Event names raised by this package.
const (
	EventExec    = "exec"
	EventOpen    = "open"
	EventKill    = "os.kill"
	EventRename  = "os.rename"
	EventStart   = "exec.start"
	EventDial    = "net.dial"
	EventLookup  = "net.lookup"
	EventAddHook = "audit.addhook"
	EventRequest = "http.request"
)

// Hook receives every event raised on a Registry. Hooks run synchronously
// on the goroutine performing the audited operation and must not block.
type Hook func(name string, args []any)

// Registry holds the hooks notified of host events. The zero value is
// ready to use.
type Registry struct {
	mu    sync.RWMutex
	hooks []Hook
}

// Default is the process-wide registry used by the package-level helpers.
var Default = &Registry{}

// AddHook registers h. Already-registered hooks are notified with an
// audit.addhook event before h is added. Hooks cannot be removed.
func (r *Registry) AddHook(h Hook) {
	if h == nil {
		return
	}
	r.Raise(EventAddHook)

	r.mu.Lock()
	r.hooks = append(r.hooks, h)
	r.mu.Unlock()
}

// Raise notifies every hook, in registration order, of an event.
// No lock is held while hooks run.
func (r *Registry) Raise(name string, args ...any) {
	r.mu.RLock()
	hooks := r.hooks
	r.mu.RUnlock()

	for _, h := range hooks {
		h(name, args)
	}
}

// Len returns the number of registered hooks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.hooks)
}

// AddHook registers h on the Default registry.
func AddHook(h Hook) {
	Default.AddHook(h)
}

// Raise raises an event on the Default registry.
func Raise(name string, args ...any) {
	Default.Raise(name, args...)
}
