// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package audit

import (
	"sort"

	"github.com/tomtom215/hostaudit/internal/hooks"
)

// IgnoreLabel marks an argument position that is never attached to a record.
// It is used for values that may carry sensitive data.
const IgnoreLabel = "_"

// ArgPrefix prefixes argument labels in emitted records.
const ArgPrefix = "arg."

// recognizedEvents lists the audited events and a label for each positional
// argument the source may supply. It is unexported so nothing can modify it
// after start-up.
var recognizedEvents = map[string][]string{
	// Dynamic loading of code (Go plugins).
	hooks.EventExec: {"code_object"},

	// A file is about to be opened. The raw flags are dropped; mode already
	// describes them.
	hooks.EventOpen: {"path", "mode", IgnoreLabel},

	// A signal is sent to a process.
	hooks.EventKill: {"pid", "sig"},

	// A file is renamed.
	hooks.EventRename: {"src", "dst", "src_dir_fd", "dst_dir_fd"},

	// A subprocess is started. The environment may hold secrets.
	hooks.EventStart: {"executable", "args", "dir", IgnoreLabel},

	// Network access. The address is unmodified from the original call.
	hooks.EventDial:   {"network", "address"},
	hooks.EventLookup: {"host", "port", "network"},

	// A new audit hook is being added.
	hooks.EventAddHook: {},

	// Outbound HTTP request. Body and headers may carry credentials.
	hooks.EventRequest: {"url", IgnoreLabel, IgnoreLabel, "method"},
}

// Arg is one labelled argument kept for an audit record.
type Arg struct {
	Label string
	Value any
}

// FilterArgs returns the labelled arguments worth recording for an event,
// or false when the event is not audited. Arguments are paired with labels
// up to the shorter of the two; ignored positions are skipped.
func FilterArgs(name string, args []any) ([]Arg, bool) {
	labels, ok := recognizedEvents[name]
	if !ok {
		return nil, false
	}

	n := min(len(labels), len(args))
	out := make([]Arg, 0, n)
	for i := 0; i < n; i++ {
		if labels[i] == IgnoreLabel {
			continue
		}
		out = append(out, Arg{Label: labels[i], Value: args[i]})
	}
	return out, true
}

// Recognized reports whether name is an audited event.
func Recognized(name string) bool {
	_, ok := recognizedEvents[name]
	return ok
}

// Labels returns a copy of the argument labels for name.
func Labels(name string) []string {
	labels, ok := recognizedEvents[name]
	if !ok {
		return nil
	}
	return append([]string{}, labels...)
}

// EventNames returns the audited event names in sorted order.
func EventNames() []string {
	names := make([]string, 0, len(recognizedEvents))
	for name := range recognizedEvents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
