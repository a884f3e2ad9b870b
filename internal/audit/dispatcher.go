// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package audit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/tomtom215/hostaudit/internal/cache"
	"github.com/tomtom215/hostaudit/internal/hooks"
	"github.com/tomtom215/hostaudit/internal/logging"
	"github.com/tomtom215/hostaudit/internal/metrics"
)

// DefaultCacheCapacity bounds the number of distinct events counted at once.
// Keys are capped at MaxEventKeyLen bytes, so the cache holds at most about
// capacity * MaxEventKeyLen bytes of key text.
const DefaultCacheCapacity = cache.DefaultCounterCapacity

// MaxEventKeyLen caps a cache key. Longer keys keep their leading bytes and
// end in a hash of the full text, so ignored arguments such as environment
// blocks or request headers are not retained in full.
const MaxEventKeyLen = 256

// Record is one accepted audit event as handed to the log sink.
type Record struct {
	Name  string
	Args  []Arg
	Count int
}

// Extra returns the record's fields: one "arg.<label>" entry per kept
// argument plus "count".
func (r Record) Extra() map[string]any {
	extra := make(map[string]any, len(r.Args)+1)
	for _, a := range r.Args {
		extra[ArgPrefix+a.Label] = a.Value
	}
	extra["count"] = r.Count
	return extra
}

// Dispatcher turns raw host events into throttled AUDIT log records.
type Dispatcher struct {
	sink  slog.Handler
	cache *cache.CounterLRU
	now   func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithCache uses c to count occurrences.
func WithCache(c *cache.CounterLRU) Option {
	return func(d *Dispatcher) {
		d.cache = c
	}
}

// WithCapacity bounds the occurrence cache to n distinct events.
func WithCapacity(n int) Option {
	return func(d *Dispatcher) {
		d.cache = cache.NewCounterLRU(n)
	}
}

// WithClock overrides the record timestamp source.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		d.now = now
	}
}

// NewDispatcher creates a dispatcher writing to sink. A nil sink logs
// through the global zerolog logger.
func NewDispatcher(sink slog.Handler, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sink: sink,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.sink == nil {
		d.sink = logging.NewAuditHandler()
	}
	if d.cache == nil {
		d.cache = cache.NewCounterLRU(DefaultCacheCapacity)
	}
	return d
}

// Handle processes one raw host event. It never panics and reports nothing
// back to the caller: a lost audit record must not disturb the operation
// being audited.
func (d *Dispatcher) Handle(name string, args ...any) {
	defer func() {
		if r := recover(); r != nil {
			metrics.RecordAuditPanic()
		}
	}()

	kept, ok := FilterArgs(name, args)
	if !ok {
		metrics.RecordAuditIgnored()
		return
	}

	count := d.cache.Touch(eventKey(name, args))
	emit := ShouldEmit(count)
	metrics.RecordAuditDecision(name, emit)
	if !emit {
		return
	}

	d.emit(Record{Name: name, Args: kept, Count: count})
}

func (d *Dispatcher) emit(rec Record) {
	ctx := context.Background()
	if !d.sink.Enabled(ctx, logging.LevelAudit) {
		return
	}

	r := slog.NewRecord(d.now(), logging.LevelAudit, rec.Name, 0)
	for _, a := range rec.Args {
		r.AddAttrs(slog.Any(ArgPrefix+a.Label, a.Value))
	}
	r.AddAttrs(slog.Int("count", rec.Count))

	if err := d.sink.Handle(ctx, r); err != nil {
		metrics.RecordAuditSinkError()
	}
}

// Hook adapts the dispatcher to a hooks.Hook.
func (d *Dispatcher) Hook() hooks.Hook {
	return func(name string, args []any) {
		d.Handle(name, args...)
	}
}

// Register installs the dispatcher on r.
func (d *Dispatcher) Register(r *hooks.Registry) {
	r.AddHook(d.Hook())
}

// Cache returns the occurrence cache, for inspection and metrics.
func (d *Dispatcher) Cache() *cache.CounterLRU {
	return d.cache
}

// eventKey identifies "the same" event: equal names and equal literal text
// for every argument, including ignored ones. Keys longer than
// MaxEventKeyLen are truncated and suffixed with the xxhash of the full text.
func eventKey(name string, args []any) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%#v", a)
	}
	b.WriteByte(')')

	key := b.String()
	if len(key) <= MaxEventKeyLen {
		return key
	}
	suffix := fmt.Sprintf("#%016x", xxhash.Sum64String(key))
	return key[:MaxEventKeyLen-len(suffix)] + suffix
}
