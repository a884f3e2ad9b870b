// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

// Package audit logs security-relevant host events at the AUDIT level,
// deduplicating and throttling repeats.
//
// # Overview
//
// Events arrive from the hooks package as a name and a positional argument
// list. For each event the Dispatcher:
//
//	raw event -> FilterArgs -> CounterLRU.Touch -> ShouldEmit -> slog.Handler
//	               |                 |                 |
//	          drop unknown      count repeats     1..10, every 10th
//	          label args        per event key     to 100, every 100th
//
// # Audited Events
//
//	exec           code_object
//	open           path, mode            (raw flags ignored)
//	os.kill        pid, sig
//	os.rename      src, dst, src_dir_fd, dst_dir_fd
//	exec.start     executable, args, dir (environment ignored)
//	net.dial       network, address
//	net.lookup     host, port, network
//	audit.addhook  (no arguments)
//	http.request   url, method           (body and headers ignored)
//
// Any other event name is dropped without a record.
//
// # Records
//
// A record's message is the event name and its level is AUDIT
// (logging.LevelAudit, between info and warn). Fields are "arg.<label>" for
// every kept argument followed by "count", the number of times this exact
// event has been seen:
//
//	{"level":"AUDIT","arg.path":"/etc/passwd","arg.mode":"r","count":1,"message":"open"}
//
// Two events are the same when their names match and the literal text of
// every argument matches, ignored arguments included.
//
// # Throttling
//
// For a single event key the records carry counts 1, 2, ..., 10, 20, ...,
// 100, 200, 300, ... so log volume grows with the logarithm of the event
// rate while bursts stay visible. Counts live in a bounded LRU cache; an
// event evicted from it starts again at 1.
//
// # Usage Example
//
//	d := audit.Init(logging.NewAuditHandler())
//	prometheus.MustRegister(metrics.NewCacheCollector(d.Cache()))
//
//	f, err := hooks.Open("/etc/hosts") // logs an "open" AUDIT record
//
// For tests or scoped instrumentation, build a Dispatcher and register it on
// a private registry:
//
//	reg := &hooks.Registry{}
//	audit.NewDispatcher(sink, audit.WithCapacity(100)).Register(reg)
//
// # Failure Handling
//
// Handle never panics and never returns an error. Sink errors and recovered
// panics are counted in metrics and otherwise discarded.
//
// A sink that keeps failing can be wrapped with NewBreakerSink. After
// FailureThreshold consecutive failures records are dropped without calling
// the sink until Timeout has passed:
//
//	sink := audit.NewBreakerSink(logging.NewAuditHandler(), audit.DefaultBreakerConfig())
//	audit.Init(sink)
//
// # Thread Safety
//
// Handle may be called from any number of goroutines. The only shared state
// is the occurrence cache, guarded by a single mutex held for O(1) work.
package audit
