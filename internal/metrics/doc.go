// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

/*
Package metrics provides Prometheus metrics for the audit pipeline and the
HTTP server.

# Audit Metrics

	audit_events_ignored_total                 events with an unrecognized name
	audit_events_emitted_total{event}          records written to the sink
	audit_events_suppressed_total{event}       occurrences dropped by throttling
	audit_sink_errors_total                    sink Handle errors
	audit_dispatch_panics_total                panics recovered in the dispatcher

The event label only ever takes one of the recognized event names, so its
cardinality is fixed.

# Cache Metrics

CacheCollector reads the occurrence cache at scrape time:

	audit_cache_entries
	audit_cache_capacity
	audit_cache_evictions_total
	audit_cache_hits_total
	audit_cache_misses_total

Register it once the dispatcher exists:

	prometheus.MustRegister(metrics.NewCacheCollector(d.Cache()))

# HTTP Metrics

	api_requests_total{method,endpoint,status_code}
	api_request_duration_seconds{method,endpoint}

endpoint is the chi route pattern (see internal/middleware).

All collectors except CacheCollector are registered with the default
registry through promauto at package init.
*/
package metrics
