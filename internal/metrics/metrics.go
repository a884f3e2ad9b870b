// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Event names come from a fixed table, so using them as label values keeps
// cardinality bounded. Unrecognized names are never used as labels.

var (
	// Audit dispatcher metrics
	AuditEventsIgnored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_events_ignored_total",
			Help: "Total number of host events dropped because their name is not audited",
		},
	)

	AuditEventsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_events_emitted_total",
			Help: "Total number of audit records handed to the log sink",
		},
		[]string{"event"},
	)

	AuditEventsSuppressed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_events_suppressed_total",
			Help: "Total number of repeated audit events withheld by the throttle policy",
		},
		[]string{"event"},
	)

	AuditSinkErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_sink_errors_total",
			Help: "Total number of audit records the log sink failed to write",
		},
	)

	AuditDispatchPanics = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_dispatch_panics_total",
			Help: "Total number of panics recovered at the audit dispatcher boundary",
		},
	)

	AuditSinkBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "audit_sink_breaker_state",
			Help: "Audit sink circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"breaker"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)
)

// RecordAuditIgnored records a host event with no entry in the audit table.
func RecordAuditIgnored() {
	AuditEventsIgnored.Inc()
}

// RecordAuditDecision records whether the throttle policy let an event through.
func RecordAuditDecision(event string, emitted bool) {
	if emitted {
		AuditEventsEmitted.WithLabelValues(event).Inc()
		return
	}
	AuditEventsSuppressed.WithLabelValues(event).Inc()
}

// RecordAuditSinkError records a failed write to the audit log sink.
func RecordAuditSinkError() {
	AuditSinkErrors.Inc()
}

// RecordAuditPanic records a panic recovered by the audit dispatcher.
func RecordAuditPanic() {
	AuditDispatchPanics.Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}
