// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package audit

import (
	"context"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/hostaudit/internal/logging"
	"github.com/tomtom215/hostaudit/internal/metrics"
)

// BreakerConfig configures NewBreakerSink.
type BreakerConfig struct {
	// Name labels the breaker in logs and metrics.
	Name string

	// FailureThreshold is the number of consecutive sink failures that
	// opens the circuit.
	FailureThreshold uint32

	// Timeout is how long the circuit stays open before a trial write.
	Timeout time.Duration
}

// DefaultBreakerConfig returns the settings used by the server.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "audit-sink",
		FailureThreshold: 5,
		Timeout:          30 * time.Second,
	}
}

// breakerSink stops calling a failing sink until Timeout has passed.
// While open, Handle returns gobreaker.ErrOpenState without touching next.
type breakerSink struct {
	next slog.Handler
	cb   *gobreaker.CircuitBreaker[struct{}]
}

// NewBreakerSink wraps next with a circuit breaker. Handlers derived through
// WithAttrs and WithGroup share the same breaker.
func NewBreakerSink(next slog.Handler, cfg BreakerConfig) slog.Handler {
	def := DefaultBreakerConfig()
	if cfg.Name == "" {
		cfg.Name = def.Name
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}

	metrics.AuditSinkBreakerState.WithLabelValues(cfg.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Audit sink circuit breaker state change")
			metrics.AuditSinkBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})

	return &breakerSink{next: next, cb: cb}
}

func (s *breakerSink) Enabled(ctx context.Context, level slog.Level) bool {
	return s.next.Enabled(ctx, level)
}

//nolint:gocritic // slog.Record is passed by value per slog.Handler interface
func (s *breakerSink) Handle(ctx context.Context, r slog.Record) error {
	_, err := s.cb.Execute(func() (struct{}, error) {
		return struct{}{}, s.next.Handle(ctx, r)
	})
	return err
}

func (s *breakerSink) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &breakerSink{next: s.next.WithAttrs(attrs), cb: s.cb}
}

func (s *breakerSink) WithGroup(name string) slog.Handler {
	return &breakerSink{next: s.next.WithGroup(name), cb: s.cb}
}

// stateValue maps a breaker state onto the gauge: 0 closed, 1 half-open, 2 open.
func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
