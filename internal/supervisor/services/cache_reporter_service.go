// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/hostaudit/internal/cache"
)

// CacheStatsSource is satisfied by *cache.CounterLRU.
type CacheStatsSource interface {
	Stats() cache.CounterStats
}

// CacheReporterService periodically logs the audit occurrence cache
// statistics. High eviction counts mean repeat counts are being lost and
// the cache capacity should be raised.
type CacheReporterService struct {
	source   CacheStatsSource
	interval time.Duration
	logger   zerolog.Logger
	name     string

	lastEvictions int64
}

// NewCacheReporterService creates a reporter logging every interval.
// A non-positive interval means one minute.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCacheReporterService(source CacheStatsSource, interval time.Duration, logger zerolog.Logger) *CacheReporterService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheReporterService{
		source:   source,
		interval: interval,
		logger:   logger,
		name:     "audit-cache-reporter",
	}
}

// Serve implements suture.Service.
func (s *CacheReporterService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.report()
			return ctx.Err()
		case <-ticker.C:
			s.report()
		}
	}
}

// report logs one stats line. Evictions since the previous report are
// logged at warn.
func (s *CacheReporterService) report() {
	stats := s.source.Stats()

	event := s.logger.Info()
	evicted := stats.Evictions - s.lastEvictions
	if evicted > 0 {
		event = s.logger.Warn()
	}
	s.lastEvictions = stats.Evictions

	event.
		Int("entries", stats.Size).
		Int("capacity", stats.Capacity).
		Int64("hits", stats.Hits).
		Int64("misses", stats.Misses).
		Int64("evictions", stats.Evictions).
		Int64("evicted_since_last", evicted).
		Msg("audit cache stats")
}

// String names the service in suture's log events.
func (s *CacheReporterService) String() string {
	return s.name
}
