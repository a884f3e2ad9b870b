// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package config

import (
	"errors"
	"fmt"

	"github.com/tomtom215/hostaudit/internal/validation"
)

// ErrMetricsPathConflict is returned when the metrics endpoint would shadow
// another route.
var ErrMetricsPathConflict = errors.New("METRICS_PATH conflicts with a built-in route")

// reservedPaths are routes the server always mounts.
var reservedPaths = map[string]bool{
	"/healthz":     true,
	"/debug/audit": true,
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}
	return c.validateMetrics()
}

// validateMetrics validates the metrics endpoint (only if enabled)
func (c *Config) validateMetrics() error {
	if !c.Metrics.Enabled {
		return nil
	}
	if reservedPaths[c.Metrics.Path] {
		return fmt.Errorf("%w: %s", ErrMetricsPathConflict, c.Metrics.Path)
	}
	return nil
}
