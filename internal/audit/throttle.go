// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package audit

// ShouldEmit reports whether the count-th occurrence of an event is logged.
// Every occurrence up to 10 is logged, then every 10th up to 100, then every
// 100th: 1..10, 20, 30, ..., 100, 200, 300, ...
func ShouldEmit(count int) bool {
	switch {
	case count < 1:
		return false
	case count <= 10:
		return true
	case count <= 100:
		return count%10 == 0
	default:
		return count%100 == 0
	}
}
