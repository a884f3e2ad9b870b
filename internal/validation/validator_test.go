// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type sample struct {
	Level    string `validate:"loglevel"`
	Path     string `validate:"urlpath"`
	Port     int    `validate:"min=1,max=65535"`
	Format   string `validate:"oneof=json console"`
	Capacity int    `validate:"gte=1"`
}

func validSample() sample {
	return sample{Level: "info", Path: "/metrics", Port: 8080, Format: "json", Capacity: 10}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"trace", "debug", "info", "audit", "AUDIT", "warn", "error"} {
		s := validSample()
		s.Level = level
		if err := ValidateStruct(s); err != nil {
			t.Errorf("level %q: unexpected error: %v", level, err)
		}
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*sample)
		tag     string
		message string
	}{
		{"bad level", func(s *sample) { s.Level = "verbose" }, "loglevel", "sample.Level must be one of"},
		{"relative path", func(s *sample) { s.Path = "metrics" }, "urlpath", "sample.Path must be an absolute URL path"},
		{"path with query", func(s *sample) { s.Path = "/metrics?x=1" }, "urlpath", "absolute URL path"},
		{"port zero", func(s *sample) { s.Port = 0 }, "min", "sample.Port must be at least 1"},
		{"port too high", func(s *sample) { s.Port = 70000 }, "max", "sample.Port must be at most 65535"},
		{"bad format", func(s *sample) { s.Format = "xml" }, "oneof", "sample.Format must be one of: json console"},
		{"zero capacity", func(s *sample) { s.Capacity = 0 }, "gte", "greater than or equal to 1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := validSample()
			tt.mutate(&s)

			err := ValidateStruct(s)
			if err == nil {
				t.Fatal("expected validation error")
			}

			var verrs *Errors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected *Errors, got %T", err)
			}
			if len(verrs.Errors()) != 1 {
				t.Fatalf("expected 1 field error, got %d: %v", len(verrs.Errors()), err)
			}
			if got := verrs.Errors()[0].Tag(); got != tt.tag {
				t.Errorf("tag = %q, want %q", got, tt.tag)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.message)
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	t.Parallel()

	s := validSample()
	s.Port = 0
	s.Level = "loud"

	err := ValidateStruct(s)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if n := strings.Count(err.Error(), ";"); n != 1 {
		t.Errorf("expected two joined messages, got %q", err.Error())
	}
}

func TestErrors_Empty(t *testing.T) {
	t.Parallel()

	if got := (&Errors{}).Error(); got != "validation failed" {
		t.Errorf("Error() = %q", got)
	}
}
