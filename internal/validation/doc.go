// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

// Package validation provides struct validation using go-playground/validator v10.
//
// It holds a thread-safe singleton validator with the project's custom tags
// and turns validator errors into readable messages. The config package
// validates the loaded Config through it:
//
//	type ServerConfig struct {
//	    Port int    `validate:"min=1,max=65535"`
//	    Host string `validate:"required"`
//	}
//
//	if err := validation.ValidateStruct(cfg); err != nil {
//	    return fmt.Errorf("invalid configuration: %w", err)
//	}
//
// Messages use the struct namespace of the field, for example
// "Config.Audit.CacheCapacity must be at least 1".
package validation
