// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

// Command decodelog reformats Hostaudit JSON logs from stdin as readable,
// coloured text on stdout. AUDIT records are dropped.
//
//	./hostaudit 2>&1 | decodelog
//	docker compose logs -f hostaudit | decodelog
package main

import (
	"os"

	"github.com/tomtom215/hostaudit/internal/logdecode"
	"github.com/tomtom215/hostaudit/internal/logging"
)

func main() {
	if err := logdecode.NewDecoder().Run(os.Stdin, os.Stdout); err != nil {
		logging.Fatal().Err(err).Msg("decodelog failed")
	}
}
