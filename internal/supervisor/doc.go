// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

// Package supervisor runs Hostaudit's long-lived services under a suture v4
// supervisor tree.
//
// # Tree Layout
//
//	hostaudit (root)
//	├── audit-layer
//	│   └── audit-cache-reporter
//	└── api-layer
//	    └── http-server
//
// Supervisor events (service failures, backoff, restarts) are logged
// through sutureslog into the zerolog stream:
//
//	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
//	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))
//	err = tree.Serve(ctx) // blocks until ctx is canceled
//
// A service that keeps failing is restarted with backoff once it crosses
// FailureThreshold; failures decay over FailureDecay seconds.
//
// The audit dispatcher itself is not a service: it runs inline on the
// goroutine that raised the event.
package supervisor
