// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

/*
Package services provides suture.Service wrappers for Hostaudit components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer, so suture can name it in log events.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Listen failures are returned so suture restarts the server

Audit Cache Reporter (CacheReporterService):
  - Logs occurrence cache statistics on a fixed interval
  - Logs at warn when entries were evicted since the previous report

# Error Handling

Returning ctx.Err() after cancellation tells suture the stop was
requested. Any other error counts as a failure toward the supervisor's
FailureThreshold.
*/
package services
