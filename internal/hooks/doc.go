// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

/*
Package hooks is the source of security-relevant host events.

Go has no runtime audit hooks, so operations worth auditing go through the
wrappers in this package. Each wrapper raises a named event on a Registry
before performing the operation, and every registered Hook sees it.

# Events

	exec          (path)                       LoadPlugin
	open          (path, mode, flag)           OpenFile, Open
	os.kill       (pid, sig)                   Kill
	os.rename     (src, dst, nil, nil)         Rename
	exec.start    (path, args, dir, env)       StartCommand
	net.dial      (network, address)           DialContext, InstrumentedTransport
	net.lookup    (host)                       LookupHost
	audit.addhook ()                           AddHook
	http.request  (url, body, header, method)  Transport, InstrumentedTransport

# Usage

	reg := &hooks.Registry{}
	reg.AddHook(func(name string, args []any) { ... })

	f, err := reg.OpenFile("/etc/hosts", os.O_RDONLY, 0)

	client := &http.Client{Transport: reg.Transport(nil)}

The package-level helpers use the process-wide Default registry.

# Thread Safety

Registries are safe for concurrent use. Hooks run synchronously on the
calling goroutine, without registry locks held, so a hook may raise events
itself; code reached from a hook must not call the wrappers in this package
or it will recurse.
*/
package hooks
