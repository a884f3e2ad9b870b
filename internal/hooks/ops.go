// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package hooks

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"plugin"
	"time"
)

// OpenFile raises open(path, mode, flag) and then calls os.OpenFile.
func (r *Registry) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	r.Raise(EventOpen, name, FileMode(flag), flag)
	return os.OpenFile(name, flag, perm)
}

// Rename raises os.rename(src, dst, nil, nil) and then calls os.Rename.
// The trailing arguments are the directory descriptors, which Go does not expose.
func (r *Registry) Rename(src, dst string) error {
	r.Raise(EventRename, src, dst, nil, nil)
	return os.Rename(src, dst)
}

// Kill raises os.kill(pid, sig) and then delivers sig to the process.
func (r *Registry) Kill(pid int, sig os.Signal) error {
	r.Raise(EventKill, pid, sig)

	p, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("find process %d: %w", pid, err)
	}
	if err := p.Signal(sig); err != nil {
		return fmt.Errorf("signal process %d: %w", pid, err)
	}
	return nil
}

// StartCommand raises exec.start(path, args, dir, env) and then starts cmd.
func (r *Registry) StartCommand(cmd *exec.Cmd) error {
	r.Raise(EventStart, cmd.Path, cmd.Args, cmd.Dir, cmd.Env)
	return cmd.Start()
}

// DialContext raises net.dial(network, address) and then dials with d.
// A nil dialer uses the zero net.Dialer.
func (r *Registry) DialContext(ctx context.Context, d *net.Dialer, network, address string) (net.Conn, error) {
	r.Raise(EventDial, network, address)
	if d == nil {
		d = &net.Dialer{}
	}
	return d.DialContext(ctx, network, address)
}

// LookupHost raises net.lookup(host) and then resolves host.
func (r *Registry) LookupHost(ctx context.Context, host string) ([]string, error) {
	r.Raise(EventLookup, host)
	return net.DefaultResolver.LookupHost(ctx, host)
}

// LoadPlugin raises exec(path) and then opens the Go plugin at path.
func (r *Registry) LoadPlugin(path string) (*plugin.Plugin, error) {
	r.Raise(EventExec, path)
	return plugin.Open(path)
}

// Transport wraps next so every outbound request raises
// http.request(url, body, header, method). body is nil for requests without
// one and the declared content length otherwise, since the reader itself
// differs on every request. A nil next uses http.DefaultTransport.
func (r *Registry) Transport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &auditTransport{registry: r, next: next}
}

type auditTransport struct {
	registry *Registry
	next     http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *auditTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.registry.Raise(EventRequest, req.URL.String(), requestBody(req), req.Header, req.Method)
	return t.next.RoundTrip(req)
}

func requestBody(req *http.Request) any {
	if req.Body == nil || req.Body == http.NoBody {
		return nil
	}
	return req.ContentLength
}

// InstrumentedTransport clones base and routes its dials through
// r.DialContext, then wraps it with r.Transport, so a request raises both
// http.request and net.dial for each new connection. A nil base clones
// http.DefaultTransport.
func (r *Registry) InstrumentedTransport(base *http.Transport) http.RoundTripper {
	if base == nil {
		if dt, ok := http.DefaultTransport.(*http.Transport); ok {
			base = dt
		} else {
			base = &http.Transport{Proxy: http.ProxyFromEnvironment}
		}
	}
	t := base.Clone()
	dialer := &net.Dialer{Timeout: 30 * time.Second, KeepAlive: 30 * time.Second}
	t.DialContext = func(ctx context.Context, network, address string) (net.Conn, error) {
		return r.DialContext(ctx, dialer, network, address)
	}
	return r.Transport(t)
}

// FileMode describes open flags the way fopen-style modes do: r, w, a,
// optionally followed by + for read-write access.
func FileMode(flag int) string {
	var mode string
	switch {
	case flag&os.O_APPEND != 0:
		mode = "a"
	case flag&os.O_WRONLY != 0:
		mode = "w"
	case flag&os.O_RDWR != 0 && flag&(os.O_TRUNC|os.O_CREATE) != 0:
		mode = "w"
	default:
		mode = "r"
	}
	if flag&os.O_RDWR != 0 {
		mode += "+"
	}
	return mode
}

// OpenFile raises open on the Default registry and opens the file.
func OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return Default.OpenFile(name, flag, perm)
}

// Open opens name read-only through the Default registry.
func Open(name string) (*os.File, error) {
	return Default.OpenFile(name, os.O_RDONLY, 0)
}

// Rename renames a file through the Default registry.
func Rename(src, dst string) error {
	return Default.Rename(src, dst)
}

// Kill signals a process through the Default registry.
func Kill(pid int, sig os.Signal) error {
	return Default.Kill(pid, sig)
}

// StartCommand starts cmd through the Default registry.
func StartCommand(cmd *exec.Cmd) error {
	return Default.StartCommand(cmd)
}

// DialContext dials through the Default registry.
func DialContext(ctx context.Context, d *net.Dialer, network, address string) (net.Conn, error) {
	return Default.DialContext(ctx, d, network, address)
}

// LookupHost resolves host through the Default registry.
func LookupHost(ctx context.Context, host string) ([]string, error) {
	return Default.LookupHost(ctx, host)
}

// Transport wraps next with the Default registry.
func Transport(next http.RoundTripper) http.RoundTripper {
	return Default.Transport(next)
}

// InstrumentedTransport clones base with dials and requests audited on the
// Default registry.
func InstrumentedTransport(base *http.Transport) http.RoundTripper {
	return Default.InstrumentedTransport(base)
}
