// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package logging

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not a JSON object: %v (%q)", err, buf.String())
	}
	return got
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		zerologLevel zerolog.Level
		slogLevel    slog.Level
		want         bool
	}{
		{"debug logger enables debug level", zerolog.DebugLevel, slog.LevelDebug, true},
		{"info logger disables debug level", zerolog.InfoLevel, slog.LevelDebug, false},
		{"info logger enables audit level", zerolog.InfoLevel, LevelAudit, true},
		{"warn logger disables audit level", zerolog.WarnLevel, LevelAudit, false},
		{"warn logger enables error level", zerolog.WarnLevel, slog.LevelError, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewSlogHandlerWithLogger(zerolog.New(&bytes.Buffer{}).Level(tt.zerologLevel))
			if got := handler.Enabled(context.Background(), tt.slogLevel); got != tt.want {
				t.Errorf("Enabled(%v) = %v, want %v", tt.slogLevel, got, tt.want)
			}
		})
	}
}

func TestSlogHandler_AuditRecord(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf)))

	logger.Log(context.Background(), LevelAudit, "os.rename",
		slog.String("arg.src", "/tmp/a"),
		slog.String("arg.dst", "/tmp/b"),
		slog.Int("count", 3),
	)

	got := decodeLine(t, &buf)
	if got["level"] != "AUDIT" {
		t.Errorf("level = %v, want AUDIT", got["level"])
	}
	if got["message"] != "os.rename" {
		t.Errorf("message = %v, want os.rename", got["message"])
	}
	if got["arg.src"] != "/tmp/a" || got["arg.dst"] != "/tmp/b" {
		t.Errorf("unexpected args in %v", got)
	}
	if got["count"] != float64(3) {
		t.Errorf("count = %v, want 3", got["count"])
	}
}

func TestSlogHandler_LevelMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelInfo, "info"},
		{slog.LevelWarn, "warn"},
		{slog.LevelError, "error"},
		{slog.LevelInfo + 1, "info"},
		{slog.LevelError + 4, "error"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		handler := NewSlogHandlerWithLogger(zerolog.New(&buf))
		record := slog.NewRecord(time.Now(), tt.level, "msg", 0)
		if err := handler.Handle(context.Background(), record); err != nil {
			t.Fatalf("Handle returned %v", err)
		}
		if got := decodeLine(t, &buf)["level"]; got != tt.want {
			t.Errorf("level %v rendered as %v, want %s", tt.level, got, tt.want)
		}
	}
}

func TestSlogHandler_AttrKinds(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf)))

	logger.Info("kinds",
		slog.Bool("flag", true),
		slog.Float64("ratio", 0.5),
		slog.Uint64("big", 7),
		slog.Any("nothing", nil),
		slog.Any("list", []string{"ls", "-l"}),
	)

	got := decodeLine(t, &buf)
	if got["flag"] != true {
		t.Errorf("flag = %v", got["flag"])
	}
	if got["ratio"] != 0.5 {
		t.Errorf("ratio = %v", got["ratio"])
	}
	if got["big"] != float64(7) {
		t.Errorf("big = %v", got["big"])
	}
	if v, ok := got["nothing"]; !ok || v != nil {
		t.Errorf("nothing = %v (present %v), want null", v, ok)
	}
	if list, ok := got["list"].([]any); !ok || len(list) != 2 {
		t.Errorf("list = %v", got["list"])
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf))).
		With(slog.String("component", "audit")).
		WithGroup("outer").
		WithGroup("inner")

	logger.Info("grouped", slog.String("key", "value"))

	got := decodeLine(t, &buf)
	if got["outer.inner.key"] != "value" {
		t.Errorf("expected nested group key, got %v", got)
	}
	if !strings.Contains(buf.String(), "component") {
		t.Errorf("expected pre-configured attr, got %s", buf.String())
	}
}

func TestReplaceLevelAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: ReplaceLevelAttr,
	}))

	logger.Log(context.Background(), LevelAudit, "exec")

	if got := decodeLine(t, &buf)["level"]; got != "AUDIT" {
		t.Errorf("level = %v, want AUDIT", got)
	}

	buf.Reset()
	logger.Warn("not audit")
	if got := decodeLine(t, &buf)["level"]; got != "WARN" {
		t.Errorf("level = %v, want WARN", got)
	}
}

// errWriter fails every write and counts attempts.
type errWriter struct {
	err   error
	calls int
}

func (w *errWriter) Write([]byte) (int, error) {
	w.calls++
	return 0, w.err
}

func TestSlogHandlerWithWriter_ReturnsWriteError(t *testing.T) {
	t.Parallel()

	w := &errWriter{err: errors.New("disk full")}
	handler := NewSlogHandlerWithWriter(zerolog.New(io.Discard), w)

	err := handler.Handle(context.Background(), slog.NewRecord(time.Now(), LevelAudit, "open", 0))
	if !errors.Is(err, w.err) {
		t.Fatalf("Handle() = %v, want %v", err, w.err)
	}
	if w.calls != 1 {
		t.Errorf("writer calls = %d, want 1", w.calls)
	}

	derived := handler.WithAttrs([]slog.Attr{slog.String("host", "a")}).WithGroup("g")
	if err := derived.Handle(context.Background(), slog.NewRecord(time.Now(), LevelAudit, "open", 0)); !errors.Is(err, w.err) {
		t.Errorf("derived Handle() = %v, want %v", err, w.err)
	}
}

func TestSlogHandlerWithWriter_WritesRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     zerolog.Level
		record    slog.Level
		wantLevel string
	}{
		{name: "audit record", level: zerolog.InfoLevel, record: LevelAudit, wantLevel: "AUDIT"},
		{name: "warn record", level: zerolog.InfoLevel, record: slog.LevelWarn, wantLevel: "warn"},
		{name: "filtered record", level: zerolog.ErrorLevel, record: slog.LevelInfo},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var discarded, out bytes.Buffer
			logger := zerolog.New(&discarded).Level(tt.level).With().Str("component", "audit").Logger()
			handler := NewSlogHandlerWithWriter(logger, &out)

			r := slog.NewRecord(time.Now(), tt.record, "exec", 0)
			r.AddAttrs(slog.String("arg.path", "/bin/true"))
			if err := handler.Handle(context.Background(), r); err != nil {
				t.Fatalf("Handle() = %v", err)
			}

			if discarded.Len() != 0 {
				t.Errorf("logger's own writer received output: %s", discarded.String())
			}
			if tt.wantLevel == "" {
				if out.Len() != 0 {
					t.Errorf("filtered record written: %s", out.String())
				}
				return
			}

			got := decodeLine(t, &out)
			if got["level"] != tt.wantLevel || got["component"] != "audit" || got["arg.path"] != "/bin/true" {
				t.Errorf("record = %v", got)
			}
		})
	}
}

func TestNewAuditHandler_UsesConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	if Writer() != io.Writer(&buf) {
		t.Fatal("Writer() does not return the configured output")
	}

	if err := NewAuditHandler().Handle(context.Background(), slog.NewRecord(time.Now(), LevelAudit, "open", 0)); err != nil {
		t.Fatalf("Handle() = %v", err)
	}
	if got := decodeLine(t, &buf)["message"]; got != "open" {
		t.Errorf("message = %v, want open", got)
	}
}
