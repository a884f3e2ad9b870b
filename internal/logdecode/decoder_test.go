// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package logdecode

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestDecoder() *Decoder {
	return &Decoder{now: func() time.Time { return fixedNow }}
}

func TestProcessLine_PassThrough(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "starting up", "starting up"},
		{"trailing whitespace trimmed", "panic: boom  \r\n", "panic: boom"},
		{"empty", "", ""},
		{"invalid json", "{not json", "{not json"},
		{"compose prefix with invalid json", "api-1  | {broken", "{broken"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := newTestDecoder().ProcessLine(tt.in)
			if !ok {
				t.Fatal("line unexpectedly dropped")
			}
			if got != tt.want {
				t.Errorf("ProcessLine(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestProcessLine_DropsAudit(t *testing.T) {
	t.Parallel()

	d := newTestDecoder()
	for _, line := range []string{
		`{"level":"AUDIT","arg.path":"/etc/passwd","count":1,"message":"open"}`,
		`hostaudit-1  | {"level":"AUDIT","message":"os.kill"}`,
	} {
		if out, ok := d.ProcessLine(line); ok {
			t.Errorf("AUDIT line not dropped: %q", out)
		}
	}
}

func TestDecodeJSONLine_Format(t *testing.T) {
	t.Parallel()

	d := newTestDecoder()
	line := `{"level":"info","component":"hostaudit","instance":"abc","caller":"main.go:88",` +
		`"time":"2026-03-14T11:59:58.123Z","addr":"127.0.0.1:9477","port":9477,"ok":true,` +
		`"nothing":null,"message":"HTTP server listening"}`

	got, ok := d.DecodeJSONLine(line)
	if !ok {
		t.Fatal("line dropped")
	}

	want := "11:59:58.123  " +
		Green + padRight("hostaudit", 36) + Reset + " " +
		padRight("main.go:88", 28) + " " +
		NoColour + padRight("info", 8) + " " +
		padRight("HTTP server listening", 80) + " " +
		Blue + "addr=127.0.0.1:9477 ok=true port=9477" + Reset

	if got != want {
		t.Errorf("DecodeJSONLine():\n got %q\nwant %q", got, want)
	}
}

func padRight(s string, n int) string {
	return s + strings.Repeat(" ", n-len(s))
}

func TestDecodeJSONLine_MissingFields(t *testing.T) {
	t.Parallel()

	got, ok := newTestDecoder().DecodeJSONLine(`{}`)
	if !ok {
		t.Fatal("line dropped")
	}
	// Epoch is far in the past, so the date is printed.
	if !strings.HasPrefix(got, "1970-01-01T00:00:00.000  ") {
		t.Errorf("unexpected time column: %q", got)
	}
	if strings.Count(got, "-") < 4 {
		t.Errorf("missing fields should render as '-': %q", got)
	}
}

func TestColours(t *testing.T) {
	t.Parallel()

	components := map[string]string{
		"hostaudit":       Green,
		"hostaudit.audit": Green,
		"suture":          Orange,
		"supervisor":      NoColour,
		"-":               NoColour,
	}
	for component, want := range components {
		if got := colourForComponent(component); got != want {
			t.Errorf("colourForComponent(%q) = %q, want %q", component, got, want)
		}
	}

	levels := map[string]string{
		"debug": NoColour,
		"info":  NoColour,
		"warn":  Red,
		"error": Red,
		"fatal": Red,
		"panic": Red,
		"ERROR": Red,
	}
	for level, want := range levels {
		if got := colourForLevel(level); got != want {
			t.Errorf("colourForLevel(%q) = %q, want %q", level, got, want)
		}
	}
}

func TestFormatTime_LatchedOnFirstLine(t *testing.T) {
	t.Parallel()

	t.Run("recent first line prints time only", func(t *testing.T) {
		t.Parallel()
		d := newTestDecoder()
		if got := d.formatTime(fixedNow.Add(-time.Hour)); got != "11:00:00.000" {
			t.Errorf("formatTime = %q", got)
		}
		// An old line later on does not switch to dates.
		if got := d.formatTime(fixedNow.Add(-48 * time.Hour)); got != "12:00:00.000" {
			t.Errorf("formatTime = %q", got)
		}
	})

	t.Run("old first line prints dates", func(t *testing.T) {
		t.Parallel()
		d := newTestDecoder()
		if got := d.formatTime(fixedNow.Add(-11 * time.Hour)); got != "2026-03-14T01:00:00.000" {
			t.Errorf("formatTime = %q", got)
		}
		if got := d.formatTime(fixedNow); got != "2026-03-14T12:00:00.000" {
			t.Errorf("formatTime = %q", got)
		}
	})
}

func TestFormatExtra(t *testing.T) {
	t.Parallel()

	d := newTestDecoder()
	line := `{"message":"x","time":"2026-03-14T12:00:00Z","error":"disk full","nested":{"a":1},"list":[1,"<b>"],"big":12345678901}`
	got, ok := d.DecodeJSONLine(line)
	if !ok {
		t.Fatal("line dropped")
	}

	wantExtra := `big=12345678901 error=disk full list=[1,"<b>"] nested={"a":1}`
	if !strings.Contains(got, Blue+wantExtra+Reset) {
		t.Errorf("extra not rendered as %q: %q", wantExtra, got)
	}
}

func TestParseTime(t *testing.T) {
	t.Parallel()

	d := newTestDecoder()
	got, _ := d.DecodeJSONLine(`{"time":1773489600.5,"message":"unix"}`)
	if !strings.HasPrefix(got, "12:00:00.500") {
		t.Errorf("unix seconds not parsed: %q", got)
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		`{"level":"info","time":"2026-03-14T11:00:00Z","message":"one"}`,
		`{"level":"AUDIT","time":"2026-03-14T11:00:01Z","message":"open"}`,
		`plain`,
		`svc-1  | {"level":"warn","time":"2026-03-14T11:00:02Z","message":"two"}`,
	}, "\n")

	var out bytes.Buffer
	if err := newTestDecoder().Run(strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), LineEnding), LineEnding)
	if len(lines) != 3 {
		t.Fatalf("expected 3 output lines, got %d: %q", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "one") || lines[1] != "plain" || !strings.Contains(lines[2], Red+"warn") {
		t.Errorf("unexpected output: %q", lines)
	}
}
