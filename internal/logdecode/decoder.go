// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package logdecode

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// ANSI colour sequences.
const (
	Red      = "\033[31m"
	Green    = "\033[32m"
	Blue     = "\033[34m"
	Orange   = "\033[38;5;208m"
	Reset    = "\033[0m"
	NoColour = ""
)

// LineEnding terminates every output line.
const LineEnding = "\r\n"

// auditLevel is the level value of records the decoder drops.
const auditLevel = "AUDIT"

// dateThreshold is how old the first line must be before dates are printed.
const dateThreshold = 10 * time.Hour

// composePrefix marks the start of JSON in `docker compose logs` output.
const composePrefix = "| {"

// excludedExtra are fields already shown in fixed columns, or noise.
var excludedExtra = map[string]bool{
	"time":      true,
	"level":     true,
	"message":   true,
	"component": true,
	"caller":    true,
	"instance":  true,
}

// Decoder turns zerolog JSON lines into aligned, coloured text. It is not
// safe for concurrent use.
type Decoder struct {
	now func() time.Time

	// outputDates is decided from the first decoded line, then fixed.
	outputDates *bool
}

// NewDecoder returns a Decoder using the wall clock.
func NewDecoder() *Decoder {
	return &Decoder{now: time.Now}
}

// Run reads lines from r and writes the reformatted lines to w.
func (d *Decoder) Run(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	bw := bufio.NewWriter(w)
	for sc.Scan() {
		out, ok := d.ProcessLine(sc.Text())
		if !ok {
			continue
		}
		if _, err := bw.WriteString(out + LineEnding); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return bw.Flush()
}

// ProcessLine reformats one log line. JSON lines, bare or behind a
// `docker compose logs` prefix, are decoded; anything else is returned
// unchanged. It returns false when the line should be dropped.
func (d *Decoder) ProcessLine(line string) (string, bool) {
	line = strings.TrimRight(line, " \t\r\n")
	if strings.HasPrefix(line, "{") {
		return d.DecodeJSONLine(line)
	}
	if i := strings.Index(line, composePrefix); i >= 0 {
		return d.DecodeJSONLine(line[i+2:])
	}
	return line, true
}

// DecodeJSONLine formats a single JSON log record. Invalid JSON is returned
// unchanged and AUDIT records are dropped.
func (d *Decoder) DecodeJSONLine(line string) (string, bool) {
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return line, true
	}

	level := popString(data, "level")
	if strings.EqualFold(level, auditLevel) {
		return "", false
	}

	component := popString(data, "component")
	caller := popString(data, "caller")
	message := popString(data, "message")
	created := parseTime(data["time"])

	return d.formatLine(created, component, caller, level, message, data), true
}

func (d *Decoder) formatLine(created time.Time, component, caller, level, message string, extra map[string]any) string {
	return fmt.Sprintf("%s  %s%-36s%s %-28s %s%-8s %-80s %s%s%s",
		d.formatTime(created),
		colourForComponent(component),
		component,
		Reset,
		caller,
		colourForLevel(level),
		level,
		message,
		Blue,
		formatExtra(extra),
		Reset,
	)
}

func (d *Decoder) formatTime(created time.Time) string {
	if d.outputDates == nil {
		old := d.now().Sub(created) > dateThreshold
		d.outputDates = &old
	}
	created = created.UTC()
	if *d.outputDates {
		return created.Format("2006-01-02T15:04:05.000")
	}
	return created.Format("15:04:05.000")
}

func colourForComponent(component string) string {
	switch {
	case strings.HasPrefix(component, "hostaudit"):
		return Green
	case strings.HasPrefix(component, "suture"):
		return Orange
	default:
		return NoColour
	}
}

func colourForLevel(level string) string {
	switch strings.ToLower(level) {
	case "warn", "warning", "error", "fatal", "panic":
		return Red
	default:
		return NoColour
	}
}

// formatExtra renders the remaining fields as sorted key=value pairs,
// skipping fixed-column fields and nulls.
func formatExtra(data map[string]any) string {
	keys := make([]string, 0, len(data))
	for k, v := range data {
		if excludedExtra[k] || v == nil {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+formatValue(data[k]))
	}
	return strings.Join(parts, " ")
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(val); err != nil {
			return fmt.Sprint(val)
		}
		return strings.TrimRight(buf.String(), "\n")
	}
}

// popString removes key from data and returns it as a string, or "-" when
// absent.
func popString(data map[string]any, key string) string {
	v, ok := data[key]
	if !ok || v == nil {
		delete(data, key)
		return "-"
	}
	delete(data, key)
	return formatValue(v)
}

// parseTime reads zerolog's "time" field: RFC 3339 text or Unix seconds.
// Missing or unreadable values give the Unix epoch.
func parseTime(v any) time.Time {
	switch val := v.(type) {
	case string:
		if t, err := time.Parse(time.RFC3339Nano, val); err == nil {
			return t
		}
	case json.Number:
		if f, err := val.Float64(); err == nil {
			sec := int64(f)
			return time.Unix(sec, int64((f-float64(sec))*float64(time.Second)))
		}
	}
	return time.Unix(0, 0)
}
