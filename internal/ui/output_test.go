package ui

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/echoctl/internal/journal"
	"github.com/chris-regnier/echoctl/internal/search"
	"github.com/chris-regnier/echoctl/internal/trend"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func TestFormatEntryFull(t *testing.T) {
	var buf bytes.Buffer
	FormatEntryFull(&buf, journal.Entry{
		Date:    "2024-03-15",
		Content: "A fine day",
		Mood:    journal.MoodHappy,
	}, "notty")
	out := stripANSI(buf.String())

	if !strings.Contains(out, "Date: 2024-03-15") {
		t.Error("missing date header")
	}
	if !strings.Contains(out, "happy") {
		t.Error("missing mood line")
	}
	if !strings.Contains(out, "A fine day") {
		t.Error("missing content")
	}
}

func TestFormatEntryFullNoMood(t *testing.T) {
	var buf bytes.Buffer
	FormatEntryFull(&buf, journal.Entry{Date: "2024-03-15", Content: "x"}, "notty")

	if strings.Contains(buf.String(), "Mood:") {
		t.Error("mood line must be omitted when no mood is set")
	}
}

func TestFormatSearchResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatSearchResults(&buf, nil)
	if !strings.Contains(buf.String(), "No results found.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestFormatSearchResultsKeepsAllText(t *testing.T) {
	var buf bytes.Buffer
	FormatSearchResults(&buf, []search.Result{
		{
			Entry: journal.Entry{Date: "2024-03-01", Content: "the CAT sat"},
			Spans: []search.Span{{Start: 4, End: 7}},
		},
	})
	out := stripANSI(buf.String())

	if !strings.Contains(out, "2024-03-01") {
		t.Error("missing result date")
	}
	if !strings.Contains(out, "the CAT sat") {
		t.Errorf("highlighting must preserve surrounding text and casing, got %q", out)
	}
}

func TestFormatTrend(t *testing.T) {
	var buf bytes.Buffer
	FormatTrend(&buf, []trend.Point{
		{Date: "2024-02-01", Level: 1},
		{Date: "2024-02-03", Level: 4},
	})
	out := stripANSI(buf.String())

	if !strings.Contains(out, "2024-02-01") || !strings.Contains(out, "sad") {
		t.Errorf("missing sad point, got %q", out)
	}
	if !strings.Contains(out, "cheerful") || !strings.Contains(out, "████") {
		t.Errorf("missing four-bar cheerful point, got %q", out)
	}
}

func TestFormatTrendEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTrend(&buf, nil)
	if !strings.Contains(buf.String(), "No moods recorded yet.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestFormatCalendarGeometry(t *testing.T) {
	var buf bytes.Buffer
	FormatCalendar(&buf, 2024, time.September, nil, "")
	out := stripANSI(buf.String())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, weekday row, and Sep 2024 starts on Sunday: no padding,
	// 30 days over 5 rows.
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "September 2024") {
		t.Errorf("header = %q", lines[0])
	}
	if strings.HasPrefix(lines[2], "     ") {
		t.Errorf("Sunday-starting month must not be padded: %q", lines[2])
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	e := journal.Entry{Date: "2024-03-15", Content: "x", Mood: journal.MoodSad}
	if err := FormatJSON(&buf, e); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var got journal.Entry
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != e {
		t.Errorf("round trip = %+v, want %+v", got, e)
	}
}
