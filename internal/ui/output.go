package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/echoctl/internal/calendar"
	"github.com/chris-regnier/echoctl/internal/journal"
	"github.com/chris-regnier/echoctl/internal/search"
	"github.com/chris-regnier/echoctl/internal/trend"
)

var (
	dateStyle      = lipgloss.NewStyle().Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF"))
	todayStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
)

// FormatEntrySaved formats a save confirmation message.
func FormatEntrySaved(w io.Writer, e journal.Entry) {
	fmt.Fprintf(w, "Saved entry for %s.\n", e.Date)
}

// FormatEntryAppended formats an append confirmation message.
func FormatEntryAppended(w io.Writer, e journal.Entry) {
	fmt.Fprintf(w, "Added to entry for %s.\n", e.Date)
}

// FormatNoEntry formats the "no entry" marker for a date.
func FormatNoEntry(w io.Writer, date string) {
	fmt.Fprintf(w, "No entry for %s.\n", date)
}

// FormatEntryFull formats a full entry display with a metadata header
// and the content rendered as markdown.
func FormatEntryFull(w io.Writer, e journal.Entry, markdownStyle string) {
	fmt.Fprintf(w, "Date: %s\n", e.Date)
	if e.Mood != journal.MoodNone {
		fmt.Fprintf(w, "Mood: %s %s\n", MoodGlyph(e.Mood), e.Mood)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, RenderMarkdownWithStyle(e.Content, 80, markdownStyle))
}

// FormatSearchResults formats search matches in chronological order,
// with every occurrence of the query highlighted.
func FormatSearchResults(w io.Writer, results []search.Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}
	for _, r := range results {
		fmt.Fprintln(w, dateStyle.Render(r.Entry.Date))
		highlighted := highlightSpans(r.Entry.Content, r.Spans)
		fmt.Fprintf(w, "  %s\n\n", strings.ReplaceAll(highlighted, "\n", "\n  "))
	}
}

// highlightSpans styles each matched span, preserving the original
// casing of the matched text.
func highlightSpans(content string, spans []search.Span) string {
	var b strings.Builder
	last := 0
	for _, sp := range spans {
		b.WriteString(content[last:sp.Start])
		b.WriteString(highlightStyle.Render(content[sp.Start:sp.End]))
		last = sp.End
	}
	b.WriteString(content[last:])
	return b.String()
}

// FormatTrend formats the mood series as dated level bars.
func FormatTrend(w io.Writer, points []trend.Point) {
	if len(points) == 0 {
		fmt.Fprintln(w, "No moods recorded yet.")
		return
	}
	for _, p := range points {
		fmt.Fprintf(w, "%s  %-8s %s\n", p.Date, levelName(p.Level), strings.Repeat("█", p.Level))
	}
}

func levelName(level int) string {
	for _, m := range journal.Moods {
		if m.Level() == level {
			return string(m)
		}
	}
	return ""
}

// FormatCalendar renders a Sunday-first month grid with mood markers.
// today is the date key to underline, or empty.
func FormatCalendar(w io.Writer, year int, month time.Month, moods map[string]journal.Mood, today string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	fmt.Fprintln(w, dateStyle.Render(first.Format("January 2006")))
	fmt.Fprintln(w, mutedStyle.Render(" Sun  Mon  Tue  Wed  Thu  Fri  Sat"))

	col := calendar.FirstWeekday(year, month)
	fmt.Fprint(w, strings.Repeat("     ", col))

	days := calendar.DaysIn(year, month)
	for d := 1; d <= days; d++ {
		key := fmt.Sprintf("%04d-%02d-%02d", year, month, d)

		cell := fmt.Sprintf("%4d", d)
		if today == key {
			cell = todayStyle.Render(cell)
		}
		fmt.Fprint(w, cell)

		if glyph := MoodGlyph(moods[key]); glyph != "" {
			fmt.Fprint(w, glyph)
		} else {
			fmt.Fprint(w, " ")
		}

		col++
		if col == 7 {
			col = 0
			fmt.Fprintln(w)
		}
	}
	if col != 0 {
		fmt.Fprintln(w)
	}
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
