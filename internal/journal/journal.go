// Package journal defines the core data model: one entry per calendar
// day, identified solely by its date, with free-text content and an
// optional mood.
package journal

import (
	"fmt"
	"time"
)

// DateLayout is the canonical date key format. A date string in this
// format is the sole identity of an entry.
const DateLayout = "2006-01-02"

// Mood is one of a fixed set of per-day mood markers. The zero value
// means the user never set a mood that day.
type Mood string

const (
	MoodNone     Mood = ""
	MoodSad      Mood = "sad"
	MoodNormal   Mood = "normal"
	MoodHappy    Mood = "happy"
	MoodCheerful Mood = "cheerful"
)

// Moods lists all settable mood values in ascending trend order.
var Moods = []Mood{MoodSad, MoodNormal, MoodHappy, MoodCheerful}

// ParseMood validates a raw mood string. An empty string parses to
// MoodNone; anything outside the enumeration is rejected rather than
// stored verbatim.
func ParseMood(s string) (Mood, error) {
	switch Mood(s) {
	case MoodNone, MoodSad, MoodNormal, MoodHappy, MoodCheerful:
		return Mood(s), nil
	}
	return MoodNone, fmt.Errorf("invalid mood %q (must be one of sad, normal, happy, cheerful)", s)
}

// Valid reports whether m is a settable mood or MoodNone.
func (m Mood) Valid() bool {
	_, err := ParseMood(string(m))
	return err == nil
}

// Level maps a mood onto the numeric trend scale: sad=1, normal=2,
// happy=3, cheerful=4. MoodNone has no level and returns 0.
func (m Mood) Level() int {
	switch m {
	case MoodSad:
		return 1
	case MoodNormal:
		return 2
	case MoodHappy:
		return 3
	case MoodCheerful:
		return 4
	}
	return 0
}

// Entry is a single day's journal record.
type Entry struct {
	Date    string `json:"date"`
	Content string `json:"content"`
	Mood    Mood   `json:"mood,omitempty"`
}

// DateKey formats a time as an entry date key in its own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate validates a date key and returns the corresponding local
// midnight. Out-of-range days ("2024-02-30") are rejected.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %v", s, err)
	}
	return t, nil
}

// ValidateEntry checks the structural invariants of an entry before it
// reaches storage. Content may be empty; the date and mood may not be
// malformed.
func ValidateEntry(e Entry) error {
	if _, err := ParseDate(e.Date); err != nil {
		return err
	}
	if !e.Mood.Valid() {
		return fmt.Errorf("invalid mood %q", e.Mood)
	}
	return nil
}
