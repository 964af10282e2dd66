package calendar_test

import (
	"errors"
	"testing"
	"time"

	"github.com/chris-regnier/echoctl/internal/calendar"
	"github.com/chris-regnier/echoctl/internal/journal"
	"github.com/chris-regnier/echoctl/internal/storage"
	"github.com/chris-regnier/echoctl/internal/storage/markdown"
)

func newTestStore(t *testing.T) storage.Storage {
	t.Helper()
	s, err := markdown.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMonthMoods(t *testing.T) {
	s := newTestStore(t)

	entries := []journal.Entry{
		{Date: "2024-02-01", Content: "a", Mood: journal.MoodSad},
		{Date: "2024-02-14", Content: "b", Mood: journal.MoodCheerful},
		{Date: "2024-02-20", Content: "entry without mood"},
		{Date: "2024-01-31", Content: "prior month", Mood: journal.MoodHappy},
		{Date: "2024-03-01", Content: "next month", Mood: journal.MoodHappy},
	}
	for _, e := range entries {
		if err := s.Put(e); err != nil {
			t.Fatalf("Put(%s): %v", e.Date, err)
		}
	}

	moods, err := calendar.MonthMoods(s, 2024, time.February)
	if err != nil {
		t.Fatalf("MonthMoods: %v", err)
	}

	want := map[string]journal.Mood{
		"2024-02-01": journal.MoodSad,
		"2024-02-14": journal.MoodCheerful,
	}
	if len(moods) != len(want) {
		t.Errorf("got %d moods, want %d: %v", len(moods), len(want), moods)
	}
	for date, mood := range want {
		if moods[date] != mood {
			t.Errorf("moods[%s] = %q, want %q", date, moods[date], mood)
		}
	}
	if _, ok := moods["2024-02-20"]; ok {
		t.Error("entry without mood must be omitted from the map")
	}
}

func TestMonthMoodsEmptyMonth(t *testing.T) {
	s := newTestStore(t)

	moods, err := calendar.MonthMoods(s, 2024, time.June)
	if err != nil {
		t.Fatalf("MonthMoods: %v", err)
	}
	if len(moods) != 0 {
		t.Errorf("expected empty map, got %v", moods)
	}
}

func TestMonthMoodsInvalidMonth(t *testing.T) {
	s := newTestStore(t)

	if _, err := calendar.MonthMoods(s, 2024, time.Month(13)); !errors.Is(err, storage.ErrValidation) {
		t.Errorf("expected ErrValidation for month 13, got %v", err)
	}
	if _, err := calendar.MonthMoods(s, 2024, time.Month(0)); !errors.Is(err, storage.ErrValidation) {
		t.Errorf("expected ErrValidation for month 0, got %v", err)
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29}, // leap year
		{2023, time.February, 28},
		{2100, time.February, 28}, // century non-leap
		{2000, time.February, 29}, // 400-year leap
		{2024, time.January, 31},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		if got := calendar.DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestFirstWeekday(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.September, 0}, // Sep 1 2024 is a Sunday
		{2024, time.February, 4},  // Feb 1 2024 is a Thursday
		{2024, time.January, 1},   // Jan 1 2024 is a Monday
		{2026, time.August, 6},    // Aug 1 2026 is a Saturday
	}
	for _, tt := range tests {
		if got := calendar.FirstWeekday(tt.year, tt.month); got != tt.want {
			t.Errorf("FirstWeekday(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}
