// Package calendar derives the month-view projections: the
// date-to-mood map and the grid geometry for a Sunday-first layout.
package calendar

import (
	"fmt"
	"time"

	"github.com/chris-regnier/echoctl/internal/journal"
	"github.com/chris-regnier/echoctl/internal/storage"
)

// MonthMoods returns, for every date in the given month that has an
// entry with a set mood, a mapping from date key to mood. Entries
// without a mood are omitted, matching the calendar's "no marker"
// rendering for such days.
func MonthMoods(store storage.Storage, year int, month time.Month) (map[string]journal.Mood, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: invalid month %d", storage.ErrValidation, month)
	}

	entries, err := store.ListMonth(year, month)
	if err != nil {
		return nil, fmt.Errorf("listing month entries: %w", err)
	}

	moods := make(map[string]journal.Mood)
	for _, e := range entries {
		if e.Mood == journal.MoodNone {
			continue
		}
		moods[e.Date] = e.Mood
	}
	return moods, nil
}

// DaysIn returns the number of days in a month, accounting for
// variable month lengths and leap-year February.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday index of day 1 of the month, with
// the week starting on Sunday at index 0. Callers use it to pad the
// first row of a 7-column grid.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}
