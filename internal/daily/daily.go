// Package daily implements the day-level write and lookup operations
// on top of storage primitives. "Today" is always an explicit
// parameter; only the cmd layer consults the system clock.
package daily

import (
	"errors"
	"fmt"
	"time"

	"github.com/chris-regnier/echoctl/internal/journal"
	"github.com/chris-regnier/echoctl/internal/storage"
)

// appendSeparator joins repeated same-day notes so they stay readable.
const appendSeparator = "\n\n"

// UpsertToday writes or fully overwrites today's entry. Content and
// mood are both replaced regardless of prior state.
func UpsertToday(store storage.Storage, today time.Time, content string, mood journal.Mood) (journal.Entry, error) {
	e := journal.Entry{
		Date:    journal.DateKey(today),
		Content: content,
		Mood:    mood,
	}
	if err := store.Put(e); err != nil {
		return journal.Entry{}, fmt.Errorf("saving today's entry: %w", err)
	}
	return e, nil
}

// AppendToday concatenates text onto today's entry, preserving any
// existing mood. When no entry exists yet, one is created with the
// text as its content and no mood.
func AppendToday(store storage.Storage, today time.Time, text string) (journal.Entry, error) {
	date := journal.DateKey(today)

	e, err := store.Get(date)
	switch {
	case err == nil:
		if e.Content == "" {
			e.Content = text
		} else {
			e.Content += appendSeparator + text
		}
	case errors.Is(err, storage.ErrNotFound):
		e = journal.Entry{Date: date, Content: text}
	default:
		return journal.Entry{}, fmt.Errorf("looking up today's entry: %w", err)
	}

	if err := store.Put(e); err != nil {
		return journal.Entry{}, fmt.Errorf("appending to today's entry: %w", err)
	}
	return e, nil
}

// GetByDate returns the entry for a date key. A missing entry is a
// normal outcome reported through found=false, never an error.
func GetByDate(store storage.Storage, date string) (journal.Entry, bool, error) {
	if _, err := journal.ParseDate(date); err != nil {
		return journal.Entry{}, false, fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}

	e, err := store.Get(date)
	if errors.Is(err, storage.ErrNotFound) {
		return journal.Entry{}, false, nil
	}
	if err != nil {
		return journal.Entry{}, false, fmt.Errorf("looking up entry: %w", err)
	}
	return e, true, nil
}
