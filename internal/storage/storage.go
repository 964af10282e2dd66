package storage

import (
	"errors"
	"time"

	"github.com/chris-regnier/echoctl/internal/journal"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound   = errors.New("no entry for date")
	ErrValidation = errors.New("validation error")
	ErrStorage    = errors.New("storage error")
)

// Storage defines the interface for journal entry persistence. There
// is at most one entry per date; Put replaces any existing record for
// the entry's date. Entries are never deleted through this interface.
type Storage interface {
	// Put inserts or fully replaces the entry for its date.
	Put(e journal.Entry) error

	// Get returns the entry for a date key, or ErrNotFound.
	Get(date string) (journal.Entry, error)

	// List returns all entries in ascending date order.
	List() ([]journal.Entry, error)

	// ListMonth returns the month's entries in ascending date order.
	ListMonth(year int, month time.Month) ([]journal.Entry, error)

	Close() error
}
