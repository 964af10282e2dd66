package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chris-regnier/echoctl/internal/journal"
	"github.com/chris-regnier/echoctl/internal/storage"
	_ "github.com/tursodatabase/go-libsql"
)

// Store implements storage.Storage using SQLite via Turso/libSQL.
type Store struct {
	db *sql.DB
}

// New creates a new SQLite storage backend.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}

	dbPath := filepath.Join(dataDir, "echoctl.db")
	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrStorage, err)
	}

	// Enable WAL mode. The pragma reports the resulting mode as a row,
	// and the libsql driver rejects Exec for row-returning statements,
	// so issue it through Query and discard the result.
	rows, err := db.Query("PRAGMA journal_mode=WAL")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling WAL mode: %v", storage.ErrStorage, err)
	}
	rows.Close()

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS entries (
			date    TEXT PRIMARY KEY CHECK(date GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'),
			content TEXT NOT NULL DEFAULT '',
			mood    TEXT NOT NULL DEFAULT '' CHECK(mood IN ('', 'sad', 'normal', 'happy', 'cheerful'))
		);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("%w: creating schema: %v", storage.ErrStorage, err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put inserts or fully replaces the entry for its date.
func (s *Store) Put(e journal.Entry) error {
	if err := journal.ValidateEntry(e); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}

	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO entries (date, content, mood) VALUES (?, ?, ?)",
		e.Date, e.Content, string(e.Mood),
	)
	if err != nil {
		return fmt.Errorf("%w: writing entry: %v", storage.ErrStorage, err)
	}
	return nil
}

// Get retrieves the entry for a date key.
func (s *Store) Get(date string) (journal.Entry, error) {
	row := s.db.QueryRow(
		"SELECT date, content, mood FROM entries WHERE date = ?", date,
	)

	// The libsql driver returns date-shaped TEXT values as time.Time
	// (parsed in UTC), so scan into time.Time and format back to the
	// stored YYYY-MM-DD key.
	var e journal.Entry
	var d time.Time
	var mood string
	if err := row.Scan(&d, &e.Content, &mood); err != nil {
		if err == sql.ErrNoRows {
			return journal.Entry{}, storage.ErrNotFound
		}
		return journal.Entry{}, fmt.Errorf("%w: querying entry: %v", storage.ErrStorage, err)
	}
	e.Date = d.Format(journal.DateLayout)
	e.Mood = journal.Mood(mood)

	return e, nil
}

// List returns all entries in ascending date order.
func (s *Store) List() ([]journal.Entry, error) {
	return s.scan("SELECT date, content, mood FROM entries ORDER BY date ASC")
}

// ListMonth returns the month's entries in ascending date order.
func (s *Store) ListMonth(year int, month time.Month) ([]journal.Entry, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)
	return s.scan(
		"SELECT date, content, mood FROM entries WHERE date >= ? AND date < ? ORDER BY date ASC",
		first.Format(journal.DateLayout), next.Format(journal.DateLayout),
	)
}

func (s *Store) scan(query string, args ...interface{}) ([]journal.Entry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listing entries: %v", storage.ErrStorage, err)
	}
	defer rows.Close()

	var entries []journal.Entry
	for rows.Next() {
		var e journal.Entry
		var date time.Time
		var mood string
		if err := rows.Scan(&date, &e.Content, &mood); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %v", storage.ErrStorage, err)
		}
		e.Date = date.Format(journal.DateLayout)
		e.Mood = journal.Mood(mood)
		entries = append(entries, e)
	}

	if entries == nil {
		entries = []journal.Entry{}
	}

	return entries, rows.Err()
}
