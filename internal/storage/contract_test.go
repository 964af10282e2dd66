package storage_test

import (
	"errors"
	"testing"
	"time"

	"github.com/chris-regnier/echoctl/internal/journal"
	"github.com/chris-regnier/echoctl/internal/storage"
	"github.com/chris-regnier/echoctl/internal/storage/markdown"
	"github.com/chris-regnier/echoctl/internal/storage/sqlite"
)

type storageFactory func(t *testing.T) storage.Storage

func markdownFactory(t *testing.T) storage.Storage {
	t.Helper()
	dir := t.TempDir()
	s, err := markdown.New(dir)
	if err != nil {
		t.Fatalf("creating markdown storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sqliteFactory(t *testing.T) storage.Storage {
	t.Helper()
	dir := t.TempDir()
	s, err := sqlite.New(dir)
	if err != nil {
		t.Fatalf("creating sqlite storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func runContractTests(t *testing.T, name string, factory storageFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Put and Get", func(t *testing.T) {
			s := factory(t)
			e := journal.Entry{Date: "2024-03-15", Content: "Hello journal", Mood: journal.MoodHappy}
			if err := s.Put(e); err != nil {
				t.Fatalf("Put: %v", err)
			}

			got, err := s.Get("2024-03-15")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got != e {
				t.Errorf("Get = %+v, want %+v", got, e)
			}
		})

		t.Run("Put replaces same date", func(t *testing.T) {
			s := factory(t)
			if err := s.Put(journal.Entry{Date: "2024-03-15", Content: "first", Mood: journal.MoodSad}); err != nil {
				t.Fatalf("Put: %v", err)
			}
			if err := s.Put(journal.Entry{Date: "2024-03-15", Content: "second"}); err != nil {
				t.Fatalf("Put: %v", err)
			}

			got, err := s.Get("2024-03-15")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.Content != "second" {
				t.Errorf("content = %q, want replacement", got.Content)
			}
			if got.Mood != journal.MoodNone {
				t.Errorf("mood = %q, want cleared", got.Mood)
			}

			all, err := s.List()
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(all) != 1 {
				t.Errorf("expected one entry per day, got %d", len(all))
			}
		})

		t.Run("Get missing date", func(t *testing.T) {
			s := factory(t)
			_, err := s.Get("2024-03-15")
			if !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})

		t.Run("Put rejects invalid entries", func(t *testing.T) {
			s := factory(t)
			bad := []journal.Entry{
				{Date: "2024-02-30", Content: "x"},
				{Date: "not-a-date", Content: "x"},
				{Date: "2024-03-15", Content: "x", Mood: journal.Mood("meh")},
			}
			for _, e := range bad {
				if err := s.Put(e); !errors.Is(err, storage.ErrValidation) {
					t.Errorf("Put(%+v): expected ErrValidation, got %v", e, err)
				}
			}
		})

		t.Run("Put accepts empty content", func(t *testing.T) {
			s := factory(t)
			if err := s.Put(journal.Entry{Date: "2024-03-15", Mood: journal.MoodNormal}); err != nil {
				t.Fatalf("Put with empty content: %v", err)
			}
			got, err := s.Get("2024-03-15")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.Content != "" || got.Mood != journal.MoodNormal {
				t.Errorf("got %+v, want empty content with mood", got)
			}
		})

		t.Run("List sorted ascending", func(t *testing.T) {
			s := factory(t)
			dates := []string{"2024-03-15", "2024-01-02", "2024-02-29", "2023-12-31"}
			for _, d := range dates {
				if err := s.Put(journal.Entry{Date: d, Content: "x"}); err != nil {
					t.Fatalf("Put(%s): %v", d, err)
				}
			}

			all, err := s.List()
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			want := []string{"2023-12-31", "2024-01-02", "2024-02-29", "2024-03-15"}
			if len(all) != len(want) {
				t.Fatalf("got %d entries, want %d", len(all), len(want))
			}
			for i, d := range want {
				if all[i].Date != d {
					t.Errorf("entry %d date = %s, want %s", i, all[i].Date, d)
				}
			}
		})

		t.Run("List empty store", func(t *testing.T) {
			s := factory(t)
			all, err := s.List()
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(all) != 0 {
				t.Errorf("expected no entries, got %d", len(all))
			}
		})

		t.Run("ListMonth filters by month", func(t *testing.T) {
			s := factory(t)
			dates := []string{"2024-01-31", "2024-02-01", "2024-02-14", "2024-02-29", "2024-03-01"}
			for _, d := range dates {
				if err := s.Put(journal.Entry{Date: d, Content: "x"}); err != nil {
					t.Fatalf("Put(%s): %v", d, err)
				}
			}

			feb, err := s.ListMonth(2024, time.February)
			if err != nil {
				t.Fatalf("ListMonth: %v", err)
			}
			want := []string{"2024-02-01", "2024-02-14", "2024-02-29"}
			if len(feb) != len(want) {
				t.Fatalf("got %d entries, want %d", len(feb), len(want))
			}
			for i, d := range want {
				if feb[i].Date != d {
					t.Errorf("entry %d date = %s, want %s", i, feb[i].Date, d)
				}
			}
		})

		t.Run("Whitespace-edged content round trip", func(t *testing.T) {
			s := factory(t)
			// Leading and trailing whitespace belongs to the entry;
			// backends must not normalize it away.
			content := "\n  indented first line\n\ntrailing blank line\n\n"
			if err := s.Put(journal.Entry{Date: "2024-03-15", Content: content}); err != nil {
				t.Fatalf("Put: %v", err)
			}
			got, err := s.Get("2024-03-15")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.Content != content {
				t.Errorf("content normalized in round trip:\n%q\nwant:\n%q", got.Content, content)
			}
		})

		t.Run("Multiline content round trip", func(t *testing.T) {
			s := factory(t)
			content := "# Heading\n\nA paragraph with *markdown*.\n\n- list item\n- another"
			if err := s.Put(journal.Entry{Date: "2024-03-15", Content: content}); err != nil {
				t.Fatalf("Put: %v", err)
			}
			got, err := s.Get("2024-03-15")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.Content != content {
				t.Errorf("content changed in round trip:\n%q\nwant:\n%q", got.Content, content)
			}
		})
	})
}

func TestStorageContract(t *testing.T) {
	runContractTests(t, "markdown", markdownFactory)
	runContractTests(t, "sqlite", sqliteFactory)
}
