package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/chris-regnier/echoctl/internal/journal"
	"github.com/chris-regnier/echoctl/internal/storage"
)

// Store implements storage.Storage using Markdown files with YAML
// front-matter, one file per calendar day named YYYY-MM-DD.md.
type Store struct {
	baseDir string // e.g. ~/.echoctl/entries/
}

// New creates a new Markdown file storage backend.
func New(dataDir string) (*Store, error) {
	entriesDir := filepath.Join(dataDir, "entries")
	if err := os.MkdirAll(entriesDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating entries directory: %v", storage.ErrStorage, err)
	}
	return &Store{baseDir: entriesDir}, nil
}

// Close is a no-op for the Markdown backend.
func (s *Store) Close() error {
	return nil
}

func (s *Store) entryPath(date string) string {
	return filepath.Join(s.baseDir, date+".md")
}

func (s *Store) marshal(e journal.Entry) []byte {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "date: %s\n", e.Date)
	if e.Mood != journal.MoodNone {
		fmt.Fprintf(&b, "mood: %s\n", e.Mood)
	}
	b.WriteString("---\n\n")
	b.WriteString(e.Content)
	return []byte(b.String())
}

type frontMatter struct {
	Date string `yaml:"date"`
	Mood string `yaml:"mood"`
}

func (s *Store) unmarshal(data []byte) (journal.Entry, error) {
	var fm frontMatter
	content, err := frontmatter.Parse(strings.NewReader(string(data)), &fm)
	if err != nil {
		return journal.Entry{}, fmt.Errorf("%w: parsing front-matter: %v", storage.ErrStorage, err)
	}

	mood, err := journal.ParseMood(fm.Mood)
	if err != nil {
		return journal.Entry{}, fmt.Errorf("%w: %v", storage.ErrStorage, err)
	}

	// marshal puts one blank line between the front-matter and the
	// body; strip exactly that, leaving the entry's own whitespace
	// intact so both backends round-trip content identically.
	body := strings.TrimPrefix(string(content), "\n")

	return journal.Entry{
		Date:    fm.Date,
		Content: body,
		Mood:    mood,
	}, nil
}

// atomicWrite writes data to a temp file then renames it to the target path.
func (s *Store) atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating directory: %v", storage.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", storage.ErrStorage, err)
	}
	tmpName := tmp.Name()

	// Lock the temp file during write
	if err := syscall.Flock(int(tmp.Fd()), syscall.LOCK_EX); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: acquiring lock: %v", storage.ErrStorage, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing temp file: %v", storage.ErrStorage, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", storage.ErrStorage, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming file: %v", storage.ErrStorage, err)
	}

	return nil
}

// Put inserts or fully replaces the entry for its date.
func (s *Store) Put(e journal.Entry) error {
	if err := journal.ValidateEntry(e); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}
	return s.atomicWrite(s.entryPath(e.Date), s.marshal(e))
}

// Get retrieves the entry for a date key.
func (s *Store) Get(date string) (journal.Entry, error) {
	data, err := os.ReadFile(s.entryPath(date))
	if err != nil {
		if os.IsNotExist(err) {
			return journal.Entry{}, storage.ErrNotFound
		}
		return journal.Entry{}, fmt.Errorf("%w: reading file: %v", storage.ErrStorage, err)
	}
	return s.unmarshal(data)
}

// List returns all entries in ascending date order.
func (s *Store) List() ([]journal.Entry, error) {
	return s.listPrefix("")
}

// ListMonth returns the month's entries in ascending date order.
func (s *Store) ListMonth(year int, month time.Month) ([]journal.Entry, error) {
	prefix := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
	return s.listPrefix(prefix + "-")
}

func (s *Store) listPrefix(prefix string) ([]journal.Entry, error) {
	names, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: scanning entries: %v", storage.ErrStorage, err)
	}

	entries := []journal.Entry{}
	for _, d := range names {
		name := d.Name()
		if d.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: reading file: %v", storage.ErrStorage, err)
		}
		e, err := s.unmarshal(data)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	// ReadDir sorts by filename and date keys sort lexicographically,
	// so entries are already in ascending date order.
	return entries, nil
}
