// Package search implements case-insensitive literal substring search
// over entry content, with match spans for highlighting. Query text is
// never compiled into a pattern, so metacharacters have no effect.
package search

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chris-regnier/echoctl/internal/journal"
	"github.com/chris-regnier/echoctl/internal/storage"
)

// Span marks one occurrence of the query inside entry content as a
// half-open byte range [Start, End).
type Span struct {
	Start int
	End   int
}

// Result pairs a matching entry with the positions of every
// occurrence of the query in its content.
type Result struct {
	Entry journal.Entry
	Spans []Span
}

// Search scans all stored entries for the trimmed query and returns
// matches in chronological order. An empty query returns no results
// without touching storage.
func Search(store storage.Storage, query string) ([]Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	entries, err := store.List()
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	var results []Result
	for _, e := range entries {
		spans := Spans(e.Content, query)
		if len(spans) == 0 {
			continue
		}
		results = append(results, Result{Entry: e, Spans: spans})
	}
	return results, nil
}

// Spans returns every case-insensitive occurrence of query in content,
// left to right, non-overlapping. Offsets are computed on the original
// string with a rune-by-rune case fold, never on a lowercased copy:
// lowercase mappings can change byte length, and spans must always lie
// on rune boundaries of content.
func Spans(content, query string) []Span {
	if query == "" {
		return nil
	}

	var spans []Span
	for i := 0; i < len(content); {
		if n, ok := foldMatch(content[i:], query); ok {
			spans = append(spans, Span{Start: i, End: i + n})
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(content[i:])
		i += size
	}
	return spans
}

// foldMatch reports whether s begins with a case-insensitive match of
// query, and the matched length in bytes of s.
func foldMatch(s, query string) (int, bool) {
	n := 0
	for _, qr := range query {
		if n >= len(s) {
			return 0, false
		}
		cr, size := utf8.DecodeRuneInString(s[n:])
		if cr != qr && !foldEqual(cr, qr) {
			return 0, false
		}
		n += size
	}
	return n, true
}

// foldEqual reports whether two runes are equal under simple Unicode
// case folding.
func foldEqual(a, b rune) bool {
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// Highlight wraps every occurrence of query in content with the pre
// and post markers, preserving the original casing of the matched text
// and leaving everything else untouched.
func Highlight(content, query, pre, post string) string {
	spans := Spans(content, query)
	if len(spans) == 0 {
		return content
	}

	var b strings.Builder
	last := 0
	for _, sp := range spans {
		b.WriteString(content[last:sp.Start])
		b.WriteString(pre)
		b.WriteString(content[sp.Start:sp.End])
		b.WriteString(post)
		last = sp.End
	}
	b.WriteString(content[last:])
	return b.String()
}
