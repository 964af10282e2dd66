package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/echoctl/internal/journal"
	"github.com/chris-regnier/echoctl/internal/storage/markdown"
)

func newTestModel(t *testing.T) tuiModel {
	t.Helper()
	s, err := markdown.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	now := time.Date(2024, 2, 15, 12, 0, 0, 0, time.Local)
	return newTUIModel(s, presets["default-dark"], now)
}

func TestTUINavigation(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	m = updated.(tuiModel)
	if m.year != 2024 || m.month != time.January {
		t.Errorf("after left: %d-%v, want 2024-January", m.year, m.month)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	m = updated.(tuiModel)
	if m.year != 2024 || m.month != time.February {
		t.Errorf("after right: %d-%v, want 2024-February", m.year, m.month)
	}
}

func TestTUIYearBoundaries(t *testing.T) {
	if y, mo := prevMonth(2024, time.January); y != 2023 || mo != time.December {
		t.Errorf("prevMonth(2024, Jan) = %d-%v", y, mo)
	}
	if y, mo := nextMonth(2024, time.December); y != 2025 || mo != time.January {
		t.Errorf("nextMonth(2024, Dec) = %d-%v", y, mo)
	}
}

func TestTUIDiscardsStaleLoad(t *testing.T) {
	m := newTestModel(t)

	// Navigate twice; the first load's response is now stale.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	m = updated.(tuiModel)
	staleSeq := m.seq
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	m = updated.(tuiModel)

	staleMoods := map[string]journal.Mood{"2024-03-01": journal.MoodSad}
	updated, _ = m.Update(monthLoadedMsg{seq: staleSeq, moods: staleMoods})
	m = updated.(tuiModel)

	if !m.loading {
		t.Error("stale response must not clear the loading state")
	}
	if m.moods != nil {
		t.Errorf("stale response must not overwrite moods, got %v", m.moods)
	}

	// The current response lands normally.
	freshMoods := map[string]journal.Mood{"2024-04-01": journal.MoodHappy}
	updated, _ = m.Update(monthLoadedMsg{seq: m.seq, moods: freshMoods})
	m = updated.(tuiModel)

	if m.loading {
		t.Error("current response should clear the loading state")
	}
	if m.moods["2024-04-01"] != journal.MoodHappy {
		t.Errorf("current response not applied, got %v", m.moods)
	}
}

func TestTUIViewShowsMonthAndHelp(t *testing.T) {
	m := newTestModel(t)
	m.moods = map[string]journal.Mood{"2024-02-14": journal.MoodCheerful}
	m.loading = false

	view := m.View()
	if !strings.Contains(view, "February 2024") {
		t.Error("view missing month header")
	}
	if !strings.Contains(view, "🤩") {
		t.Error("view missing mood marker")
	}
	if !strings.Contains(view, "q quit") {
		t.Error("view missing help footer")
	}
}

func TestTUIQuitKeys(t *testing.T) {
	m := newTestModel(t)
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		var msg tea.KeyMsg
		switch key {
		case "q":
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Errorf("key %s should quit", key)
		}
	}
}
