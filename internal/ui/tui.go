package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/echoctl/internal/calendar"
	"github.com/chris-regnier/echoctl/internal/journal"
	"github.com/chris-regnier/echoctl/internal/storage"
)

// TUIConfig configures the month browser.
type TUIConfig struct {
	Theme Theme
}

// monthLoadedMsg carries an asynchronously loaded month mood map.
// seq identifies which navigation request produced it.
type monthLoadedMsg struct {
	seq   int
	year  int
	month time.Month
	moods map[string]journal.Mood
	err   error
}

type tuiModel struct {
	store storage.Storage
	theme Theme

	year  int
	month time.Month
	today string

	moods   map[string]journal.Mood
	loading bool
	err     error

	// seq is the sequence number of the latest issued month load.
	// Responses carrying an older seq lost the race to a newer
	// navigation and are discarded instead of overwriting the view.
	seq int
}

func newTUIModel(store storage.Storage, theme Theme, now time.Time) tuiModel {
	return tuiModel{
		store:   store,
		theme:   theme,
		year:    now.Year(),
		month:   now.Month(),
		today:   journal.DateKey(now),
		loading: true,
		seq:     1,
	}
}

func (m tuiModel) Init() tea.Cmd {
	return loadCmd(m.store, m.seq, m.year, m.month)
}

func loadCmd(store storage.Storage, seq int, year int, month time.Month) tea.Cmd {
	return func() tea.Msg {
		moods, err := calendar.MonthMoods(store, year, month)
		return monthLoadedMsg{seq: seq, year: year, month: month, moods: moods, err: err}
	}
}

// loadMonth issues an async load for the currently displayed month,
// tagged with a fresh sequence number.
func (m tuiModel) loadMonth() (tuiModel, tea.Cmd) {
	m.seq++
	m.loading = true
	return m, loadCmd(m.store, m.seq, m.year, m.month)
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.year, m.month = prevMonth(m.year, m.month)
			return m.loadMonth()
		case "right", "l":
			m.year, m.month = nextMonth(m.year, m.month)
			return m.loadMonth()
		case "t":
			now := time.Now()
			m.year, m.month = now.Year(), now.Month()
			return m.loadMonth()
		}

	case monthLoadedMsg:
		if msg.seq != m.seq {
			// Stale response from an abandoned navigation.
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		m.moods = msg.moods
		return m, nil
	}

	return m, nil
}

func (m tuiModel) View() string {
	var b strings.Builder

	FormatCalendar(&b, m.year, m.month, m.moods, m.today)

	if m.err != nil {
		b.WriteString("\n" + m.theme.HelpStyle().Render("error: "+m.err.Error()) + "\n")
	} else if m.loading {
		b.WriteString("\n" + m.theme.HelpStyle().Render("loading…") + "\n")
	}

	b.WriteString("\n" + m.theme.HelpStyle().Render("←/→ month • t today • q quit") + "\n")
	return b.String()
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return t.Year(), t.Month()
}

// RunTUI launches the interactive month browser.
func RunTUI(store storage.Storage, cfg TUIConfig) error {
	model := newTUIModel(store, cfg.Theme, time.Now())
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
