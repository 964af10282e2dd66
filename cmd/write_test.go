package cmd

import (
	"testing"
	"time"

	"github.com/chris-regnier/echoctl/internal/daily"
	"github.com/chris-regnier/echoctl/internal/journal"
)

func TestWriteCreatesTodayEntry(t *testing.T) {
	setupTestEnv(t)
	writeMood = "happy"
	t.Cleanup(func() { writeMood = "" })

	if err := writeCmd.RunE(writeCmd, []string{"Great", "day", "overall"}); err != nil {
		t.Fatalf("RunE: %v", err)
	}

	e, found, err := daily.GetByDate(store, journal.DateKey(time.Now()))
	if err != nil {
		t.Fatalf("GetByDate: %v", err)
	}
	if !found {
		t.Fatal("expected today's entry to exist")
	}
	if e.Content != "Great day overall" {
		t.Errorf("content = %q, want args joined with spaces", e.Content)
	}
	if e.Mood != journal.MoodHappy {
		t.Errorf("mood = %q, want happy", e.Mood)
	}
}

func TestWriteReplacesExistingEntry(t *testing.T) {
	setupTestEnv(t)

	if _, err := daily.UpsertToday(store, time.Now(), "first draft", journal.MoodSad); err != nil {
		t.Fatalf("UpsertToday: %v", err)
	}

	if err := writeCmd.RunE(writeCmd, []string{"second draft"}); err != nil {
		t.Fatalf("RunE: %v", err)
	}

	e, _, err := daily.GetByDate(store, journal.DateKey(time.Now()))
	if err != nil {
		t.Fatalf("GetByDate: %v", err)
	}
	if e.Content != "second draft" {
		t.Errorf("content = %q, want full replacement", e.Content)
	}
	if e.Mood != journal.MoodNone {
		t.Errorf("mood = %q, want cleared when not passed", e.Mood)
	}
}

func TestWriteRejectsUnknownMood(t *testing.T) {
	setupTestEnv(t)
	writeMood = "ecstatic"
	t.Cleanup(func() { writeMood = "" })

	if err := writeCmd.RunE(writeCmd, []string{"some text"}); err == nil {
		t.Fatal("expected error for unknown mood")
	}
}

func TestWriteRequiresText(t *testing.T) {
	setupTestEnv(t)

	if err := writeCmd.RunE(writeCmd, nil); err == nil {
		t.Fatal("expected error when no text given")
	}
}
