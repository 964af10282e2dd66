package editor

import (
	"testing"
)

func TestResolveConfig(t *testing.T) {
	if got := Resolve("nano"); got != "nano" {
		t.Errorf("expected nano, got %q", got)
	}
}

func TestResolveEnvEditor(t *testing.T) {
	t.Setenv("EDITOR", "vim")
	t.Setenv("VISUAL", "code")
	if got := Resolve(""); got != "vim" {
		t.Errorf("expected vim (from EDITOR), got %q", got)
	}
}

func TestResolveEnvVisual(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "code")
	if got := Resolve(""); got != "code" {
		t.Errorf("expected code (from VISUAL), got %q", got)
	}
}

func TestResolveFallback(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")
	if got := Resolve(""); got != "vi" {
		t.Errorf("expected vi (fallback), got %q", got)
	}
}

func TestEditWithTrueCommand(t *testing.T) {
	// 'true' exits successfully without modifying the file
	content, changed, err := Edit("true", "original content")
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if changed {
		t.Error("expected changed=false for unchanged content")
	}
	if content != "original content" {
		t.Errorf("content = %q, want %q", content, "original content")
	}
}

func TestEditEmptyCommand(t *testing.T) {
	if _, _, err := Edit("", "content"); err == nil {
		t.Error("expected error for empty editor command")
	}
}
