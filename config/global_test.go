package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewGlobalConfig_PackagedDefaultsOnly(t *testing.T) {
	// Home with no overlay file: only packaged defaults answer.
	g, err := NewGlobalConfig(WithGlobalHomeDir(t.TempDir()))
	if err != nil {
		t.Fatalf("NewGlobalConfig: %v", err)
	}

	if len(g.User()) != 0 {
		t.Errorf("user overlay = %v, want empty", g.User())
	}

	branch, ok := g.GetString("project__default_branch")
	if !ok || branch != "main" {
		t.Errorf("project__default_branch = %q, %v; want main", branch, ok)
	}
}

func TestNewGlobalConfig_UserOverlayWins(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".confstack")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "project:\n    default_branch: trunk\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFilename), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := NewGlobalConfig(WithGlobalHomeDir(home))
	if err != nil {
		t.Fatalf("NewGlobalConfig: %v", err)
	}

	branch, _ := g.GetString("project__default_branch")
	if branch != "trunk" {
		t.Errorf("project__default_branch = %q, want trunk", branch)
	}

	// Keys the overlay does not touch still answer from packaged defaults.
	pager, _ := g.GetString("cli__pager")
	if pager != "less" {
		t.Errorf("cli__pager = %q, want less", pager)
	}
}

func TestNewGlobalConfig_MalformedOverlay(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".confstack")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFilename), []byte("foo: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewGlobalConfig(WithGlobalHomeDir(home)); err == nil {
		t.Error("expected parse error for malformed overlay")
	}
}

func TestNewGlobalConfig_SourceReporting(t *testing.T) {
	g, err := NewGlobalConfig(WithGlobalHomeDir(t.TempDir()))
	if err != nil {
		t.Fatalf("NewGlobalConfig: %v", err)
	}

	_, source, ok := g.Layered().GetWithSource("cli__color")
	if !ok {
		t.Fatal("expected cli__color from packaged defaults")
	}
	if source != "defaults" {
		t.Errorf("source = %q, want defaults", source)
	}
}

func TestNewGlobalConfig_FreshConstructionIdempotent(t *testing.T) {
	home := t.TempDir()

	first, err := NewGlobalConfig(WithGlobalHomeDir(home))
	if err != nil {
		t.Fatalf("NewGlobalConfig: %v", err)
	}
	second, err := NewGlobalConfig(WithGlobalHomeDir(home))
	if err != nil {
		t.Fatalf("NewGlobalConfig: %v", err)
	}

	for _, key := range []string{"project__default_branch", "cli__color", "cli__pager", "report__provider"} {
		a, aok := first.Get(key)
		b, bok := second.Get(key)
		if aok != bok || a != b {
			t.Errorf("%s differs across constructions: %v/%v vs %v/%v", key, a, aok, b, bok)
		}
	}
}
