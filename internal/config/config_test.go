package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Viewer.Start != ScreenHome {
		t.Errorf("Default viewer.start = %q, want %q", cfg.Viewer.Start, ScreenHome)
	}
	if cfg.Content.Dir != "" {
		t.Errorf("Default content.dir = %q, want empty", cfg.Content.Dir)
	}
}

func TestDefaultPathNotEmpty(t *testing.T) {
	p := DefaultPath()
	if p == "" {
		t.Fatal("DefaultPath() returned empty string")
	}
	if filepath.Base(p) != "config.toml" {
		t.Errorf("DefaultPath() basename = %q, want %q", filepath.Base(p), "config.toml")
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nonexistent.toml"))
	if err != nil {
		t.Fatalf("LoadFrom missing file: %v", err)
	}

	// Should return defaults.
	if cfg.Viewer.Start != ScreenHome {
		t.Errorf("viewer.start = %q, want %q", cfg.Viewer.Start, ScreenHome)
	}
}

func TestLoadFromTOML(t *testing.T) {
	content := `
[content]
dir = "/srv/docs/fathom"

[viewer]
start = "docs"
`
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Content.Dir != "/srv/docs/fathom" {
		t.Errorf("content.dir = %q, want %q", cfg.Content.Dir, "/srv/docs/fathom")
	}
	if cfg.Viewer.Start != ScreenDocs {
		t.Errorf("viewer.start = %q, want %q", cfg.Viewer.Start, ScreenDocs)
	}
}

func TestLoadFromPartialTOML(t *testing.T) {
	// Only content section present; viewer keeps defaults.
	content := `
[content]
dir = "/tmp/docs"
`
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Content.Dir != "/tmp/docs" {
		t.Errorf("content.dir = %q, want %q", cfg.Content.Dir, "/tmp/docs")
	}
	if cfg.Viewer.Start != ScreenHome {
		t.Errorf("viewer.start = %q, want default %q", cfg.Viewer.Start, ScreenHome)
	}
}

func TestLoadFromRejectsBadStartScreen(t *testing.T) {
	content := `
[viewer]
start = "landing"
`
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("Expected error for invalid viewer.start, got nil")
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "config.toml")

	cfg := Default()
	cfg.Content.Dir = "/var/docs"
	cfg.Viewer.Start = ScreenDocs

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	// Verify the directory was created.
	info, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatalf("Stat dir: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("Expected directory to be created")
	}

	// Reload and verify.
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom after save: %v", err)
	}

	if loaded.Content.Dir != "/var/docs" {
		t.Errorf("content.dir = %q, want %q", loaded.Content.Dir, "/var/docs")
	}
	if loaded.Viewer.Start != ScreenDocs {
		t.Errorf("viewer.start = %q, want %q", loaded.Viewer.Start, ScreenDocs)
	}
}

func TestLoadFromInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("{{invalid toml"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("Expected error for invalid TOML, got nil")
	}
}
