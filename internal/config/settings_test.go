package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ELEMLIST_CONFIG", "")
	paths := NewPaths(t.TempDir())

	s, err := Load(paths)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.Document != "template.json" {
		t.Errorf("Document = %q, want %q", s.Document, "template.json")
	}
	if s.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want %q", s.Log.Level, "error")
	}
	if !s.Drag.DriftCheck {
		t.Error("Drag.DriftCheck should default to true")
	}
	if s.Output.JSON {
		t.Error("Output.JSON should default to false")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	t.Setenv("ELEMLIST_CONFIG", "")
	paths := NewPaths(t.TempDir())

	content := "document: invoice.yaml\nlog:\n  level: debug\ndrag:\n  drift_check: false\n"
	if err := os.WriteFile(paths.Config, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(paths)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.Document != "invoice.yaml" {
		t.Errorf("Document = %q, want %q", s.Document, "invoice.yaml")
	}
	if s.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", s.Log.Level, "debug")
	}
	if s.Drag.DriftCheck {
		t.Error("Drag.DriftCheck should be false from config file")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ELEMLIST_CONFIG", "")
	t.Setenv("ELEMLIST_DOCUMENT", "from-env.json")
	t.Setenv("ELEMLIST_OUTPUT_JSON", "true")
	paths := NewPaths(t.TempDir())

	s, err := Load(paths)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.Document != "from-env.json" {
		t.Errorf("Document = %q, want %q", s.Document, "from-env.json")
	}
	if !s.Output.JSON {
		t.Error("Output.JSON should be true from env")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Setenv("ELEMLIST_CONFIG", "")
	paths := NewPaths(t.TempDir())

	if err := os.WriteFile(paths.Config, []byte("document: [unterminated\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(paths); err == nil {
		t.Error("Load() expected error for malformed config")
	}
}

func TestLoad_ExplicitConfigPath(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(custom, []byte("document: custom.json\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ELEMLIST_CONFIG", custom)

	s, err := Load(NewPaths(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Document != "custom.json" {
		t.Errorf("Document = %q, want %q", s.Document, "custom.json")
	}
}
