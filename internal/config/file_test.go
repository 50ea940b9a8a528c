package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quicklaunch/shortcuts/internal/model"
)

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if filepath.Base(path) != ConfigFileName {
		t.Errorf("Expected file name %s, got %s", ConfigFileName, filepath.Base(path))
	}
	if filepath.Base(filepath.Dir(path)) != ConfigDirName {
		t.Errorf("Expected parent dir %s, got %s", ConfigDirName, filepath.Dir(path))
	}
}

func TestFileLoad_MissingWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	f := NewFile(path)

	cfg, err := f.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	defaults := DefaultConfig()
	if len(cfg.Shortcuts) != len(defaults.Shortcuts) {
		t.Fatalf("Expected %d default shortcuts, got %d", len(defaults.Shortcuts), len(cfg.Shortcuts))
	}
	if cfg.Shortcuts[0].Name != "Notepad" {
		t.Errorf("Expected first default to be Notepad, got %s", cfg.Shortcuts[0].Name)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Expected defaults to be written to %s: %v", path, err)
	}
}

func TestFileSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	f := NewFile(path)

	want := AppConfig{Shortcuts: []model.Shortcut{
		{Name: "Terminal", Type: model.TypeApp, Command: "wt.exe", Admin: true},
		{Name: "Cleanup", Type: model.TypeShell, Script: "del /q %TEMP%\\*", ShellKind: "cmd", Hidden: true},
	}}
	if err := f.Save(want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(got.Shortcuts) != 2 {
		t.Fatalf("Expected 2 shortcuts, got %d", len(got.Shortcuts))
	}
	if got.Shortcuts[0] != want.Shortcuts[0] || got.Shortcuts[1] != want.Shortcuts[1] {
		t.Errorf("Expected %+v, got %+v", want.Shortcuts, got.Shortcuts)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("Temp file should not remain after save")
	}
}

func TestFileSave_OmitsEmptyOptionals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	f := NewFile(path)

	cfg := AppConfig{Shortcuts: []model.Shortcut{{Name: "Google", Type: model.TypeURL, Command: "https://google.com"}}}
	if err := f.Save(cfg); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	for _, key := range []string{`"args"`, `"working_dir"`, `"script"`, `"shell"`, `"description"`} {
		if strings.Contains(string(data), key) {
			t.Errorf("Expected %s to be omitted, got %s", key, data)
		}
	}
}

func TestFileLoad_InvalidIsNotOverwritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFile(path).Load(); err == nil {
		t.Fatal("Expected error for invalid config file")
	}

	data, _ := os.ReadFile(path)
	if string(data) != "{not json" {
		t.Errorf("Invalid config should be left untouched, got %q", data)
	}
}

func TestFileLoad_UnknownTypeIsApp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	doc := `{"shortcuts":[{"name":"X","type":"teleport","command":"x.exe"},{"name":"Y","command":"y.exe"}]}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFile(path).Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	for _, s := range cfg.Shortcuts {
		if s.Kind() != model.TypeApp {
			t.Errorf("Expected %s to load as app, got %s", s.Name, s.Kind())
		}
	}
}
