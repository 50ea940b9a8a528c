package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/quicklaunch/shortcuts/internal/model"
	"github.com/quicklaunch/shortcuts/internal/platform"
)

// Config file location
const (
	ConfigDirName  = "shortcuts"
	ConfigFileName = "config.json"
)

// AppConfig is the persisted document
type AppConfig struct {
	Shortcuts []model.Shortcut `json:"shortcuts" yaml:"shortcuts"`
}

// DefaultConfig returns the shortcuts written on first start
func DefaultConfig() AppConfig {
	return AppConfig{
		Shortcuts: []model.Shortcut{
			{Name: "Notepad", Type: model.TypeApp, Command: "notepad.exe", Description: "Text editor"},
			{Name: "Calculator", Type: model.TypeApp, Command: "calc.exe"},
			{Name: "Google", Type: model.TypeURL, Command: "https://www.google.com", Description: "Search engine"},
			{Name: "Documents", Type: model.TypeFolder, Command: "%USERPROFILE%\\Documents"},
			{
				Name:        "System Info",
				Type:        model.TypeShell,
				Script:      "systeminfo | findstr /B /C:\"OS Name\" /C:\"OS Version\"\npause",
				Description: "Show OS info",
				ShellKind:   "cmd",
			},
		},
	}
}

// DefaultConfigPath returns <user config dir>/shortcuts/config.json
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, ConfigDirName, ConfigFileName)
}

// File reads and writes the config document at a fixed path
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a config file handle; nothing is read until Load
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the file location
func (f *File) Path() string {
	return f.path
}

// Load reads the document. A missing file is created with DefaultConfig.
// A file that exists but does not parse is reported and left untouched.
func (f *File) Load() (AppConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return AppConfig{}, fmt.Errorf("failed to read config: %w", err)
		}
		cfg := DefaultConfig()
		if err := f.writeAtomic(cfg); err != nil {
			log.Printf("Warning: failed to write default config %s: %v", f.path, err)
		}
		return cfg, nil
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("invalid config file %s: %w", f.path, err)
	}
	if cfg.Shortcuts == nil {
		cfg.Shortcuts = []model.Shortcut{}
	}
	return cfg, nil
}

// Save writes the document atomically
func (f *File) Save(cfg AppConfig) error {
	if cfg.Shortcuts == nil {
		cfg.Shortcuts = []model.Shortcut{}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.writeAtomic(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// writeAtomic writes to a temp file then renames it over the path.
// Caller must hold f.mu.
func (f *File) writeAtomic(cfg AppConfig) error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(f.path)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
