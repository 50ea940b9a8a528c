package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quicklaunch/shortcuts/internal/model"
)

// Format is an export/import encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the encoding from the file extension; JSON unless the
// path ends in .yaml or .yml
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode serializes a document in the given format
func Encode(cfg AppConfig, format Format) ([]byte, error) {
	if cfg.Shortcuts == nil {
		cfg.Shortcuts = []model.Shortcut{}
	}
	switch format {
	case FormatYAML:
		return yaml.Marshal(cfg)
	default:
		return json.MarshalIndent(cfg, "", "  ")
	}
}

// Decode parses a document in the given format
func Decode(data []byte, format Format) (AppConfig, error) {
	var cfg AppConfig
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return AppConfig{}, err
	}
	if cfg.Shortcuts == nil {
		cfg.Shortcuts = []model.Shortcut{}
	}
	return cfg, nil
}

// Export writes cfg to path, encoded by the path's extension
func Export(cfg AppConfig, path string) error {
	data, err := Encode(cfg, FormatForPath(path))
	if err != nil {
		return fmt.Errorf("failed to export config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to export config: %w", err)
	}
	return nil
}

// Import reads a document from path, decoded by the path's extension
func Import(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("failed to read file: %w", err)
	}
	cfg, err := Decode(data, FormatForPath(path))
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid config file: %w", err)
	}
	return cfg, nil
}
