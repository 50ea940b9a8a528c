package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyConfigPath      = "config_path"
	KeyLanguage        = "app_language"
	KeyPopupWidth      = "popup_width"
	KeyPopupHeight     = "popup_height"
	KeyHideAfterLaunch = "hide_after_launch"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultPopupWidth      = 300
	DefaultPopupHeight     = 400
	DefaultHideAfterLaunch = true

	MinPopupSize = 200
	MaxPopupSize = 1200
)

// Settings manages user preferences that are not part of the shortcut list
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetConfigPath returns the shortcut config file path. An empty preference
// resolves to the per-user default location.
func (s *Settings) GetConfigPath() string {
	path := s.app.Preferences().String(KeyConfigPath)
	if path == "" {
		return DefaultConfigPath()
	}
	return path
}

// SetConfigPath overrides the shortcut config file path
func (s *Settings) SetConfigPath(path string) {
	s.app.Preferences().SetString(KeyConfigPath, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetPopupSize returns the quick-launch popup size
func (s *Settings) GetPopupSize() fyne.Size {
	w := s.app.Preferences().Int(KeyPopupWidth)
	h := s.app.Preferences().Int(KeyPopupHeight)
	if w <= 0 || h <= 0 {
		s.SetPopupSize(DefaultPopupWidth, DefaultPopupHeight)
		return fyne.NewSize(DefaultPopupWidth, DefaultPopupHeight)
	}
	return fyne.NewSize(float32(w), float32(h))
}

// SetPopupSize sets the quick-launch popup size, clamped to a usable range
func (s *Settings) SetPopupSize(width, height int) {
	s.app.Preferences().SetInt(KeyPopupWidth, clamp(width, MinPopupSize, MaxPopupSize))
	s.app.Preferences().SetInt(KeyPopupHeight, clamp(height, MinPopupSize, MaxPopupSize))
}

// GetHideAfterLaunch returns whether the popup hides after launching a shortcut
func (s *Settings) GetHideAfterLaunch() bool {
	return s.app.Preferences().BoolWithFallback(KeyHideAfterLaunch, DefaultHideAfterLaunch)
}

// SetHideAfterLaunch sets whether the popup hides after launching a shortcut
func (s *Settings) SetHideAfterLaunch(hide bool) {
	s.app.Preferences().SetBool(KeyHideAfterLaunch, hide)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
