package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "shortcuts.png"
)

// LoadLogoResource loads the tray and window icon from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// appIcon returns the app icon, or a theme icon when the file is missing
func appIcon() fyne.Resource {
	if res, err := LoadLogoResource(); err == nil {
		return res
	}
	return theme.GridIcon()
}
