package ui

// Package ui contains the Fyne-based desktop user interface: the quick-launch
// popup, the settings editor with drag reordering and the add/edit dialog,
// and the system tray menu. All UI strings are localized via Localization.
