package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings   = "⚙"
	IconDragHandle = "⋮⋮"
	IconEdit       = "✎"
	IconDelete     = "🗑"
	IconEmpty      = "📭"
	IconError      = "⚠"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Layout sizing (shortcut rows / tiles)
const (
	GlyphTileSize     float32 = 36
	GlyphTextSize     float32 = 18
	GlyphCornerRadius float32 = 8

	RowMinWidth  float32 = 360
	RowMinHeight float32 = 52

	HandleWidth float32 = 24

	// Drag proxy is slightly translucent so the hovered row stays readable
	ProxyAlpha uint8 = 200

	HoverLineThickness float32 = 2

	// Theme text sizes; the subtitle renders as caption text
	ThemeTextSize    float32 = 13
	SubtitleTextSize float32 = 11

	// Vertical gap between rows, also the theme padding
	RowSpacing float32 = 4
)

// Window sizing
const (
	SettingsWindowWidth  float32 = 560
	SettingsWindowHeight float32 = 620

	ShortcutDialogWidth  float32 = 480
	ShortcutDialogHeight float32 = 560

	PreferencesDialogWidth  float32 = 500
	PreferencesDialogHeight float32 = 400
)

// Delays
const (
	// Toast notifications on the settings window
	ToastAutoHide = 3 * time.Second
)
