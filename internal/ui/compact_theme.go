package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme is the launcher's theme: the registry's indigo as primary
// color and spacing sized around the shortcut row
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 16, G: 185, B: 129, A: 255} // Emerald for confirmations
	case theme.ColorNameError:
		return color.RGBA{R: 220, G: 38, B: 38, A: 255} // Red for delete and errors
	case theme.ColorNameWarning:
		return color.RGBA{R: 245, G: 158, B: 11, A: 255} // Amber for the admin badge
	case theme.ColorNamePrimary:
		return color.RGBA{R: 99, G: 102, B: 241, A: 255} // Indigo, matches the App tile
	case theme.ColorNameHover:
		return color.RGBA{R: 99, G: 102, B: 241, A: 40}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 24, B: 27, A: 255} // Zinc 900
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255} // Dark text
	}

	return theme.DefaultTheme().Color(name, variant)
}

func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes tuned for the shortcut rows: captions carry the
// subtitle line, and input and selection corners follow the glyph tile.
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return RowSpacing
	case theme.SizeNameInnerPadding:
		return RowSpacing * 2
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return ThemeTextSize
	case theme.SizeNameCaptionText:
		return SubtitleTextSize
	case theme.SizeNameHeadingText, theme.SizeNameSubHeadingText:
		return ThemeTextSize + 3
	case theme.SizeNameInlineIcon:
		return GlyphTextSize
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return GlyphCornerRadius - 2
	case theme.SizeNameScrollBar:
		return 8 // rows keep their full width under the scrollbar
	case theme.SizeNameScrollBarSmall:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
