package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/quicklaunch/shortcuts/internal/model"
	"github.com/quicklaunch/shortcuts/internal/registry"
)

// Gradient direction for glyph tiles, in degrees
const tileGradientAngle = 135

// newGlyphTile renders a type's glyph on its gradient
func newGlyphTile(entry registry.Entry) fyne.CanvasObject {
	sizer := canvas.NewRectangle(color.Transparent)
	sizer.SetMinSize(fyne.NewSquareSize(GlyphTileSize))

	background := canvas.NewLinearGradient(entry.ColorFrom, entry.ColorTo, tileGradientAngle)

	glyph := canvas.NewText(entry.Glyph, color.White)
	glyph.TextSize = GlyphTextSize
	glyph.Alignment = fyne.TextAlignCenter

	return container.NewStack(sizer, background, container.NewCenter(glyph))
}

// newTitleLine renders the shortcut name with the admin badge when elevated
func newTitleLine(s model.Shortcut, localization *Localization) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(s.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.Truncation = fyne.TextTruncateEllipsis
	if !s.Admin {
		return title
	}

	badge := canvas.NewText(localization.GetText(KeyAdminBadge), theme.Color(theme.ColorNameWarning))
	badge.TextSize = theme.CaptionTextSize()
	badge.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewBorder(nil, nil, nil, container.NewCenter(badge), title)
}

// newSubtitle renders the secondary line, optionally prefixed with the type name
func newSubtitle(text string) *widget.Label {
	label := widget.NewLabel(text)
	label.Truncation = fyne.TextTruncateEllipsis
	label.Importance = widget.LowImportance
	label.SizeName = theme.SizeNameCaptionText
	return label
}

// newEmptyState renders a centered icon, heading and hint
func newEmptyState(icon, heading, hint string) fyne.CanvasObject {
	iconText := canvas.NewText(icon, theme.Color(theme.ColorNameDisabled))
	iconText.TextSize = 32
	iconText.Alignment = fyne.TextAlignCenter

	title := widget.NewLabelWithStyle(heading, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	body := widget.NewLabelWithStyle(hint, fyne.TextAlignCenter, fyne.TextStyle{})
	body.Wrapping = fyne.TextWrapWord
	body.Importance = widget.LowImportance

	return container.NewVBox(iconText, title, body)
}

// launchItem is one tappable row in the quick-launch popup
type launchItem struct {
	widget.BaseWidget

	shortcut model.Shortcut
	content  fyne.CanvasObject
	hover    *canvas.Rectangle
	onTap    func()
}

func newLaunchItem(s model.Shortcut, localization *Localization, onTap func()) *launchItem {
	entry := registry.For(s)
	text := container.NewVBox(newTitleLine(s, localization), newSubtitle(registry.Subtitle(s)))

	item := &launchItem{
		shortcut: s,
		content:  container.NewBorder(nil, nil, container.NewCenter(newGlyphTile(entry)), nil, text),
		hover:    canvas.NewRectangle(color.Transparent),
		onTap:    onTap,
	}
	item.hover.CornerRadius = GlyphCornerRadius
	item.ExtendBaseWidget(item)
	return item
}

// Tapped launches the shortcut
func (li *launchItem) Tapped(*fyne.PointEvent) {
	if li.onTap != nil {
		li.onTap()
	}
}

// MouseIn highlights the row
func (li *launchItem) MouseIn(*desktop.MouseEvent) {
	li.hover.FillColor = theme.Color(theme.ColorNameHover)
	li.hover.Refresh()
}

// MouseMoved is required by desktop.Hoverable
func (li *launchItem) MouseMoved(*desktop.MouseEvent) {}

// MouseOut clears the highlight
func (li *launchItem) MouseOut() {
	li.hover.FillColor = color.Transparent
	li.hover.Refresh()
}

// Cursor shows a pointer over launchable rows
func (li *launchItem) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// CreateRenderer creates the widget renderer
func (li *launchItem) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(li.hover, container.NewPadded(li.content)))
}
