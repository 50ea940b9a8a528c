package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/quicklaunch/shortcuts/internal/drag"
	"github.com/quicklaunch/shortcuts/internal/model"
	"github.com/quicklaunch/shortcuts/internal/registry"
)

// ShortcutRow is one editable entry in the settings list
type ShortcutRow struct {
	widget.BaseWidget

	index        int
	shortcut     model.Shortcut
	localization *Localization

	// UI components
	handle     *dragHandle
	editBtn    *widget.Button
	deleteBtn  *widget.Button
	topLine    *canvas.Rectangle
	bottomLine *canvas.Rectangle
	dimmed     bool

	// Callbacks
	onEdit   func(index int)
	onDelete func(index int)
}

// NewShortcutRow creates a row for the shortcut at index
func NewShortcutRow(index int, s model.Shortcut, localization *Localization) *ShortcutRow {
	sr := &ShortcutRow{
		index:        index,
		shortcut:     s,
		localization: localization,
	}
	sr.ExtendBaseWidget(sr)
	sr.createUI()
	return sr
}

// SetCallbacks sets the action callbacks
func (sr *ShortcutRow) SetCallbacks(onEdit, onDelete func(index int)) {
	sr.onEdit = onEdit
	sr.onDelete = onDelete
}

// SetDragCallbacks routes the handle's drag events
func (sr *ShortcutRow) SetDragCallbacks(onDrag func(index int, ev *fyne.DragEvent), onDragEnd func(index int)) {
	sr.handle.onDrag = onDrag
	sr.handle.onDragEnd = onDragEnd
}

// Index returns the row's list position
func (sr *ShortcutRow) Index() int {
	return sr.index
}

// Shortcut returns the row's record
func (sr *ShortcutRow) Shortcut() model.Shortcut {
	return sr.shortcut
}

// SetDropIndicator shows the insertion line on the given side
func (sr *ShortcutRow) SetDropIndicator(zone drag.Zone) {
	if zone == drag.ZoneBefore {
		sr.topLine.Show()
		sr.bottomLine.Hide()
	} else {
		sr.topLine.Hide()
		sr.bottomLine.Show()
	}
}

// ClearDropIndicator hides both insertion lines
func (sr *ShortcutRow) ClearDropIndicator() {
	sr.topLine.Hide()
	sr.bottomLine.Hide()
}

// SetDragging dims the row while it is the drag source
func (sr *ShortcutRow) SetDragging(dragging bool) {
	sr.dimmed = dragging
	sr.Refresh()
}

func (sr *ShortcutRow) createUI() {
	sr.handle = newDragHandle(sr.index)

	sr.editBtn = widget.NewButton(IconEdit, func() {
		if sr.onEdit != nil {
			sr.onEdit(sr.index)
		}
	})
	sr.editBtn.Importance = widget.LowImportance

	sr.deleteBtn = widget.NewButton(IconDelete, func() {
		if sr.onDelete != nil {
			sr.onDelete(sr.index)
		}
	})
	sr.deleteBtn.Importance = widget.DangerImportance

	accent := theme.Color(theme.ColorNamePrimary)
	sr.topLine = canvas.NewRectangle(accent)
	sr.topLine.SetMinSize(fyne.NewSize(0, HoverLineThickness))
	sr.topLine.Hide()
	sr.bottomLine = canvas.NewRectangle(accent)
	sr.bottomLine.SetMinSize(fyne.NewSize(0, HoverLineThickness))
	sr.bottomLine.Hide()
}

// typeLine is "<Type> · <subtitle>"
func (sr *ShortcutRow) typeLine() string {
	entry := registry.For(sr.shortcut)
	typeName := sr.localization.GetText(TypeKey(entry.Type))
	return typeName + MiddleDotSeparator + registry.Subtitle(sr.shortcut)
}

// CreateRenderer creates the widget renderer
func (sr *ShortcutRow) CreateRenderer() fyne.WidgetRenderer {
	return &shortcutRowRenderer{row: sr}
}

// shortcutRowRenderer renders the shortcut row widget
type shortcutRowRenderer struct {
	row    *ShortcutRow
	layout *fyne.Container
	shade  *canvas.Rectangle
}

// Layout arranges the components
func (r *shortcutRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Resize(size)
	r.shade.Resize(size)
}

// MinSize returns the minimum size
func (r *shortcutRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	minSize := r.layout.MinSize()
	return fyne.NewSize(fyne.Max(minSize.Width, RowMinWidth), fyne.Max(minSize.Height, RowMinHeight))
}

// Refresh refreshes the renderer
func (r *shortcutRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	if r.row.dimmed {
		r.shade.FillColor = theme.Color(theme.ColorNameDisabledButton)
		r.shade.Show()
	} else {
		r.shade.Hide()
	}
	r.shade.Refresh()
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *shortcutRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout, r.shade}
}

// Destroy cleans up the renderer
func (r *shortcutRowRenderer) Destroy() {}

// createLayout builds handle | tile | text | actions, framed by the drop lines
func (r *shortcutRowRenderer) createLayout() {
	sr := r.row

	left := container.NewHBox(sr.handle, container.NewCenter(newGlyphTile(registry.For(sr.shortcut))))
	text := container.NewVBox(newTitleLine(sr.shortcut, sr.localization), newSubtitle(sr.typeLine()))
	actions := container.NewHBox(sr.editBtn, sr.deleteBtn)

	main := container.NewBorder(nil, nil, left, container.NewCenter(actions), text)

	r.layout = container.NewBorder(sr.topLine, container.NewVBox(sr.bottomLine, widget.NewSeparator()), nil, nil, main)
	r.shade = canvas.NewRectangle(color.Transparent)
	r.shade.Hide()
}

// dragHandle is the grip that starts a reorder gesture
type dragHandle struct {
	widget.BaseWidget

	index     int
	onDrag    func(index int, ev *fyne.DragEvent)
	onDragEnd func(index int)
}

func newDragHandle(index int) *dragHandle {
	h := &dragHandle{index: index}
	h.ExtendBaseWidget(h)
	return h
}

// Dragged implements fyne.Draggable
func (h *dragHandle) Dragged(ev *fyne.DragEvent) {
	if h.onDrag != nil {
		h.onDrag(h.index, ev)
	}
}

// DragEnd implements fyne.Draggable
func (h *dragHandle) DragEnd() {
	if h.onDragEnd != nil {
		h.onDragEnd(h.index)
	}
}

// Cursor implements desktop.Cursorable
func (h *dragHandle) Cursor() desktop.Cursor {
	return desktop.VResizeCursor
}

// CreateRenderer creates the widget renderer
func (h *dragHandle) CreateRenderer() fyne.WidgetRenderer {
	grip := canvas.NewText(IconDragHandle, theme.Color(theme.ColorNamePlaceHolder))
	grip.Alignment = fyne.TextAlignCenter
	grip.TextStyle = fyne.TextStyle{Bold: true}

	sizer := canvas.NewRectangle(color.Transparent)
	sizer.SetMinSize(fyne.NewSize(HandleWidth, RowMinHeight))

	return widget.NewSimpleRenderer(container.NewStack(sizer, container.NewCenter(grip)))
}
