package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/quicklaunch/shortcuts/internal/drag"
)

var _ drag.View = (*listDragView)(nil)

// listDragView adapts the settings rows to drag.View. Positions are absolute
// canvas coordinates, the same space fyne reports in DragEvent.AbsolutePosition.
type listDragView struct {
	canvas       fyne.Canvas
	localization *Localization
	rows         func() []*ShortcutRow

	proxy  *widget.PopUp
	source *ShortcutRow

	// listening is true between Attach and Detach
	listening   bool
	lastPointer fyne.Position
}

func newListDragView(c fyne.Canvas, localization *Localization, rows func() []*ShortcutRow) *listDragView {
	return &listDragView{canvas: c, localization: localization, rows: rows}
}

func (v *listDragView) row(index int) *ShortcutRow {
	rows := v.rows()
	if index < 0 || index >= len(rows) {
		return nil
	}
	return rows[index]
}

// ItemCount implements drag.View
func (v *listDragView) ItemCount() int {
	return len(v.rows())
}

// ItemBounds implements drag.View
func (v *listDragView) ItemBounds(index int) (fyne.Position, fyne.Size) {
	r := v.row(index)
	if r == nil {
		return fyne.Position{}, fyne.Size{}
	}
	return absolutePosition(r), r.Size()
}

// ShowProxy implements drag.View
func (v *listDragView) ShowProxy(source int, pos fyne.Position) {
	r := v.row(source)
	if r == nil {
		return
	}
	v.source = r
	r.SetDragging(true)

	ghost := NewShortcutRow(source, r.Shortcut(), v.localization)
	tint := canvas.NewRectangle(color.NRGBA{A: 255 - ProxyAlpha})
	v.proxy = widget.NewPopUp(container.NewStack(ghost, tint), v.canvas)
	v.proxy.Resize(r.Size())
	v.proxy.ShowAtPosition(pos)
}

// MoveProxy implements drag.View
func (v *listDragView) MoveProxy(pos fyne.Position) {
	if v.proxy != nil {
		v.proxy.Move(pos)
	}
}

// HideProxy implements drag.View
func (v *listDragView) HideProxy() {
	if v.proxy != nil {
		v.proxy.Hide()
		v.proxy = nil
	}
	if v.source != nil {
		v.source.SetDragging(false)
		v.source = nil
	}
}

// MarkHover implements drag.View
func (v *listDragView) MarkHover(index int, zone drag.Zone) {
	for i, r := range v.rows() {
		if i == index {
			r.SetDropIndicator(zone)
		} else {
			r.ClearDropIndicator()
		}
	}
}

// ClearHover implements drag.View
func (v *listDragView) ClearHover() {
	for _, r := range v.rows() {
		r.ClearDropIndicator()
	}
}

// Attach implements drag.View
func (v *listDragView) Attach() {
	v.listening = true
}

// Detach implements drag.View
func (v *listDragView) Detach() {
	v.listening = false
}

// absolutePosition returns obj's top-left in canvas coordinates
func absolutePosition(obj fyne.CanvasObject) fyne.Position {
	app := fyne.CurrentApp()
	if app == nil || app.Driver() == nil {
		return obj.Position()
	}
	return app.Driver().AbsolutePositionForObject(obj)
}
