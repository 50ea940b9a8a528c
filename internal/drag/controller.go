package drag

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
)

// ErrAlreadyDragging is returned by Begin while a gesture is in progress
var ErrAlreadyDragging = errors.New("drag already in progress")

// State of the controller
type State int

const (
	StateIdle State = iota
	StateDragging
)

// String returns a human-readable state
func (s State) String() string {
	if s == StateDragging {
		return "Dragging"
	}
	return "Idle"
}

// Zone is the half of an item the pointer is over
type Zone int

const (
	ZoneBefore Zone = iota
	ZoneAfter
)

// View is the list being dragged over. All calls happen on the UI goroutine.
type View interface {
	ItemCount() int
	// ItemBounds returns the item's top-left corner and size in the same
	// coordinate space as the pointer positions passed to the controller
	ItemBounds(index int) (fyne.Position, fyne.Size)

	ShowProxy(source int, pos fyne.Position)
	MoveProxy(pos fyne.Position)
	HideProxy()

	MarkHover(index int, zone Zone)
	ClearHover()

	// Attach and Detach bracket the Dragging state; move and release
	// handlers are only live in between
	Attach()
	Detach()
}

// Reorderer applies a move
type Reorderer interface {
	Reorder(ctx context.Context, from, to int) error
}

// Session is the state of one gesture
type Session struct {
	ID     string
	Source int

	origin fyne.Position
	offset fyne.Position

	hovering bool
	hover    int
	zone     Zone
}

// Controller is the Idle/Dragging state machine. It is not safe for
// concurrent use; drive it from the UI goroutine.
type Controller struct {
	view      View
	reorderer Reorderer

	state   State
	session *Session
}

// NewController creates an idle controller
func NewController(view View, reorderer Reorderer) *Controller {
	return &Controller{view: view, reorderer: reorderer}
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// Session returns the current gesture, if any
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Begin starts dragging the item at source; pointer is the press position
func (c *Controller) Begin(source int, pointer fyne.Position) error {
	if c.state == StateDragging {
		return ErrAlreadyDragging
	}
	if source < 0 || source >= c.view.ItemCount() {
		return fmt.Errorf("drag source %d out of range", source)
	}

	pos, _ := c.view.ItemBounds(source)
	c.session = &Session{
		ID:     uuid.NewString(),
		Source: source,
		origin: pos,
		offset: pointer.Subtract(pos),
	}
	c.state = StateDragging

	c.view.ShowProxy(source, pos)
	c.view.Attach()
	return nil
}

// Move follows the pointer and updates the hover marking. No reorder happens
// until End.
func (c *Controller) Move(pointer fyne.Position) {
	if c.state != StateDragging {
		return
	}

	c.view.MoveProxy(fyne.NewPos(c.session.origin.X, pointer.Y-c.session.offset.Y))
	c.updateHover(pointer)
}

// End drops at pointer. The gesture is torn down whatever the outcome.
func (c *Controller) End(ctx context.Context, pointer fyne.Position) error {
	if c.state != StateDragging {
		return nil
	}
	defer c.cleanup()

	c.updateHover(pointer)

	s := c.session
	if !s.hovering {
		return nil
	}

	target := TargetIndex(s.Source, RawTarget(s.hover, s.zone))
	if target == s.Source {
		return nil
	}

	if err := c.reorderer.Reorder(ctx, s.Source, target); err != nil {
		log.Printf("Failed to reorder shortcut %d -> %d (drag %s): %v", s.Source, target, s.ID, err)
		return err
	}
	return nil
}

// Cancel abandons the gesture without reordering
func (c *Controller) Cancel() {
	if c.state != StateDragging {
		return
	}
	c.cleanup()
}

// updateHover hit-tests every item except the source. The first item whose
// vertical bounds contain the pointer wins; an empty hit keeps the last mark.
func (c *Controller) updateHover(pointer fyne.Position) {
	s := c.session
	for i := 0; i < c.view.ItemCount(); i++ {
		if i == s.Source {
			continue
		}

		pos, size := c.view.ItemBounds(i)
		zone, ok := HitTest(pointer.Y, pos.Y, size.Height)
		if !ok {
			continue
		}

		if !s.hovering || s.hover != i || s.zone != zone {
			c.view.ClearHover()
			c.view.MarkHover(i, zone)
		}
		s.hovering = true
		s.hover = i
		s.zone = zone
		return
	}
}

func (c *Controller) cleanup() {
	c.view.HideProxy()
	c.view.ClearHover()
	c.view.Detach()
	c.session = nil
	c.state = StateIdle
}

// HitTest reports whether y lies within [top, top+height] and, if so, which
// half of the item it is in
func HitTest(y, top, height float32) (Zone, bool) {
	if y < top || y > top+height {
		return ZoneBefore, false
	}
	if y < top+height/2 {
		return ZoneBefore, true
	}
	return ZoneAfter, true
}

// RawTarget is the insertion index for a zone of item index
func RawTarget(index int, zone Zone) int {
	if zone == ZoneAfter {
		return index + 1
	}
	return index
}

// TargetIndex converts a raw insertion index into the position the source
// ends up at once it has been removed from the list
func TargetIndex(source, rawTarget int) int {
	if source < rawTarget {
		return rawTarget - 1
	}
	return rawTarget
}
