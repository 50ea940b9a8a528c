package drag

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"testing"

	"fyne.io/fyne/v2"

	"github.com/quicklaunch/shortcuts/internal/model"
)

const rowHeight float32 = 40

// fakeView lays rows out top to bottom, rowHeight apart
type fakeView struct {
	count    int
	attached bool
	proxy    bool
	proxyPos fyne.Position
	hovers   map[int]Zone
	detaches int
}

func newFakeView(count int) *fakeView {
	return &fakeView{count: count, hovers: map[int]Zone{}}
}

func (v *fakeView) ItemCount() int { return v.count }

func (v *fakeView) ItemBounds(i int) (fyne.Position, fyne.Size) {
	return fyne.NewPos(0, float32(i)*rowHeight), fyne.NewSize(300, rowHeight)
}

func (v *fakeView) ShowProxy(_ int, pos fyne.Position) { v.proxy, v.proxyPos = true, pos }
func (v *fakeView) MoveProxy(pos fyne.Position)        { v.proxyPos = pos }
func (v *fakeView) HideProxy()                         { v.proxy = false }
func (v *fakeView) MarkHover(i int, z Zone)            { v.hovers[i] = z }
func (v *fakeView) ClearHover()                        { v.hovers = map[int]Zone{} }
func (v *fakeView) Attach()                            { v.attached = true }
func (v *fakeView) Detach()                            { v.attached = false; v.detaches++ }

// listReorderer applies moves to a slice and records them
type listReorderer struct {
	items []string
	calls [][2]int
	err   error
}

func (r *listReorderer) Reorder(_ context.Context, from, to int) error {
	r.calls = append(r.calls, [2]int{from, to})
	if r.err != nil {
		return r.err
	}
	r.items = model.Move(r.items, from, to)
	return nil
}

// pointerFor returns a pointer position inside the given zone of row i
func pointerFor(i int, zone Zone) fyne.Position {
	y := float32(i)*rowHeight + rowHeight/4
	if zone == ZoneAfter {
		y = float32(i)*rowHeight + 3*rowHeight/4
	}
	return fyne.NewPos(20, y)
}

func TestController_DropAfterLast(t *testing.T) {
	view := newFakeView(3)
	r := &listReorderer{items: []string{"A", "B", "C"}}
	c := NewController(view, r)

	if err := c.Begin(0, fyne.NewPos(10, 10)); err != nil {
		t.Fatalf("Begin returned error: %v", err)
	}
	if c.State() != StateDragging || !view.attached || !view.proxy {
		t.Fatalf("Expected dragging with proxy and listeners, got state %s", c.State())
	}

	c.Move(pointerFor(1, ZoneAfter))
	c.Move(pointerFor(2, ZoneAfter))
	if z, ok := view.hovers[2]; !ok || z != ZoneAfter || len(view.hovers) != 1 {
		t.Errorf("Expected only row 2 marked after, got %v", view.hovers)
	}

	if err := c.End(context.Background(), pointerFor(2, ZoneAfter)); err != nil {
		t.Fatalf("End returned error: %v", err)
	}

	if len(r.calls) != 1 || r.calls[0] != [2]int{0, 2} {
		t.Errorf("Expected reorder(0,2), got %v", r.calls)
	}
	if !slices.Equal(r.items, []string{"B", "C", "A"}) {
		t.Errorf("Expected [B C A], got %v", r.items)
	}
	assertCleanedUp(t, c, view)
}

func TestController_DropOnOwnSlot(t *testing.T) {
	tests := []struct {
		name    string
		source  int
		pointer fyne.Position
	}{
		{"never left source", 1, pointerFor(1, ZoneAfter)},
		{"after previous item", 1, pointerFor(0, ZoneAfter)},
		{"before next item", 1, pointerFor(2, ZoneBefore)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := newFakeView(3)
			r := &listReorderer{items: []string{"A", "B", "C"}}
			c := NewController(view, r)

			c.Begin(tt.source, pointerFor(tt.source, ZoneBefore))
			c.Move(tt.pointer)
			if err := c.End(context.Background(), tt.pointer); err != nil {
				t.Fatalf("End returned error: %v", err)
			}

			if len(r.calls) != 0 {
				t.Errorf("Expected no reorder call, got %v", r.calls)
			}
			if !slices.Equal(r.items, []string{"A", "B", "C"}) {
				t.Errorf("Expected unchanged order, got %v", r.items)
			}
			assertCleanedUp(t, c, view)
		})
	}
}

func TestController_BeginTwice(t *testing.T) {
	c := NewController(newFakeView(2), &listReorderer{})

	c.Begin(0, fyne.NewPos(0, 0))
	if err := c.Begin(1, fyne.NewPos(0, 50)); !errors.Is(err, ErrAlreadyDragging) {
		t.Errorf("Expected ErrAlreadyDragging, got %v", err)
	}
	if s, _ := c.Session(); s.Source != 0 {
		t.Errorf("Expected original session to remain, got source %d", s.Source)
	}
}

func TestController_BeginOutOfRange(t *testing.T) {
	c := NewController(newFakeView(2), &listReorderer{})

	if err := c.Begin(2, fyne.NewPos(0, 0)); err == nil {
		t.Error("Expected error for out-of-range source")
	}
	if c.State() != StateIdle {
		t.Errorf("Expected Idle, got %s", c.State())
	}
}

func TestController_ReorderFailureStillCleansUp(t *testing.T) {
	view := newFakeView(3)
	r := &listReorderer{items: []string{"A", "B", "C"}, err: errors.New("disk full")}
	c := NewController(view, r)

	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	c.Begin(2, pointerFor(2, ZoneBefore))
	session, _ := c.Session()
	if err := c.End(context.Background(), pointerFor(0, ZoneBefore)); !errors.Is(err, r.err) {
		t.Errorf("Expected reorder error, got %v", err)
	}
	if session.ID == "" || !strings.Contains(logs.String(), session.ID) {
		t.Errorf("Expected log to name drag %q, got %q", session.ID, logs.String())
	}
	assertCleanedUp(t, c, view)
}

func TestController_ProxyTranslatesVertically(t *testing.T) {
	view := newFakeView(3)
	c := NewController(view, &listReorderer{})

	// grab row 1 five pixels below its top
	c.Begin(1, fyne.NewPos(30, rowHeight+5))
	if view.proxyPos != fyne.NewPos(0, rowHeight) {
		t.Errorf("Expected proxy at row origin, got %v", view.proxyPos)
	}

	c.Move(fyne.NewPos(200, 105))
	if view.proxyPos != fyne.NewPos(0, 100) {
		t.Errorf("Expected proxy at (0,100), got %v", view.proxyPos)
	}
}

func TestController_IdleEventsIgnored(t *testing.T) {
	view := newFakeView(2)
	r := &listReorderer{}
	c := NewController(view, r)

	c.Move(fyne.NewPos(0, 10))
	if err := c.End(context.Background(), fyne.NewPos(0, 10)); err != nil {
		t.Errorf("Expected nil from End while idle, got %v", err)
	}
	c.Cancel()
	if view.detaches != 0 || len(r.calls) != 0 {
		t.Error("Idle controller should not touch the view or reorder")
	}
}

func TestController_Cancel(t *testing.T) {
	view := newFakeView(3)
	r := &listReorderer{items: []string{"A", "B", "C"}}
	c := NewController(view, r)

	c.Begin(0, pointerFor(0, ZoneBefore))
	c.Move(pointerFor(2, ZoneAfter))
	c.Cancel()

	if len(r.calls) != 0 {
		t.Errorf("Expected no reorder on cancel, got %v", r.calls)
	}
	assertCleanedUp(t, c, view)
}

func TestHitTest(t *testing.T) {
	tests := []struct {
		y      float32
		zone   Zone
		inside bool
	}{
		{39.9, ZoneBefore, false},
		{40, ZoneBefore, true},
		{59.9, ZoneBefore, true},
		{60, ZoneAfter, true},
		{80, ZoneAfter, true},
		{80.1, ZoneBefore, false},
	}

	for _, tt := range tests {
		zone, inside := HitTest(tt.y, 40, 40)
		if inside != tt.inside || (inside && zone != tt.zone) {
			t.Errorf("HitTest(%v): expected (%v,%v), got (%v,%v)", tt.y, tt.zone, tt.inside, zone, inside)
		}
	}
}

// For every source and raw insertion point, dropping there must equal
// removing the source and reinserting it at the adjusted target.
func TestController_AllDropPositions(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for source := 0; source < n; source++ {
			for raw := 0; raw <= n; raw++ {
				t.Run(fmt.Sprintf("n=%d/source=%d/raw=%d", n, source, raw), func(t *testing.T) {
					items := make([]string, n)
					for i := range items {
						items[i] = string(rune('A' + i))
					}

					pointer, reachable := pointerForRaw(source, raw, n)
					view := newFakeView(n)
					r := &listReorderer{items: slices.Clone(items)}
					c := NewController(view, r)

					c.Begin(source, pointerFor(source, ZoneBefore))
					c.Move(pointer)
					if err := c.End(context.Background(), pointer); err != nil {
						t.Fatalf("End returned error: %v", err)
					}

					want := items
					if reachable {
						want = referenceMove(items, source, raw)
					}
					if !slices.Equal(r.items, want) {
						t.Errorf("Expected %v, got %v", want, r.items)
					}
					if slices.Equal(want, items) && len(r.calls) != 0 {
						t.Errorf("Expected no reorder call for no-op drop, got %v", r.calls)
					}
				})
			}
		}
	}
}

// pointerForRaw finds a pointer position whose zone on a non-source item
// yields raw. Raw positions touching only the source are unreachable.
func pointerForRaw(source, raw, n int) (fyne.Position, bool) {
	if raw < n && raw != source {
		return pointerFor(raw, ZoneBefore), true
	}
	if raw > 0 && raw-1 != source {
		return pointerFor(raw-1, ZoneAfter), true
	}
	return pointerFor(source, ZoneBefore), false
}

// referenceMove removes source and inserts it at the adjusted raw target
func referenceMove(items []string, source, raw int) []string {
	out := slices.Clone(items)
	item := out[source]
	out = slices.Delete(out, source, source+1)
	return slices.Insert(out, TargetIndex(source, raw), item)
}

func TestTargetIndex(t *testing.T) {
	tests := []struct{ source, raw, want int }{
		{0, 3, 2},
		{0, 1, 0},
		{2, 0, 0},
		{1, 1, 1},
		{1, 2, 1},
	}
	for _, tt := range tests {
		if got := TargetIndex(tt.source, tt.raw); got != tt.want {
			t.Errorf("TargetIndex(%d,%d): expected %d, got %d", tt.source, tt.raw, tt.want, got)
		}
	}
}

func assertCleanedUp(t *testing.T, c *Controller, view *fakeView) {
	t.Helper()
	if c.State() != StateIdle {
		t.Errorf("Expected Idle after gesture, got %s", c.State())
	}
	if _, ok := c.Session(); ok {
		t.Error("Expected session to be cleared")
	}
	if view.proxy || view.attached || len(view.hovers) != 0 {
		t.Errorf("Expected proxy hidden, listeners detached and hovers cleared; proxy=%v attached=%v hovers=%v",
			view.proxy, view.attached, view.hovers)
	}
}
