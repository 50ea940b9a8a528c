package ui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/quicklaunch/shortcuts/internal/model"
)

// labelTexts collects the label texts of an empty-state node
func labelTexts(obj fyne.CanvasObject) []string {
	var out []string
	box, ok := obj.(*fyne.Container)
	if !ok {
		return out
	}
	for _, o := range box.Objects {
		if l, ok := o.(*widget.Label); ok {
			out = append(out, l.Text)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestRenderQuickLaunchItems_Empty(t *testing.T) {
	test.NewApp()
	l := NewLocalization()

	for _, list := range [][]model.Shortcut{nil, {}} {
		items := renderQuickLaunchItems(list, nil, l, nil)
		if len(items) != 1 {
			t.Fatalf("Expected exactly one placeholder, got %d items", len(items))
		}
		if texts := labelTexts(items[0]); !contains(texts, l.GetText(KeyNoShortcutsHint)) {
			t.Errorf("Expected empty-state hint, got %v", texts)
		}
	}
}

func TestRenderQuickLaunchItems_LoadError(t *testing.T) {
	test.NewApp()
	l := NewLocalization()

	list := []model.Shortcut{{Name: "Stale", Type: model.TypeApp, Command: "x"}}
	items := renderQuickLaunchItems(list, errors.New("bad json"), l, nil)
	if len(items) != 1 {
		t.Fatalf("Expected exactly one error node, got %d items", len(items))
	}
	if texts := labelTexts(items[0]); !contains(texts, l.GetText(KeyLoadFailed)) {
		t.Errorf("Expected load failure text, got %v", texts)
	}
}

func TestRenderQuickLaunchItems_Launch(t *testing.T) {
	test.NewApp()
	l := NewLocalization()

	list := []model.Shortcut{
		{Name: "Notepad", Type: model.TypeApp, Command: "notepad.exe"},
		{Name: "Google", Type: model.TypeURL, Command: "https://www.google.com"},
		{Name: "Info", Type: model.TypeShell, Script: "systeminfo"},
	}

	var launched []string
	items := renderQuickLaunchItems(list, nil, l, func(s model.Shortcut) {
		launched = append(launched, s.Name)
	})
	if len(items) != len(list) {
		t.Fatalf("Expected %d items, got %d", len(list), len(items))
	}

	test.Tap(items[1].(*launchItem))
	test.Tap(items[2].(*launchItem))

	if len(launched) != 2 || launched[0] != "Google" || launched[1] != "Info" {
		t.Errorf("Expected [Google Info] to launch, got %v", launched)
	}
}

func TestQuickLaunchUI_Render(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	b := newFakeBackend()
	q := NewQuickLaunchUI(w, b, newTestSettings(app), NewLocalization())
	defer q.Close()

	q.render([]model.Shortcut{{Name: "A", Command: "a"}, {Name: "B", Command: "b"}}, nil)
	if len(q.list.Objects) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(q.list.Objects))
	}

	q.render(nil, nil)
	if len(q.list.Objects) != 1 {
		t.Errorf("Expected one placeholder, got %d", len(q.list.Objects))
	}

	if b.subscribers != 1 {
		t.Errorf("Expected popup to subscribe once, got %d", b.subscribers)
	}
	q.Close()
	if b.subscribers != 0 {
		t.Errorf("Expected Close to unsubscribe, got %d", b.subscribers)
	}
}

func TestQuickLaunchUI_EscapeHides(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	b := newFakeBackend()
	q := NewQuickLaunchUI(w, b, newTestSettings(app), NewLocalization())
	defer q.Close()

	w.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyEscape})
	if b.hides != 1 {
		t.Errorf("Expected Escape to hide the popup, got %d hides", b.hides)
	}

	w.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyReturn})
	if b.hides != 1 {
		t.Errorf("Expected other keys to be ignored, got %d hides", b.hides)
	}
}
