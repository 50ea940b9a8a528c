package ui

import (
	"context"
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/quicklaunch/shortcuts/internal/model"
)

func newTestSettingsUI(t *testing.T, b *fakeBackend) *SettingsUI {
	t.Helper()
	app := test.NewApp()
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	s := NewSettingsUI(w, b, newTestSettings(app), NewLocalization())
	t.Cleanup(s.Close)
	return s
}

func TestSettingsUIRendersRows(t *testing.T) {
	b := newFakeBackend(
		model.Shortcut{Name: "A", Command: "a"},
		model.Shortcut{Name: "B", Command: "b"},
	)
	s := newTestSettingsUI(t, b)
	s.reload()

	if len(s.rows) != 2 || len(s.listBox.Objects) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(s.rows))
	}
	for i, r := range s.rows {
		if r.Index() != i {
			t.Errorf("Expected row %d to carry its index, got %d", i, r.Index())
		}
	}

	b.items = nil
	s.reload()
	if len(s.rows) != 0 || len(s.listBox.Objects) != 1 {
		t.Errorf("Expected a single placeholder, got %d objects", len(s.listBox.Objects))
	}
}

func TestSettingsUIEmptyListShowsOnePlaceholder(t *testing.T) {
	s := newTestSettingsUI(t, newFakeBackend())
	s.reload()

	if len(s.rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(s.rows))
	}
	if len(s.listBox.Objects) != 1 {
		t.Fatalf("Expected exactly 1 node, got %d", len(s.listBox.Objects))
	}
	if _, ok := s.listBox.Objects[0].(*ShortcutRow); ok {
		t.Error("Expected the empty state, got a shortcut row")
	}

	texts := labelTexts(s.listBox.Objects[0])
	hint := s.localization.GetText(KeyEmptyListHint)
	if !contains(texts, hint) {
		t.Errorf("Expected hint %q in %v", hint, texts)
	}
}

func TestSettingsUILoadFailureKeepsRows(t *testing.T) {
	b := newFakeBackend(model.Shortcut{Name: "A", Command: "a"})
	s := newTestSettingsUI(t, b)
	s.reload()

	b.loadErr = errors.New("invalid config")
	s.reload()

	if len(s.rows) != 1 {
		t.Errorf("Expected last good list kept, got %d rows", len(s.rows))
	}
}

func TestSettingsUIReorderThroughStore(t *testing.T) {
	b := newFakeBackend(
		model.Shortcut{Name: "A", Command: "a"},
		model.Shortcut{Name: "B", Command: "b"},
		model.Shortcut{Name: "C", Command: "c"},
	)
	s := newTestSettingsUI(t, b)
	s.reload()

	if err := s.store.Reorder(context.Background(), 0, 2); err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}

	var names []string
	for _, r := range s.rows {
		names = append(names, r.Shortcut().Name)
	}
	if len(names) != 3 || names[0] != "B" || names[1] != "C" || names[2] != "A" {
		t.Errorf("Expected [B C A], got %v", names)
	}
}

func TestSettingsUIAutostartRevertsOnFailure(t *testing.T) {
	b := newFakeBackend()
	s := newTestSettingsUI(t, b)
	s.refreshAutostart()

	s.autostartCheck.SetChecked(true)
	if !b.autostart {
		t.Error("Expected autostart enabled")
	}

	b.autoErr = errors.New("access denied")
	s.autostartCheck.SetChecked(false)
	if !s.autostartCheck.Checked {
		t.Error("Expected checkbox reverted after a failed toggle")
	}
	if !b.autostart {
		t.Error("Expected backend state unchanged")
	}
}
