package ui

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"

	"github.com/quicklaunch/shortcuts/internal/config"
	"github.com/quicklaunch/shortcuts/internal/model"
)

// fakeBackend is an in-memory backend.Backend
type fakeBackend struct {
	items       []model.Shortcut
	loadErr     error
	saveErr     error
	autostart   bool
	autoErr     error
	hides       int
	launched    []string
	exported    string
	imported    string
	subscribers int
	listeners   map[int]func()
	nextID      int
}

func newFakeBackend(items ...model.Shortcut) *fakeBackend {
	return &fakeBackend{items: items, listeners: make(map[int]func())}
}

func (f *fakeBackend) GetShortcuts(ctx context.Context) ([]model.Shortcut, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return model.Clone(f.items), nil
}

func (f *fakeBackend) AddShortcut(ctx context.Context, s model.Shortcut) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.items = append(f.items, s)
	return nil
}

func (f *fakeBackend) UpdateShortcut(ctx context.Context, index int, s model.Shortcut) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if index < 0 || index >= len(f.items) {
		return errors.New("index out of bounds")
	}
	f.items[index] = s
	return nil
}

func (f *fakeBackend) DeleteShortcut(ctx context.Context, index int) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if index < 0 || index >= len(f.items) {
		return errors.New("index out of bounds")
	}
	f.items = append(f.items[:index], f.items[index+1:]...)
	return nil
}

func (f *fakeBackend) ReorderShortcut(ctx context.Context, from, to int) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if from < 0 || from >= len(f.items) || to < 0 || to >= len(f.items) {
		return errors.New("index out of bounds")
	}
	f.items = model.Move(f.items, from, to)
	return nil
}

func (f *fakeBackend) LaunchShortcut(ctx context.Context, s model.Shortcut) error {
	f.launched = append(f.launched, s.Name)
	return nil
}

func (f *fakeBackend) GetAutostart(ctx context.Context) (bool, error) {
	return f.autostart, f.autoErr
}

func (f *fakeBackend) SetAutostart(ctx context.Context, enabled bool) error {
	if f.autoErr != nil {
		return f.autoErr
	}
	f.autostart = enabled
	return nil
}

func (f *fakeBackend) HideWindow(ctx context.Context) error {
	f.hides++
	return nil
}

func (f *fakeBackend) ExportConfig(ctx context.Context, path string) error {
	f.exported = path
	return nil
}

func (f *fakeBackend) ImportConfig(ctx context.Context, path string) error {
	f.imported = path
	return nil
}

func (f *fakeBackend) Subscribe(fn func()) func() {
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn
	f.subscribers++
	return func() {
		if _, ok := f.listeners[id]; ok {
			delete(f.listeners, id)
			f.subscribers--
		}
	}
}

func newTestSettings(app fyne.App) *config.Settings {
	return config.NewSettings(app)
}
