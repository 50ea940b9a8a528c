package backend

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/quicklaunch/shortcuts/internal/config"
	"github.com/quicklaunch/shortcuts/internal/model"
)

var _ Backend = (*Service)(nil)

// ErrIndexOutOfRange is returned for a position outside the current list
var ErrIndexOutOfRange = errors.New("index out of bounds")

// selfWriteWindow hides watcher events caused by our own saves
const selfWriteWindow = time.Second

// Service implements Backend over the local config file
type Service struct {
	mu        sync.Mutex
	file      *config.File
	launcher  Launcher
	autostart Autostart
	bus       *Bus
	hide      func()
	lastSave  time.Time
}

// NewService creates a backend over file. launcher and autostart may be nil,
// in which case those operations fail.
func NewService(file *config.File, launcher Launcher, autostart Autostart) *Service {
	return &Service{
		file:      file,
		launcher:  launcher,
		autostart: autostart,
		bus:       NewBus(),
	}
}

// SetHideFunc sets the function HideWindow calls
func (s *Service) SetHideFunc(hide func()) {
	s.mu.Lock()
	s.hide = hide
	s.mu.Unlock()
}

// ConfigPath returns the backing file location
func (s *Service) ConfigPath() string {
	return s.file.Path()
}

// GetShortcuts returns the full ordered list
func (s *Service) GetShortcuts(ctx context.Context) ([]model.Shortcut, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.file.Load()
	if err != nil {
		return nil, err
	}
	return cfg.Shortcuts, nil
}

// AddShortcut appends sc
func (s *Service) AddShortcut(ctx context.Context, sc model.Shortcut) error {
	return s.mutate(ctx, func(list []model.Shortcut) ([]model.Shortcut, error) {
		return append(list, sc), nil
	})
}

// UpdateShortcut replaces the entry at index
func (s *Service) UpdateShortcut(ctx context.Context, index int, sc model.Shortcut) error {
	return s.mutate(ctx, func(list []model.Shortcut) ([]model.Shortcut, error) {
		if err := checkIndex(index, len(list)); err != nil {
			return nil, err
		}
		list[index] = sc
		return list, nil
	})
}

// DeleteShortcut removes the entry at index
func (s *Service) DeleteShortcut(ctx context.Context, index int) error {
	return s.mutate(ctx, func(list []model.Shortcut) ([]model.Shortcut, error) {
		if err := checkIndex(index, len(list)); err != nil {
			return nil, err
		}
		return slices.Delete(list, index, index+1), nil
	})
}

// ReorderShortcut removes the entry at from and inserts it at to. Both must be
// positions in the current list.
func (s *Service) ReorderShortcut(ctx context.Context, from, to int) error {
	return s.mutate(ctx, func(list []model.Shortcut) ([]model.Shortcut, error) {
		if err := checkIndex(from, len(list)); err != nil {
			return nil, err
		}
		if err := checkIndex(to, len(list)); err != nil {
			return nil, err
		}
		return model.Move(list, from, to), nil
	})
}

// LaunchShortcut starts sc
func (s *Service) LaunchShortcut(ctx context.Context, sc model.Shortcut) error {
	if s.launcher == nil {
		return fmt.Errorf("launching is not available")
	}
	return s.launcher.Launch(ctx, sc)
}

// GetAutostart reports whether launch at login is enabled
func (s *Service) GetAutostart(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if s.autostart == nil {
		return false, nil
	}
	return s.autostart.Enabled()
}

// SetAutostart enables or disables launch at login
func (s *Service) SetAutostart(ctx context.Context, enabled bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.autostart == nil {
		return fmt.Errorf("autostart is not available")
	}
	return s.autostart.SetEnabled(enabled)
}

// HideWindow hides the quick-launch window
func (s *Service) HideWindow(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	hide := s.hide
	s.mu.Unlock()

	if hide != nil {
		hide()
	}
	return nil
}

// ExportConfig writes the current list to path
func (s *Service) ExportConfig(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	cfg, err := s.file.Load()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return config.Export(cfg, path)
}

// ImportConfig replaces the list with the document at path
func (s *Service) ImportConfig(ctx context.Context, path string) error {
	imported, err := config.Import(path)
	if err != nil {
		return err
	}
	return s.mutate(ctx, func([]model.Shortcut) ([]model.Shortcut, error) {
		return imported.Shortcuts, nil
	})
}

// Subscribe registers fn for reload-shortcuts
func (s *Service) Subscribe(fn func()) func() {
	return s.bus.Subscribe(EventReloadShortcuts, fn)
}

// Watch publishes reload-shortcuts when the config file is edited by
// another program, until ctx is done
func (s *Service) Watch(ctx context.Context) error {
	return config.Watch(ctx, s.file.Path(), func() {
		s.mu.Lock()
		recent := time.Since(s.lastSave) < selfWriteWindow
		s.mu.Unlock()
		if recent {
			return
		}

		log.Printf("Config file changed on disk, reloading: %s", s.file.Path())
		s.bus.Publish(EventReloadShortcuts)
	})
}

// mutate loads, applies fn, saves and publishes reload-shortcuts
func (s *Service) mutate(ctx context.Context, fn func([]model.Shortcut) ([]model.Shortcut, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	cfg, err := s.file.Load()
	if err != nil {
		s.mu.Unlock()
		return err
	}

	list, err := fn(cfg.Shortcuts)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	cfg.Shortcuts = list

	if err := s.file.Save(cfg); err != nil {
		s.mu.Unlock()
		return err
	}
	s.lastSave = time.Now()
	s.mu.Unlock()

	s.bus.Publish(EventReloadShortcuts)
	return nil
}

func checkIndex(index, n int) error {
	if index < 0 || index >= n {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, n)
	}
	return nil
}
