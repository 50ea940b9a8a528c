package store

import (
	"context"
	"log"
	"sync"

	"github.com/quicklaunch/shortcuts/internal/backend"
	"github.com/quicklaunch/shortcuts/internal/model"
)

// Store caches the backend's shortcut list. The cache is only ever replaced
// by Load; every mutation goes to the backend and is followed by a Load.
// A mutation reports only the backend write: once it succeeds a failed
// reload is logged and the stale cache is kept until the next Load.
type Store struct {
	backend backend.Shortcuts

	mu       sync.RWMutex
	items    []model.Shortcut
	onChange func([]model.Shortcut)
}

// New creates an empty store over b
func New(b backend.Shortcuts) *Store {
	return &Store{backend: b}
}

// SetChangeCallback sets the function called with a copy of the list after
// every successful Load
func (s *Store) SetChangeCallback(callback func([]model.Shortcut)) {
	s.mu.Lock()
	s.onChange = callback
	s.mu.Unlock()
}

// Load replaces the cache with the backend's current list. On error the
// cache is left as it was.
func (s *Store) Load(ctx context.Context) error {
	list, err := s.backend.GetShortcuts(ctx)
	if err != nil {
		log.Printf("Failed to load shortcuts: %v", err)
		return err
	}

	s.mu.Lock()
	s.items = model.Clone(list)
	callback := s.onChange
	s.mu.Unlock()

	if callback != nil {
		callback(model.Clone(list))
	}
	return nil
}

// Shortcuts returns a copy of the cached list
func (s *Store) Shortcuts() []model.Shortcut {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.Clone(s.items)
}

// Len returns the cached list length
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// At returns the cached entry at index
func (s *Store) At(index int) (model.Shortcut, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.items) {
		return model.Shortcut{}, false
	}
	return s.items[index], true
}

// Add appends sc through the backend, then reloads
func (s *Store) Add(ctx context.Context, sc model.Shortcut) error {
	if err := s.backend.AddShortcut(ctx, sc); err != nil {
		return err
	}
	_ = s.Load(ctx)
	return nil
}

// Update replaces the entry at index through the backend, then reloads
func (s *Store) Update(ctx context.Context, index int, sc model.Shortcut) error {
	if err := s.backend.UpdateShortcut(ctx, index, sc); err != nil {
		return err
	}
	_ = s.Load(ctx)
	return nil
}

// Delete removes the entry at index through the backend, then reloads
func (s *Store) Delete(ctx context.Context, index int) error {
	if err := s.backend.DeleteShortcut(ctx, index); err != nil {
		return err
	}
	_ = s.Load(ctx)
	return nil
}

// Reorder moves the entry at from to to through the backend, then reloads
func (s *Store) Reorder(ctx context.Context, from, to int) error {
	if err := s.backend.ReorderShortcut(ctx, from, to); err != nil {
		return err
	}
	_ = s.Load(ctx)
	return nil
}
