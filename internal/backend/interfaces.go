package backend

import (
	"context"

	"github.com/quicklaunch/shortcuts/internal/model"
)

// Shortcuts is the list protocol used by the settings editor.
type Shortcuts interface {
	GetShortcuts(ctx context.Context) ([]model.Shortcut, error)
	AddShortcut(ctx context.Context, s model.Shortcut) error
	UpdateShortcut(ctx context.Context, index int, s model.Shortcut) error
	DeleteShortcut(ctx context.Context, index int) error
	ReorderShortcut(ctx context.Context, from, to int) error
}

// Backend is everything the views may ask of the owning process.
type Backend interface {
	Shortcuts

	LaunchShortcut(ctx context.Context, s model.Shortcut) error

	GetAutostart(ctx context.Context) (bool, error)
	SetAutostart(ctx context.Context, enabled bool) error

	HideWindow(ctx context.Context) error

	// ExportConfig and ImportConfig pick JSON or YAML from the path extension
	ExportConfig(ctx context.Context, path string) error
	ImportConfig(ctx context.Context, path string) error

	// Subscribe registers fn for reload-shortcuts; call the returned func to stop
	Subscribe(fn func()) (unsubscribe func())
}

// Launcher starts a shortcut process.
type Launcher interface {
	Launch(ctx context.Context, s model.Shortcut) error
}

// Autostart reads and writes the launch-at-login entry.
type Autostart interface {
	Enabled() (bool, error)
	SetEnabled(enabled bool) error
}
