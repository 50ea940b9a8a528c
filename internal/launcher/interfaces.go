package launcher

import (
	"context"

	"github.com/quicklaunch/shortcuts/internal/model"
)

// Launcher defines the interface for starting shortcuts.
type Launcher interface {
	Launch(ctx context.Context, s model.Shortcut) error
}
