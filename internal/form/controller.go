package form

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/quicklaunch/shortcuts/internal/model"
)

// ErrNotOpen is returned when acting on a closed form
var ErrNotOpen = errors.New("form is not open")

// Mode of an open form
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Titles for the modal
const (
	TitleAdd  = "Add Shortcut"
	TitleEdit = "Edit Shortcut"
)

// Picker identifies which native picker produced a path
type Picker int

const (
	PickFile Picker = iota
	PickFolder
)

// Saver is the list store the form writes through
type Saver interface {
	Add(ctx context.Context, s model.Shortcut) error
	Update(ctx context.Context, index int, s model.Shortcut) error
	Delete(ctx context.Context, index int) error
}

// Asker shows a yes/no confirmation and reports the answer asynchronously
type Asker interface {
	Confirm(title, message string, onResult func(confirmed bool))
}

// Controller holds one modal's editing buffer. Drive it from the UI goroutine.
type Controller struct {
	saver Saver

	open   bool
	mode   Mode
	index  int
	input  model.FormInput
	layout Layout
}

// NewController creates a closed form over saver
func NewController(saver Saver) *Controller {
	return &Controller{saver: saver, index: -1}
}

// OpenCreate opens an empty App form
func (c *Controller) OpenCreate() Layout {
	c.open = true
	c.mode = ModeCreate
	c.index = -1
	c.input = model.FormInput{Type: model.TypeApp, ShellKind: model.DefaultShellKind}
	c.layout = LayoutFor(model.TypeApp)
	return c.layout
}

// OpenEdit opens the form bound to index, prefilled from s
func (c *Controller) OpenEdit(index int, s model.Shortcut) Layout {
	c.open = true
	c.mode = ModeEdit
	c.index = index
	c.input = model.FromShortcut(s)
	if c.input.ShellKind == "" {
		c.input.ShellKind = model.DefaultShellKind
	}
	c.layout = LayoutFor(c.input.Type)
	return c.layout
}

// Close discards the buffer
func (c *Controller) Close() {
	c.open = false
	c.index = -1
	c.input = model.FormInput{}
	c.layout = Layout{}
}

// IsOpen reports whether a modal is bound
func (c *Controller) IsOpen() bool { return c.open }

// Mode returns create or edit
func (c *Controller) Mode() Mode { return c.mode }

// Index returns the bound list position, -1 in create mode
func (c *Controller) Index() int { return c.index }

// Input returns the raw buffer, including fields hidden for the current type
func (c *Controller) Input() model.FormInput { return c.input }

// Layout returns the visibility for the current type
func (c *Controller) Layout() Layout { return c.layout }

// Title returns the modal heading
func (c *Controller) Title() string {
	if c.mode == ModeEdit {
		return TitleEdit
	}
	return TitleAdd
}

// CanDelete reports whether the Delete action is offered
func (c *Controller) CanDelete() bool {
	return c.open && c.mode == ModeEdit
}

// SetType switches the type. The buffer is kept as is; only the layout
// changes.
func (c *Controller) SetType(t model.ShortcutType) Layout {
	c.input.Type = model.ParseType(string(t))
	c.layout = LayoutFor(c.input.Type)
	return c.layout
}

// SetText stores a text field value
func (c *Controller) SetText(field model.Field, value string) error {
	switch field {
	case model.FieldName:
		c.input.Name = value
	case model.FieldCommand:
		c.input.Command = value
	case model.FieldScript:
		c.input.Script = value
	case model.FieldArgs:
		c.input.Args = value
	case model.FieldWorkingDir:
		c.input.WorkingDir = value
	case model.FieldDescription:
		c.input.Description = value
	case model.FieldShellKind:
		c.input.ShellKind = value
	default:
		return fmt.Errorf("%s is not a text field", field)
	}
	return nil
}

// SetFlag stores a checkbox value
func (c *Controller) SetFlag(field model.Field, value bool) error {
	switch field {
	case model.FieldHidden:
		c.input.Hidden = value
	case model.FieldAdmin:
		c.input.Admin = value
	default:
		return fmt.Errorf("%s is not a flag", field)
	}
	return nil
}

// ApplyPick writes a picker result into the buffer and returns the field
// it went to. An empty path means the user cancelled.
func (c *Controller) ApplyPick(picker Picker, path string) (model.Field, bool) {
	if !c.open || path == "" {
		return "", false
	}

	if picker == PickFolder && c.input.Type != model.TypeFolder {
		c.input.WorkingDir = path
		return model.FieldWorkingDir, true
	}
	c.input.Command = path
	return model.FieldCommand, true
}

// Submit normalizes the buffer and saves it. Validation and backend errors
// keep the form open with the buffer intact.
func (c *Controller) Submit(ctx context.Context) (model.Shortcut, error) {
	if !c.open {
		return model.Shortcut{}, ErrNotOpen
	}

	s, err := model.Normalize(c.input)
	if err != nil {
		return model.Shortcut{}, err
	}

	if c.mode == ModeEdit {
		err = c.saver.Update(ctx, c.index, s)
	} else {
		err = c.saver.Add(ctx, s)
	}
	if err != nil {
		log.Printf("Failed to save shortcut %q: %v", s.Name, err)
		return model.Shortcut{}, err
	}

	c.Close()
	return s, nil
}

// Delete confirmation text
const (
	ConfirmDeleteTitle   = "Delete Shortcut"
	ConfirmDeleteMessage = "Are you sure you want to delete this shortcut?"
)

// RequestDelete asks for confirmation and deletes the bound entry. onDone
// receives the outcome; a declined confirmation reports (false, nil).
func (c *Controller) RequestDelete(ctx context.Context, asker Asker, onDone func(deleted bool, err error)) {
	if !c.CanDelete() {
		if onDone != nil {
			onDone(false, ErrNotOpen)
		}
		return
	}

	index := c.index
	asker.Confirm(ConfirmDeleteTitle, ConfirmDeleteMessage, func(confirmed bool) {
		if !confirmed {
			if onDone != nil {
				onDone(false, nil)
			}
			return
		}

		err := c.saver.Delete(ctx, index)
		if err != nil {
			log.Printf("Failed to delete shortcut %d: %v", index, err)
		} else {
			c.Close()
		}
		if onDone != nil {
			onDone(err == nil, err)
		}
	})
}
