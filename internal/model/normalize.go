package model

import (
	"errors"
	"fmt"
	"strings"
)

// Field names a form field; values match the wire names
type Field string

const (
	FieldName        Field = "name"
	FieldType        Field = "type"
	FieldCommand     Field = "command"
	FieldScript      Field = "script"
	FieldArgs        Field = "args"
	FieldWorkingDir  Field = "working_dir"
	FieldDescription Field = "description"
	FieldShellKind   Field = "shell"
	FieldHidden      Field = "hidden"
	FieldAdmin       Field = "admin"
)

// ErrValidation matches every *ValidationError via errors.Is
var ErrValidation = errors.New("invalid shortcut")

// ValidationError reports a form submission that must not reach the backend
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is makes errors.Is(err, ErrValidation) true for validation failures
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// FormInput is the raw, unioned content of the add/edit form. It may hold
// stale values for fields the selected type does not use.
type FormInput struct {
	Name        string
	Type        ShortcutType
	Command     string
	Script      string
	Args        string
	WorkingDir  string
	Description string
	ShellKind   string
	Hidden      bool
	Admin       bool
}

// FromShortcut fills a form buffer from a stored record
func FromShortcut(s Shortcut) FormInput {
	return FormInput{
		Name:        s.Name,
		Type:        s.Kind(),
		Command:     s.Command,
		Script:      s.Script,
		Args:        s.Args,
		WorkingDir:  s.WorkingDir,
		Description: s.Description,
		ShellKind:   s.ShellKind,
		Hidden:      s.Hidden,
		Admin:       s.Admin,
	}
}

// PrimaryField returns the field a type cannot be saved without
func PrimaryField(t ShortcutType) Field {
	if t == TypeShell {
		return FieldScript
	}
	return FieldCommand
}

// Normalize turns raw form input into a canonical Shortcut. Text is trimmed,
// empty optional text becomes absent, and fields the type does not accept are
// dropped regardless of what the buffer holds.
func Normalize(in FormInput) (Shortcut, error) {
	t := ParseType(string(in.Type))

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Shortcut{}, &ValidationError{Field: FieldName, Message: "name is required"}
	}

	text := func(f Field, v string) string {
		if !t.Accepts(f) {
			return ""
		}
		return strings.TrimSpace(v)
	}

	out := Shortcut{
		Name:        name,
		Type:        t,
		Command:     text(FieldCommand, in.Command),
		Script:      text(FieldScript, in.Script),
		Args:        text(FieldArgs, in.Args),
		WorkingDir:  text(FieldWorkingDir, in.WorkingDir),
		Description: text(FieldDescription, in.Description),
		ShellKind:   text(FieldShellKind, in.ShellKind),
		Admin:       in.Admin,
	}
	if t.Accepts(FieldHidden) {
		out.Hidden = in.Hidden
	}

	switch PrimaryField(t) {
	case FieldScript:
		if out.Script == "" {
			return Shortcut{}, &ValidationError{Field: FieldScript, Message: "script is required"}
		}
	default:
		if out.Command == "" {
			return Shortcut{}, &ValidationError{Field: FieldCommand, Message: "command is required"}
		}
	}

	return out, nil
}
