package model

import (
	"slices"
	"strings"
)

// ShortcutType identifies how a shortcut is launched
type ShortcutType string

const (
	// TypeApp launches an executable
	TypeApp ShortcutType = "app"

	// TypeURL opens a URL in the default browser
	TypeURL ShortcutType = "url"

	// TypeFile opens a file with its default application
	TypeFile ShortcutType = "file"

	// TypeFolder opens a folder in the file manager
	TypeFolder ShortcutType = "folder"

	// TypeScript runs a script file (ps1, bat, cmd, sh)
	TypeScript ShortcutType = "script"

	// TypeShell runs inline script content through a shell
	TypeShell ShortcutType = "shell"
)

// DefaultShellKind is the interpreter used for shell shortcuts without one
const DefaultShellKind = "cmd"

// AllTypes returns the shortcut types in display order
func AllTypes() []ShortcutType {
	return []ShortcutType{TypeApp, TypeURL, TypeFile, TypeFolder, TypeScript, TypeShell}
}

// ParseType resolves a type token case-insensitively. Missing or unknown
// tokens resolve to TypeApp.
func ParseType(s string) ShortcutType {
	switch ShortcutType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeURL:
		return TypeURL
	case TypeFile:
		return TypeFile
	case TypeFolder:
		return TypeFolder
	case TypeScript:
		return TypeScript
	case TypeShell:
		return TypeShell
	default:
		return TypeApp
	}
}

// String returns the string representation of ShortcutType
func (t ShortcutType) String() string {
	return string(t)
}

// UnmarshalText lets JSON and YAML decoding apply the same fallback as ParseType
func (t *ShortcutType) UnmarshalText(text []byte) error {
	*t = ParseType(string(text))
	return nil
}

// Accepts reports whether a field is submitted for shortcuts of this type.
// Fields a type does not accept are always absent from its records.
func (t ShortcutType) Accepts(f Field) bool {
	switch f {
	case FieldName, FieldType, FieldDescription, FieldAdmin:
		return true
	case FieldCommand:
		return t != TypeShell
	case FieldScript, FieldShellKind:
		return t == TypeShell
	case FieldArgs:
		return t == TypeApp || t == TypeScript
	case FieldWorkingDir, FieldHidden:
		return t == TypeApp || t == TypeScript || t == TypeShell
	default:
		return false
	}
}

// Shortcut is one launchable entry. Optional string fields use the empty
// string as "unset" and are omitted on the wire.
type Shortcut struct {
	Name        string       `json:"name" yaml:"name"`
	Type        ShortcutType `json:"type" yaml:"type"`
	Command     string       `json:"command,omitempty" yaml:"command,omitempty"`
	Script      string       `json:"script,omitempty" yaml:"script,omitempty"`
	Args        string       `json:"args,omitempty" yaml:"args,omitempty"`
	WorkingDir  string       `json:"working_dir,omitempty" yaml:"working_dir,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Hidden      bool         `json:"hidden" yaml:"hidden"`
	ShellKind   string       `json:"shell,omitempty" yaml:"shell,omitempty"`
	Admin       bool         `json:"admin" yaml:"admin"`
}

// Kind returns the effective type, treating a missing type as TypeApp
func (s Shortcut) Kind() ShortcutType {
	return ParseType(string(s.Type))
}

// EffectiveShellKind returns the shell interpreter, defaulting to cmd
func (s Shortcut) EffectiveShellKind() string {
	if strings.TrimSpace(s.ShellKind) == "" {
		return DefaultShellKind
	}
	return strings.ToLower(strings.TrimSpace(s.ShellKind))
}

// Clone returns a copy of the list so callers never share backing arrays
func Clone(list []Shortcut) []Shortcut {
	out := make([]Shortcut, len(list))
	copy(out, list)
	return out
}

// Move removes the element at from and inserts it at to, where to is an
// index into the list after removal. Both indexes must be in range.
func Move[T any](list []T, from, to int) []T {
	out := slices.Clone(list)
	item := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, item)
}
