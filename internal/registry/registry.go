// Package registry maps shortcut types to their presentation (glyph, gradient,
// label) and derives the one-line subtitle shown under a shortcut's name. Both
// the quick-launch popup and the settings editor render through this table so
// the two views never drift apart.
package registry

import (
	"image/color"
	"net/url"
	"strings"

	"github.com/quicklaunch/shortcuts/internal/model"
)

// Entry is the presentation of one shortcut type
type Entry struct {
	Type      model.ShortcutType
	Glyph     string
	ColorFrom color.NRGBA
	ColorTo   color.NRGBA
	Label     string
}

var entries = map[model.ShortcutType]Entry{
	model.TypeApp: {
		Type:      model.TypeApp,
		Glyph:     "▦",
		ColorFrom: rgb(0x63, 0x66, 0xf1), // indigo
		ColorTo:   rgb(0x8b, 0x5c, 0xf6), // purple
		Label:     "Application",
	},
	model.TypeURL: {
		Type:      model.TypeURL,
		Glyph:     "🌐",
		ColorFrom: rgb(0x0e, 0xa5, 0xe9), // sky
		ColorTo:   rgb(0x06, 0xb6, 0xd4), // cyan
		Label:     "URL",
	},
	model.TypeFile: {
		Type:      model.TypeFile,
		Glyph:     "📄",
		ColorFrom: rgb(0xf5, 0x9e, 0x0b), // amber
		ColorTo:   rgb(0xf9, 0x73, 0x16), // orange
		Label:     "File",
	},
	model.TypeFolder: {
		Type:      model.TypeFolder,
		Glyph:     "📁",
		ColorFrom: rgb(0xea, 0xb3, 0x08),
		ColorTo:   rgb(0xfa, 0xcc, 0x15),
		Label:     "Folder",
	},
	model.TypeScript: {
		Type:      model.TypeScript,
		Glyph:     "📜",
		ColorFrom: rgb(0x22, 0xc5, 0x5e), // green
		ColorTo:   rgb(0x10, 0xb9, 0x81), // emerald
		Label:     "Script",
	},
	model.TypeShell: {
		Type:      model.TypeShell,
		Glyph:     "⌨",
		ColorFrom: rgb(0xa8, 0x55, 0xf7), // purple
		ColorTo:   rgb(0xd9, 0x46, 0xef), // fuchsia
		Label:     "Shell",
	},
}

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Lookup returns the entry for a type token. Matching is case-insensitive and
// anything unrecognized, including the empty token, resolves to the app entry.
func Lookup(token string) Entry {
	return entries[model.ParseType(token)]
}

// For returns the entry for a shortcut
func For(s model.Shortcut) Entry {
	return Lookup(string(s.Type))
}

// Subtitle derives the secondary line for a shortcut. The first non-empty
// candidate wins: description, "<shell> script" for shell shortcuts, the URL
// host for URL shortcuts, the working directory, then the capitalized type.
func Subtitle(s model.Shortcut) string {
	if d := strings.TrimSpace(s.Description); d != "" {
		return d
	}

	kind := s.Kind()
	switch kind {
	case model.TypeShell:
		if shell := strings.TrimSpace(s.ShellKind); shell != "" {
			return shell + " script"
		}
	case model.TypeURL:
		if host := hostOf(s.Command); host != "" {
			return host
		}
	}

	if dir := strings.TrimSpace(s.WorkingDir); dir != "" {
		return dir
	}

	return capitalize(string(kind))
}

// hostOf returns the host of an absolute URL, or the raw string when it does
// not parse as one
func hostOf(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return u.Hostname()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
