package registry

import (
	"testing"

	"github.com/quicklaunch/shortcuts/internal/model"
)

func TestLookup_CaseInsensitive(t *testing.T) {
	tests := []struct {
		token    string
		expected model.ShortcutType
	}{
		{"url", model.TypeURL},
		{"URL", model.TypeURL},
		{"Shell", model.TypeShell},
		{"FOLDER", model.TypeFolder},
	}

	for _, test := range tests {
		entry := Lookup(test.token)
		if entry.Type != test.expected {
			t.Errorf("Lookup(%q).Type = %s, expected %s", test.token, entry.Type, test.expected)
		}
	}
}

func TestLookup_FallsBackToApp(t *testing.T) {
	app := Lookup("app")
	for _, token := range []string{"", "unknown", "exe"} {
		entry := Lookup(token)
		if entry != app {
			t.Errorf("Lookup(%q) = %+v, expected app entry %+v", token, entry, app)
		}
	}

	if For(model.Shortcut{Name: "No type"}) != app {
		t.Error("Shortcut without type should render as app")
	}
}

func TestEveryTypeHasEntry(t *testing.T) {
	for _, typ := range model.AllTypes() {
		entry, ok := entries[typ]
		if !ok {
			t.Errorf("No registry entry for %s", typ)
			continue
		}
		if entry.Glyph == "" || entry.Label == "" {
			t.Errorf("Incomplete entry for %s: %+v", typ, entry)
		}
		if entry.ColorFrom.A == 0 || entry.ColorTo.A == 0 {
			t.Errorf("Entry for %s has transparent gradient", typ)
		}
	}
}

func TestSubtitle(t *testing.T) {
	tests := []struct {
		name     string
		shortcut model.Shortcut
		expected string
	}{
		{
			"description wins",
			model.Shortcut{Type: model.TypeURL, Command: "https://example.com", Description: "Search engine"},
			"Search engine",
		},
		{
			"url host",
			model.Shortcut{Type: model.TypeURL, Command: "https://example.com/path"},
			"example.com",
		},
		{
			"url host without port",
			model.Shortcut{Type: model.TypeURL, Command: "http://localhost:8080/"},
			"localhost",
		},
		{
			"unparseable url falls back to command",
			model.Shortcut{Type: model.TypeURL, Command: "example.com"},
			"example.com",
		},
		{
			"shell kind",
			model.Shortcut{Type: model.TypeShell, Script: "dir", ShellKind: "powershell"},
			"powershell script",
		},
		{
			"shell without kind uses working dir",
			model.Shortcut{Type: model.TypeShell, Script: "dir", WorkingDir: "C:\\src"},
			"C:\\src",
		},
		{
			"working dir",
			model.Shortcut{Type: model.TypeApp, Command: "code", WorkingDir: "/home/me"},
			"/home/me",
		},
		{
			"capitalized type",
			model.Shortcut{Type: model.TypeFolder, Command: "/tmp"},
			"Folder",
		},
		{
			"missing type",
			model.Shortcut{Command: "calc.exe"},
			"App",
		},
	}

	for _, test := range tests {
		result := Subtitle(test.shortcut)
		if result != test.expected {
			t.Errorf("%s: Subtitle() = %q, expected %q", test.name, result, test.expected)
		}
	}
}
