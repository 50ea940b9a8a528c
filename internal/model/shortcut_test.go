package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		input    string
		expected ShortcutType
	}{
		{"app", TypeApp},
		{"URL", TypeURL},
		{" File ", TypeFile},
		{"folder", TypeFolder},
		{"Script", TypeScript},
		{"shell", TypeShell},
		{"", TypeApp},
		{"spaceship", TypeApp},
	}

	for _, test := range tests {
		result := ParseType(test.input)
		if result != test.expected {
			t.Errorf("ParseType(%q) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestShortcut_UnmarshalUnknownType(t *testing.T) {
	var list []Shortcut
	data := `[{"name":"A","type":"teleport","command":"a.exe"},{"name":"B","command":"b.exe"}]`
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if list[0].Type != TypeApp {
		t.Errorf("Expected unknown type to decode as app, got %s", list[0].Type)
	}
	if list[1].Kind() != TypeApp {
		t.Errorf("Expected missing type to resolve to app, got %s", list[1].Kind())
	}
}

func TestShortcut_MarshalOmitsUnsetOptionals(t *testing.T) {
	s := Shortcut{Name: "Deploy", Type: TypeShell, Script: "deploy.ps1", ShellKind: "powershell"}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	encoded := string(data)
	for _, key := range []string{`"command"`, `"args"`, `"working_dir"`, `"description"`} {
		if strings.Contains(encoded, key) {
			t.Errorf("Expected %s to be omitted, got %s", key, encoded)
		}
	}
	if !strings.Contains(encoded, `"shell":"powershell"`) {
		t.Errorf("Expected shell kind on the wire, got %s", encoded)
	}
}

func TestShortcut_EffectiveShellKind(t *testing.T) {
	if kind := (Shortcut{}).EffectiveShellKind(); kind != DefaultShellKind {
		t.Errorf("Expected default shell %s, got %s", DefaultShellKind, kind)
	}
	if kind := (Shortcut{ShellKind: "PowerShell"}).EffectiveShellKind(); kind != "powershell" {
		t.Errorf("Expected lowercased shell kind, got %s", kind)
	}
}

func TestMove(t *testing.T) {
	list := []string{"A", "B", "C"}

	tests := []struct {
		from, to int
		expected string
	}{
		{0, 2, "BCA"},
		{2, 0, "CAB"},
		{1, 1, "ABC"},
		{0, 1, "BAC"},
		{1, 0, "BAC"},
	}

	for _, test := range tests {
		result := strings.Join(Move(list, test.from, test.to), "")
		if result != test.expected {
			t.Errorf("Move(%d, %d) = %s, expected %s", test.from, test.to, result, test.expected)
		}
	}

	if strings.Join(list, "") != "ABC" {
		t.Errorf("Move must not modify its input, got %v", list)
	}
}

func TestAccepts(t *testing.T) {
	tests := []struct {
		typ      ShortcutType
		field    Field
		expected bool
	}{
		{TypeApp, FieldArgs, true},
		{TypeApp, FieldScript, false},
		{TypeURL, FieldWorkingDir, false},
		{TypeURL, FieldHidden, false},
		{TypeFolder, FieldCommand, true},
		{TypeScript, FieldArgs, true},
		{TypeShell, FieldCommand, false},
		{TypeShell, FieldArgs, false},
		{TypeShell, FieldWorkingDir, true},
		{TypeShell, FieldShellKind, true},
		{TypeFile, FieldAdmin, true},
	}

	for _, test := range tests {
		result := test.typ.Accepts(test.field)
		if result != test.expected {
			t.Errorf("%s.Accepts(%s) = %v, expected %v", test.typ, test.field, result, test.expected)
		}
	}
}
