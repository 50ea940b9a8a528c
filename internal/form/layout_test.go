package form

import (
	"testing"

	"github.com/quicklaunch/shortcuts/internal/model"
)

func TestLayoutFor_Table(t *testing.T) {
	tests := []struct {
		typ    model.ShortcutType
		label  Label
		hidden []Group
	}{
		{model.TypeApp, LabelExecutablePath, []Group{GroupScript, GroupShellKind}},
		{model.TypeURL, LabelURL, []Group{GroupArgs, GroupWorkingDir, GroupHidden, GroupBrowseFile, GroupScript, GroupShellKind}},
		{model.TypeFile, LabelFilePath, []Group{GroupArgs, GroupWorkingDir, GroupHidden, GroupScript, GroupShellKind}},
		{model.TypeFolder, LabelFolderPath, []Group{GroupArgs, GroupWorkingDir, GroupHidden, GroupScript, GroupShellKind}},
		{model.TypeScript, LabelScriptFilePath, []Group{GroupScript, GroupShellKind}},
		{model.TypeShell, LabelScript, []Group{GroupCommand, GroupBrowseFile, GroupArgs}},
	}

	for _, tt := range tests {
		l := LayoutFor(tt.typ)
		if l.PrimaryLabel != tt.label {
			t.Errorf("%s: expected label %q, got %q", tt.typ, tt.label, l.PrimaryLabel)
		}

		hidden := map[Group]bool{}
		for _, g := range tt.hidden {
			hidden[g] = true
		}
		for g := Group(0); g < groupCount; g++ {
			if l.Shows(g) == hidden[g] {
				t.Errorf("%s: group %d expected shown=%v", tt.typ, g, !hidden[g])
			}
		}
	}
}

// The layout must show exactly the fields normalization keeps
func TestLayoutFor_MatchesAccepts(t *testing.T) {
	pairs := map[Group]model.Field{
		GroupCommand:    model.FieldCommand,
		GroupScript:     model.FieldScript,
		GroupShellKind:  model.FieldShellKind,
		GroupArgs:       model.FieldArgs,
		GroupWorkingDir: model.FieldWorkingDir,
		GroupHidden:     model.FieldHidden,
	}

	for _, typ := range model.AllTypes() {
		l := LayoutFor(typ)
		for g, f := range pairs {
			if l.Shows(g) != typ.Accepts(f) {
				t.Errorf("%s: group for %s shown=%v but accepted=%v", typ, f, l.Shows(g), typ.Accepts(f))
			}
		}
	}
}

func TestLayoutFor_UnknownIsApp(t *testing.T) {
	if LayoutFor("bogus") != LayoutFor(model.TypeApp) {
		t.Error("Expected unknown type to use the App layout")
	}
	if LayoutFor("SHELL") != LayoutFor(model.TypeShell) {
		t.Error("Expected type lookup to be case-insensitive")
	}
}

func TestLayout_ShowsOutOfRange(t *testing.T) {
	l := LayoutFor(model.TypeApp)
	if l.Shows(-1) || l.Shows(groupCount) {
		t.Error("Expected out-of-range groups to be hidden")
	}
}

func TestFileFilter(t *testing.T) {
	if f := FileFilter(model.TypeApp); len(f) == 0 || f[0] != ".exe" {
		t.Errorf("Expected executable filter for App, got %v", f)
	}
	if f := FileFilter(model.TypeFile); f != nil {
		t.Errorf("Expected no filter for File, got %v", f)
	}
}
