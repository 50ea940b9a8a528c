package form

import (
	"github.com/quicklaunch/shortcuts/internal/model"
)

// Group is a toggleable part of the form
type Group int

const (
	GroupCommand Group = iota
	GroupBrowseFile
	GroupScript
	GroupShellKind
	GroupArgs
	GroupWorkingDir
	GroupHidden

	groupCount
)

// Label names the primary field for a type
type Label string

const (
	LabelExecutablePath Label = "Executable Path"
	LabelURL            Label = "URL"
	LabelFilePath       Label = "File Path"
	LabelFolderPath     Label = "Folder Path"
	LabelScriptFilePath Label = "Script File Path"
	LabelScript         Label = "Script"
)

// Layout is the visible state of the form for one type. Layouts are
// comparable with ==.
type Layout struct {
	PrimaryLabel Label
	Placeholder  string

	// BrowseFolder makes the command browse button pick a directory
	BrowseFolder bool

	shown [groupCount]bool
}

// Shows reports whether g is visible
func (l Layout) Shows(g Group) bool {
	if g < 0 || g >= groupCount {
		return false
	}
	return l.shown[g]
}

// ShellKinds are the interpreters offered for Shell shortcuts
var ShellKinds = []string{"cmd", "powershell", "pwsh", "sh", "bash"}

// LayoutFor returns the fixed layout for t
func LayoutFor(t model.ShortcutType) Layout {
	l := Layout{PrimaryLabel: LabelExecutablePath}
	l.shown[GroupCommand] = true
	l.shown[GroupBrowseFile] = true
	l.shown[GroupArgs] = true
	l.shown[GroupWorkingDir] = true
	l.shown[GroupHidden] = true

	switch model.ParseType(string(t)) {
	case model.TypeURL:
		l.PrimaryLabel = LabelURL
		l.Placeholder = "https://example.com"
		l.hide(GroupArgs, GroupWorkingDir, GroupHidden, GroupBrowseFile)
	case model.TypeFile:
		l.PrimaryLabel = LabelFilePath
		l.hide(GroupArgs, GroupWorkingDir, GroupHidden)
	case model.TypeFolder:
		l.PrimaryLabel = LabelFolderPath
		l.BrowseFolder = true
		l.hide(GroupArgs, GroupWorkingDir, GroupHidden)
	case model.TypeScript:
		l.PrimaryLabel = LabelScriptFilePath
		l.Placeholder = `C:\Scripts\myscript.ps1`
	case model.TypeShell:
		l.PrimaryLabel = LabelScript
		l.hide(GroupCommand, GroupBrowseFile, GroupArgs)
		l.shown[GroupScript] = true
		l.shown[GroupShellKind] = true
	}
	return l
}

func (l *Layout) hide(groups ...Group) {
	for _, g := range groups {
		l.shown[g] = false
	}
}

// FileFilter returns the extensions offered by the file picker for t, or
// nil for any file
func FileFilter(t model.ShortcutType) []string {
	switch model.ParseType(string(t)) {
	case model.TypeApp:
		return []string{".exe", ".bat", ".cmd", ".ps1", ".lnk"}
	case model.TypeScript:
		return []string{".bat", ".cmd", ".ps1", ".vbs", ".js", ".sh"}
	default:
		return nil
	}
}
