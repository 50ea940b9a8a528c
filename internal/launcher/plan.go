package launcher

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/quicklaunch/shortcuts/internal/model"
	"github.com/quicklaunch/shortcuts/internal/platform"
)

// Interpreter and shell constants
const (
	PowerShellCommand = "powershell"
	PwshCommand       = "pwsh"
	CmdCommand        = "cmd"
	ShCommand         = "sh"
	BashCommand       = "bash"

	ExecutionPolicyFlag = "-ExecutionPolicy"
	ExecutionPolicy     = "Bypass"
	FileFlag            = "-File"
	CommandFlag         = "-Command"
	NoProfileFlag       = "-NoProfile"
	CmdRunFlag          = "/C"

	// ScriptPathToken stands in for the temp script path until it is written
	ScriptPathToken  = "{script}"
	TempScriptPrefix = "shortcut_script_"
)

// Plan is a fully resolved process launch
type Plan struct {
	Argv []string
	Dir  string

	// Hidden suppresses the console window; NewConsole gives console
	// programs their own window. Both only apply on Windows.
	Hidden     bool
	NewConsole bool

	// Elevated plans hand off to an elevated process and return at once
	Elevated bool

	// Script is inline content to be written to a temp file with ScriptExt;
	// ScriptPathToken in Argv is replaced with that file's path
	Script    string
	ScriptExt string
}

// BuildPlan resolves how s is launched on goos. lookup resolves environment
// references in command and working directory.
func BuildPlan(goos string, s model.Shortcut, lookup func(string) (string, bool)) (Plan, error) {
	command := ExpandEnv(strings.TrimSpace(s.Command), lookup)
	dir := ExpandEnv(strings.TrimSpace(s.WorkingDir), lookup)
	args := SplitArgs(s.Args)

	var plan Plan
	var err error

	switch s.Kind() {
	case model.TypeURL:
		plan.Argv, err = platform.OpenArgs(goos, command)
		return plan, err

	case model.TypeFolder:
		plan.Argv, err = platform.RevealArgs(goos, command)
		return plan, err

	case model.TypeFile:
		if command == "" {
			return plan, fmt.Errorf("file path is empty")
		}
		if s.Admin && goos == platform.OSWindows {
			return elevate([]string{command}, ""), nil
		}
		plan.Argv, err = platform.OpenArgs(goos, command)
		return plan, err

	case model.TypeScript:
		if command == "" {
			return plan, fmt.Errorf("script path is empty")
		}
		plan.Argv = append(scriptInterpreter(command), args...)
		plan.Dir = dir
		plan.Hidden = s.Hidden
		plan.NewConsole = !s.Hidden && isBatch(command)

	case model.TypeShell:
		if strings.TrimSpace(s.Script) == "" {
			return plan, fmt.Errorf("script is empty")
		}
		plan = shellPlan(s.EffectiveShellKind(), s.Script)
		plan.Dir = dir
		plan.Hidden = s.Hidden
		plan.NewConsole = !s.Hidden && plan.ScriptExt == ".bat"

	default:
		if command == "" {
			return plan, fmt.Errorf("command is empty")
		}
		plan.Argv = append([]string{command}, args...)
		plan.Dir = dir
	}

	if s.Admin && goos == platform.OSWindows {
		elevated := elevate(plan.Argv, plan.Dir)
		elevated.Script = plan.Script
		elevated.ScriptExt = plan.ScriptExt
		return elevated, nil
	}
	return plan, nil
}

// scriptInterpreter picks the argv prefix for a script file by extension
func scriptInterpreter(path string) []string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ps1":
		return []string{PowerShellCommand, ExecutionPolicyFlag, ExecutionPolicy, FileFlag, path}
	case ".bat", ".cmd":
		return []string{CmdCommand, CmdRunFlag, path}
	case ".sh":
		return []string{ShCommand, path}
	default:
		return []string{path}
	}
}

func isBatch(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".bat" || ext == ".cmd"
}

// shellPlan builds the interpreter invocation and temp file content for an
// inline script
func shellPlan(kind, script string) Plan {
	switch strings.ToLower(kind) {
	case PowerShellCommand, PwshCommand:
		return Plan{
			Argv:      []string{strings.ToLower(kind), ExecutionPolicyFlag, ExecutionPolicy, FileFlag, ScriptPathToken},
			Script:    script,
			ScriptExt: ".ps1",
		}
	case ShCommand, BashCommand:
		return Plan{
			Argv:      []string{strings.ToLower(kind), ScriptPathToken},
			Script:    script,
			ScriptExt: ".sh",
		}
	default:
		lines := strings.ReplaceAll(strings.ReplaceAll(script, "\r\n", "\n"), "\n", "\r\n")
		return Plan{
			Argv:      []string{CmdCommand, CmdRunFlag, ScriptPathToken},
			Script:    "@echo off\r\n" + lines + "\r\n",
			ScriptExt: ".bat",
		}
	}
}

// elevate wraps argv in a PowerShell Start-Process -Verb RunAs call
func elevate(argv []string, dir string) Plan {
	var b strings.Builder
	b.WriteString("Start-Process ")
	b.WriteString(psQuote(argv[0]))
	b.WriteString(" -Verb RunAs")
	if len(argv) > 1 {
		quoted := make([]string, 0, len(argv)-1)
		for _, a := range argv[1:] {
			quoted = append(quoted, quoteArg(a))
		}
		b.WriteString(" -ArgumentList ")
		b.WriteString(psQuote(strings.Join(quoted, " ")))
	}
	if dir != "" {
		b.WriteString(" -WorkingDirectory ")
		b.WriteString(psQuote(dir))
	}

	return Plan{
		Argv:     []string{PowerShellCommand, NoProfileFlag, CommandFlag, b.String()},
		Hidden:   true,
		Elevated: true,
	}
}
