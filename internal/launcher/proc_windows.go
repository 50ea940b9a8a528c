//go:build windows

package launcher

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

func configureProcess(cmd *exec.Cmd, plan Plan) {
	attr := &syscall.SysProcAttr{}
	switch {
	case plan.Hidden:
		attr.HideWindow = true
		attr.CreationFlags = windows.CREATE_NO_WINDOW
	case plan.NewConsole:
		attr.CreationFlags = windows.CREATE_NEW_CONSOLE
	}
	cmd.SysProcAttr = attr
}
