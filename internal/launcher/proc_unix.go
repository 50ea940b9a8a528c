//go:build unix

package launcher

import (
	"os/exec"
	"syscall"
)

// configureProcess puts the child in its own session so it survives the
// launcher exiting or the terminal closing
func configureProcess(cmd *exec.Cmd, _ Plan) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
