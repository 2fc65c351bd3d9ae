//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// setupProcessAttributes puts the terminal in its own process group so the
// termination signal can be sent to the group (-pid) rather than a single PID
func setupProcessAttributes(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}

func startCommand(cmd *exec.Cmd) error {
	return cmd.Start()
}
