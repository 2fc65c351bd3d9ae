//go:build !windows

package process

import (
	"golang.org/x/sys/unix"
)

// sendTerminationSignal sends SIGTERM to the process group on Unix systems.
// The terminal is its group leader, so -pid reaches the emulator and any
// children that stayed in its group.
func sendTerminationSignal(pid int) error {
	return unix.Kill(-pid, unix.SIGTERM)
}
