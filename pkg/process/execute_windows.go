//go:build windows

package process

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/core-tools/hsu-launcher/pkg/logging"
)

func setupProcessAttributes(cmd *exec.Cmd) {}

// The guarded command needs a POSIX interactive shell inside the terminal
func startCommand(cmd *exec.Cmd) error {
	return fmt.Errorf("launching %s is not supported on windows", cmd.Path)
}

func newOSHandle(process *os.Process, logger logging.Logger) Handle {
	return nil
}
