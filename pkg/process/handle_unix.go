//go:build !windows

package process

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/core-tools/hsu-launcher/pkg/errors"
	"github.com/core-tools/hsu-launcher/pkg/logging"
)

type osHandle struct {
	process *os.Process
	logger  logging.Logger

	exited     bool
	terminated bool
}

func newOSHandle(process *os.Process, logger logging.Logger) Handle {
	return &osHandle{
		process: process,
		logger:  logger,
	}
}

func (h *osHandle) PID() int {
	return h.process.Pid
}

// Alive polls with wait4(WNOHANG). An observed exit reaps the process and
// releases the handle.
func (h *osHandle) Alive() (bool, error) {
	if h.exited || h.terminated {
		return false, nil
	}

	pid := h.process.Pid
	var status unix.WaitStatus
	for {
		wpid, err := unix.Wait4(pid, &status, unix.WNOHANG, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			h.markExited()
			return false, errors.NewLivenessCheckError("failed to query process state", err).WithContext("pid", pid)
		}
		if wpid == 0 {
			return true, nil
		}
		break
	}

	h.logger.Debugf("Terminal exited, PID: %d, status: %d", pid, status.ExitStatus())
	h.markExited()
	return false, nil
}

// Terminate signals the process group once. The process is reaped in the
// background so a killed terminal does not linger as a zombie.
func (h *osHandle) Terminate() error {
	if h.exited || h.terminated {
		return nil
	}
	h.terminated = true

	pid := h.process.Pid
	err := sendTerminationSignal(pid)

	process := h.process
	go func() {
		_, _ = process.Wait()
		_ = process.Release()
	}()

	if err != nil {
		return errors.NewKillError("failed to send termination signal", err).WithContext("pid", pid)
	}
	return nil
}

func (h *osHandle) markExited() {
	h.exited = true
	_ = h.process.Release()
}
