package process

import (
	"os/exec"
	"strings"

	"github.com/core-tools/hsu-launcher/pkg/errors"
	"github.com/core-tools/hsu-launcher/pkg/logging"
)

// completionNotice is printed in the terminal window once the command returns
const completionNotice = `\n\n[INFO] Command finished. Press Enter to close this terminal.`

// Handle is the only way to reach a spawned terminal process. Exactly one
// owner may hold it; after Alive reports an exit or Terminate is called the
// handle must be dropped.
type Handle interface {
	PID() int

	// Alive reports whether the process is still running. It never blocks.
	Alive() (bool, error)

	// Terminate sends a termination signal. It is sent at most once.
	Terminate() error
}

// Launcher starts a resolved shell command inside a terminal emulator
type Launcher interface {
	Launch(command string, terminal string) (Handle, error)
}

// LaunchCmd adapts a function to the Launcher interface
type LaunchCmd func(command string, terminal string) (Handle, error)

func (f LaunchCmd) Launch(command string, terminal string) (Handle, error) {
	return f(command, terminal)
}

// GuardCommand keeps the terminal window open after command finishes,
// whether it succeeded or not, until the user presses Enter.
func GuardCommand(command string) string {
	return "(" + command + `); echo -e "` + completionNotice + `"; read`
}

// TerminalArgs returns the emulator arguments for running guarded in an interactive bash
func TerminalArgs(guarded string) []string {
	return []string{"-e", "bash -ic " + singleQuote(guarded)}
}

// Invocation returns the full argv used to launch command in terminal
func Invocation(command string, terminal string) []string {
	return append([]string{terminal}, TerminalArgs(GuardCommand(command))...)
}

// singleQuote wraps s in single quotes, escaping embedded single quotes
func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// TerminalLauncher spawns terminal emulator processes
type TerminalLauncher struct {
	logger logging.Logger
}

func NewTerminalLauncher(logger logging.Logger) *TerminalLauncher {
	return &TerminalLauncher{logger: logger}
}

// Launch spawns terminal with the guarded command. Only the emulator process is
// tracked; the shell it runs is its descendant.
func (l *TerminalLauncher) Launch(command string, terminal string) (Handle, error) {
	terminal = strings.TrimSpace(terminal)
	if terminal == "" {
		return nil, errors.NewSpawnError("terminal program is not set",
			errors.NewValidationError("terminal program cannot be empty", nil))
	}

	argv := Invocation(command, terminal)
	l.logger.Debugf("Launching terminal, argv: %q", argv)

	cmd := exec.Command(argv[0], argv[1:]...)
	setupProcessAttributes(cmd)

	if err := startCommand(cmd); err != nil {
		return nil, errors.NewSpawnError("failed to start terminal", err).WithContext("terminal", terminal)
	}

	l.logger.Infof("Terminal started, terminal: %s, PID: %d", terminal, cmd.Process.Pid)

	return newOSHandle(cmd.Process, l.logger), nil
}
