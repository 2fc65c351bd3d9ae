// Package lifecycle tracks the single terminal process the launcher may run.
//
// Every operation is synchronous and non-blocking and is meant to be driven
// from one UI loop: Poll once per refresh tick, RequestStart and RequestStop
// in response to user input. There is no locking; the loop is the only caller.
package lifecycle

import (
	"time"

	"github.com/core-tools/hsu-launcher/pkg/command"
	"github.com/core-tools/hsu-launcher/pkg/errors"
	"github.com/core-tools/hsu-launcher/pkg/launchconfig"
	"github.com/core-tools/hsu-launcher/pkg/logging"
	"github.com/core-tools/hsu-launcher/pkg/process"
	"github.com/core-tools/hsu-launcher/pkg/processkind"
)

// Options configures a Lifecycle. ConfigError is the result of loading Config;
// when it is set every launch request is ignored.
type Options struct {
	Config      *launchconfig.Config
	ConfigError error
	Launcher    process.Launcher
}

// trackedProcess owns the handle of the one running terminal
type trackedProcess struct {
	handle    process.Handle
	kind      processkind.ProcessKind
	startTime time.Time
}

type Lifecycle struct {
	config    *launchconfig.Config
	configErr error
	launcher  process.Launcher
	logger    logging.Logger

	tracked   *trackedProcess
	lastError error

	now func() time.Time
}

func NewLifecycle(options Options, logger logging.Logger) *Lifecycle {
	configErr := options.ConfigError
	if configErr == nil && options.Config == nil {
		configErr = errors.NewConfigLoadError("configuration not loaded", nil)
	}
	if configErr != nil {
		logger.Errorf("Configuration unavailable, launching disabled: %v", configErr)
	}

	return &Lifecycle{
		config:    options.Config,
		configErr: configErr,
		launcher:  options.Launcher,
		logger:    logger,
		now:       time.Now,
	}
}

// State returns the current state without querying the OS
func (l *Lifecycle) State() ProcessState {
	if l.tracked != nil {
		return ProcessStateRunning
	}
	return ProcessStateIdle
}

func (l *Lifecycle) Running() bool {
	return l.tracked != nil
}

// Kind returns the kind of the tracked process, if any
func (l *Lifecycle) Kind() (processkind.ProcessKind, bool) {
	if l.tracked == nil {
		return 0, false
	}
	return l.tracked.kind, true
}

// ConfigError returns the permanent configuration error, or nil
func (l *Lifecycle) ConfigError() error {
	return l.configErr
}

// LastError returns the last spawn or kill failure. A successful start clears it.
func (l *Lifecycle) LastError() error {
	return l.lastError
}

func (l *Lifecycle) Config() *launchconfig.Config {
	return l.config
}

func (l *Lifecycle) Snapshot() Snapshot {
	snapshot := Snapshot{
		State:     l.State(),
		LastError: l.lastError,
	}
	if l.tracked != nil {
		snapshot.Kind = l.tracked.kind
		snapshot.PID = l.tracked.handle.PID()
		snapshot.StartTime = l.tracked.startTime
	}
	return snapshot
}

// Poll checks whether the tracked process is still alive and drops it once it
// has exited. A failed liveness query counts as an exit. The exit code is not
// inspected.
func (l *Lifecycle) Poll() ProcessState {
	if l.tracked == nil {
		return ProcessStateIdle
	}

	alive, err := l.tracked.handle.Alive()
	if err != nil {
		l.logger.Warnf("Liveness check failed, treating %s as exited, PID: %d, error: %v",
			l.tracked.kind, l.tracked.handle.PID(), err)
		l.release()
		return ProcessStateIdle
	}
	if !alive {
		l.logger.Infof("%s process exited, PID: %d, ran for %v",
			l.tracked.kind, l.tracked.handle.PID(), l.now().Sub(l.tracked.startTime).Round(time.Millisecond))
		l.release()
		return ProcessStateIdle
	}

	return ProcessStateRunning
}

// RequestStart launches kind unless a process is already tracked or the
// configuration failed to load; both of those are silent no-ops. A spawn
// failure leaves the lifecycle idle and is returned and kept as LastError.
func (l *Lifecycle) RequestStart(kind processkind.ProcessKind) error {
	l.logger.Debugf("Start requested, kind: %s, state: %s", kind, l.State())

	if l.configErr != nil {
		return nil
	}

	if !canStartFromState(l.State()) {
		l.logger.Debugf("Ignoring start of %s, %s is already running", kind, l.tracked.kind)
		return nil
	}

	if !kind.Valid() {
		return errors.NewValidationError("unknown process kind", nil).WithContext("kind", int(kind))
	}

	resolved := command.Resolve(kind, l.config.Commands, l.config.App)
	l.logger.Debugf("Resolved %s command: '%s'", kind, resolved)

	handle, err := l.launcher.Launch(resolved, l.config.App.Terminal)
	if err != nil {
		l.logger.Errorf("Failed to spawn %s process: %v", kind, err)
		if !errors.IsSpawnError(err) {
			err = errors.NewSpawnError("failed to spawn process", err)
		}
		l.lastError = err
		return err
	}

	l.tracked = &trackedProcess{
		handle:    handle,
		kind:      kind,
		startTime: l.now(),
	}
	l.lastError = nil

	l.logger.Infof("Successfully spawned %s process with PID: %d", kind, handle.PID())
	return nil
}

// RequestStop signals the tracked process and returns to idle whether or not
// the signal was accepted. A rejected signal is logged, kept as LastError and
// returned; it is not retried.
func (l *Lifecycle) RequestStop() error {
	if !canStopFromState(l.State()) {
		return nil
	}

	tracked := l.tracked
	l.release()

	l.logger.Infof("Stopping %s process with PID: %d", tracked.kind, tracked.handle.PID())

	if err := tracked.handle.Terminate(); err != nil {
		l.logger.Errorf("Failed to kill %s process with PID %d: %v", tracked.kind, tracked.handle.PID(), err)
		if !errors.IsKillError(err) {
			err = errors.NewKillError("failed to terminate process", err)
		}
		l.lastError = err
		return err
	}

	return nil
}

func (l *Lifecycle) release() {
	l.tracked = nil
}
