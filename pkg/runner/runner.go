package runner

import (
	"context"
	"os"
	"time"

	"github.com/core-tools/hsu-launcher/pkg/command"
	"github.com/core-tools/hsu-launcher/pkg/errors"
	"github.com/core-tools/hsu-launcher/pkg/launchconfig"
	"github.com/core-tools/hsu-launcher/pkg/lifecycle"
	"github.com/core-tools/hsu-launcher/pkg/logging"
	"github.com/core-tools/hsu-launcher/pkg/process"
	"github.com/core-tools/hsu-launcher/pkg/processkind"
)

const DefaultPollInterval = 200 * time.Millisecond

// HeadlessOptions configures RunHeadless. Signals is optional; any value
// received on it stops the running process.
type HeadlessOptions struct {
	Kind         processkind.ProcessKind
	PollInterval time.Duration
	Signals      <-chan os.Signal
}

// RunHeadless launches one process and polls it until it exits, the context
// ends or a signal arrives. The last two stop the process first. A config
// or spawn failure is returned; a kill failure is logged only.
func RunHeadless(ctx context.Context, options HeadlessOptions, lc *lifecycle.Lifecycle, logger logging.Logger) error {
	logger.Infof("Headless runner starting, kind: %s", options.Kind)

	if err := lc.ConfigError(); err != nil {
		return err
	}

	pollInterval := options.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	if err := lc.RequestStart(options.Kind); err != nil {
		return err
	}
	if !lc.Running() {
		return errors.NewInternalError("process not tracked after start", nil).WithContext("kind", options.Kind.String())
	}

	logger.Infof("Polling %s every %v", options.Kind, pollInterval)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if lc.Poll() == lifecycle.ProcessStateIdle {
				logger.Infof("Headless runner finished")
				return nil
			}
		case receivedSignal := <-options.Signals:
			logger.Infof("Headless runner received signal: %v", receivedSignal)
			_ = lc.RequestStop()
			return nil
		case <-ctx.Done():
			logger.Infof("Headless runner cancelled")
			_ = lc.RequestStop()
			return nil
		}
	}
}

// LaunchSummary describes what a launch would execute
type LaunchSummary struct {
	Kind       string   `json:"kind" yaml:"kind"`
	Terminal   string   `json:"terminal" yaml:"terminal"`
	Command    string   `json:"command" yaml:"command"`
	Invocation []string `json:"invocation" yaml:"invocation"`
}

// DescribeLaunch resolves the command for kind without spawning anything
func DescribeLaunch(config *launchconfig.Config, kind processkind.ProcessKind) (LaunchSummary, error) {
	if config == nil {
		return LaunchSummary{}, errors.NewValidationError("configuration is nil", nil)
	}
	if !kind.Valid() {
		return LaunchSummary{}, errors.NewValidationError("unknown process kind", nil).WithContext("kind", int(kind))
	}

	resolved := command.Resolve(kind, config.Commands, config.App)
	return LaunchSummary{
		Kind:       kind.String(),
		Terminal:   config.App.Terminal,
		Command:    resolved,
		Invocation: process.Invocation(resolved, config.App.Terminal),
	}, nil
}

// ValidateConfigFile loads and validates a configuration file without running anything
func ValidateConfigFile(configFile string) error {
	_, err := launchconfig.LoadConfigFromFile(configFile)
	if err != nil {
		return errors.NewValidationError("configuration validation failed", err).WithContext("config_file", configFile)
	}
	return nil
}
