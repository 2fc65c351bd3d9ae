package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/core-tools/hsu-launcher/pkg/launchconfig"
	"github.com/core-tools/hsu-launcher/pkg/logging"
	"github.com/core-tools/hsu-launcher/pkg/processfile"
	"github.com/core-tools/hsu-launcher/pkg/processkind"
)

const tuiLogFileName = "launcher.log"

type flagOptions struct {
	Config       string        `short:"c" long:"config" default:"config.toml" description:"path to the TOML or YAML configuration file"`
	LogLevel     string        `long:"log-level" description:"override [log] level (debug, info, warn, error)"`
	LogFormat    string        `long:"log-format" description:"override [log] format (console, json)"`
	LogOutput    string        `long:"log-output" description:"override [log] output (stdout, stderr or a file path)"`
	Launch       string        `long:"launch" value-name:"KIND" description:"launch KIND without the TUI and wait for it to exit"`
	PrintCommand string        `long:"print-command" value-name:"KIND" description:"print the command KIND would run and exit"`
	CheckConfig  bool          `long:"check-config" description:"validate the configuration file and exit"`
	PollInterval time.Duration `long:"poll-interval" default:"200ms" description:"liveness poll interval in headless mode"`
	Refresh      time.Duration `long:"refresh" default:"100ms" description:"TUI refresh interval"`
}

type runMode int

const (
	modeTUI runMode = iota
	modeHeadless
	modePrintCommand
	modeCheckConfig
)

// mode picks the run mode; at most one of the exclusive flags may be set
func (o flagOptions) mode() (runMode, error) {
	selected := modeTUI
	count := 0
	if o.Launch != "" {
		selected = modeHeadless
		count++
	}
	if o.PrintCommand != "" {
		selected = modePrintCommand
		count++
	}
	if o.CheckConfig {
		selected = modeCheckConfig
		count++
	}
	if count > 1 {
		return modeTUI, fmt.Errorf("--launch, --print-command and --check-config are mutually exclusive")
	}
	return selected, nil
}

// tuiLogFile places the TUI log in the session log directory, or the temp
// directory when that cannot be created
func tuiLogFile(logger logging.Logger) string {
	manager := processfile.NewProcessFileManager(processfile.ProcessFileConfig{}, logger)
	path, err := manager.EnsureLogFilePath(tuiLogFileName)
	if err != nil {
		logger.Warnf("Falling back to temp directory for logs: %v", err)
		return filepath.Join(os.TempDir(), processfile.DefaultAppName+".log")
	}
	return path
}

// kind parses the KIND argument of the selected mode
func (o flagOptions) kind(mode runMode) (processkind.ProcessKind, error) {
	switch mode {
	case modeHeadless:
		return processkind.Parse(o.Launch)
	case modePrintCommand:
		return processkind.Parse(o.PrintCommand)
	default:
		return 0, fmt.Errorf("mode takes no process kind")
	}
}

// zapConfig merges the [log] table, the command line overrides and the run
// mode. The TUI owns the terminal, so console outputs move to logFile.
func zapConfig(config *launchconfig.Config, opts flagOptions, mode runMode, logFile string) logging.ZapConfig {
	result := logging.DefaultZapConfig()
	if config != nil {
		if config.Log.Level != "" {
			result.Level = config.Log.Level
		}
		if config.Log.Format != "" {
			result.Format = config.Log.Format
		}
		if config.Log.Output != "" {
			result.Output = config.Log.Output
		}
	}

	if opts.LogLevel != "" {
		result.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		result.Format = opts.LogFormat
	}
	if opts.LogOutput != "" {
		result.Output = opts.LogOutput
	}

	if mode == modeTUI && (result.Output == "stderr" || result.Output == "stdout") {
		result.Output = logFile
	}

	return result
}

func logPrefix(module string) string {
	return fmt.Sprintf("module: %s , ", module)
}
