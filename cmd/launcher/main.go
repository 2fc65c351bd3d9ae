package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	sprintfLogging "github.com/core-tools/hsu-core/pkg/logging/sprintf"

	"github.com/core-tools/hsu-launcher/pkg/launchconfig"
	"github.com/core-tools/hsu-launcher/pkg/lifecycle"
	launcherLogging "github.com/core-tools/hsu-launcher/pkg/logging"
	"github.com/core-tools/hsu-launcher/pkg/process"
	"github.com/core-tools/hsu-launcher/pkg/runner"
	"github.com/core-tools/hsu-launcher/pkg/tui"

	tea "github.com/charmbracelet/bubbletea"
	flags "github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

func main() {
	os.Exit(run())
}

func run() int {
	var opts flagOptions
	var argv []string = os.Args[1:]
	var parser = flags.NewParser(&opts, flags.HelpFlag)
	var err error
	_, err = parser.ParseArgs(argv)
	if err != nil {
		fmt.Printf("Command line flags parsing failed: %v\n", err)
		return 1
	}

	bootstrapLogger := sprintfLogging.NewStdSprintfLogger()

	mode, err := opts.mode()
	if err != nil {
		fmt.Println(err)
		return 1
	}

	if mode == modeCheckConfig {
		if err := runner.ValidateConfigFile(opts.Config); err != nil {
			bootstrapLogger.Errorf("Configuration is invalid: %v", err)
			return 1
		}
		bootstrapLogger.Infof("Configuration %s is valid", opts.Config)
		return 0
	}

	config, configErr := launchconfig.LoadConfigFromFile(opts.Config)

	bootstrap := launcherLogging.NewLogger(
		logPrefix("bootstrap"), launcherLogging.LogFuncs{
			Debugf: bootstrapLogger.Debugf,
			Infof:  bootstrapLogger.Infof,
			Warnf:  bootstrapLogger.Warnf,
			Errorf: bootstrapLogger.Errorf,
		})

	var logFile string
	if mode == modeTUI {
		logFile = tuiLogFile(bootstrap)
	}

	backend, err := launcherLogging.NewZapBackend(zapConfig(config, opts, mode, logFile))
	if err != nil {
		bootstrapLogger.Errorf("Failed to set up logging: %v", err)
		return 1
	}
	defer backend.Close()

	logger := backend.Logger(logPrefix("launcher"))
	logger.Infof("opts: %+v", opts)

	if configErr != nil {
		logger.Errorf("Failed to load configuration from %s: %v", opts.Config, configErr)
	} else {
		logger.Infof("Configuration loaded successfully from %s, terminal: %s", opts.Config, config.App.Terminal)
	}

	switch mode {
	case modePrintCommand:
		return printCommand(config, configErr, opts)
	case modeHeadless:
		return runHeadless(config, configErr, opts, logger)
	default:
		return runTUI(config, configErr, opts, logger)
	}
}

func newLifecycle(config *launchconfig.Config, configErr error, logger launcherLogging.Logger) *lifecycle.Lifecycle {
	return lifecycle.NewLifecycle(lifecycle.Options{
		Config:      config,
		ConfigError: configErr,
		Launcher:    process.NewTerminalLauncher(logger),
	}, logger)
}

func printCommand(config *launchconfig.Config, configErr error, opts flagOptions) int {
	if configErr != nil {
		fmt.Printf("Configuration error: %v\n", configErr)
		return 1
	}

	kind, err := opts.kind(modePrintCommand)
	if err != nil {
		fmt.Println(err)
		return 1
	}

	summary, err := runner.DescribeLaunch(config, kind)
	if err != nil {
		fmt.Println(err)
		return 1
	}

	out, err := yaml.Marshal(summary)
	if err != nil {
		fmt.Println(err)
		return 1
	}
	fmt.Print(string(out))
	return 0
}

func runHeadless(config *launchconfig.Config, configErr error, opts flagOptions, logger launcherLogging.Logger) int {
	kind, err := opts.kind(modeHeadless)
	if err != nil {
		logger.Errorf("Invalid --launch value: %v", err)
		return 1
	}

	sig := make(chan os.Signal, 1)
	if runtime.GOOS == "windows" {
		signal.Notify(sig) // Unix signals not implemented on Windows
	} else {
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	}
	defer signal.Stop(sig)

	options := runner.HeadlessOptions{
		Kind:         kind,
		PollInterval: opts.PollInterval,
		Signals:      sig,
	}
	if err := runner.RunHeadless(context.Background(), options, newLifecycle(config, configErr, logger), logger); err != nil {
		logger.Errorf("Headless launch of %s failed: %v", kind, err)
		return 1
	}
	return 0
}

func runTUI(config *launchconfig.Config, configErr error, opts flagOptions, logger launcherLogging.Logger) int {
	lc := newLifecycle(config, configErr, logger)

	program := tea.NewProgram(tui.New(lc, opts.Refresh), tea.WithAltScreen())
	_, err := program.Run()

	// Never leave a terminal behind, even when the program failed
	if lc.Running() {
		_ = lc.RequestStop()
	}

	if err != nil {
		logger.Errorf("TUI failed: %v", err)
		fmt.Printf("TUI failed: %v\n", err)
		return 1
	}
	return 0
}
