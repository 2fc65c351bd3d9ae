package launchconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/core-tools/hsu-launcher/pkg/errors"
	"github.com/core-tools/hsu-launcher/pkg/logging"
	"github.com/core-tools/hsu-launcher/pkg/processkind"
)

// DefaultTerminal is used when [app] does not name a terminal emulator
const DefaultTerminal = "konsole"

// Config represents the top-level configuration file structure
type Config struct {
	App      AppConfig `toml:"app" yaml:"app"`
	Commands Commands  `toml:"commands" yaml:"commands"`
	Log      LogConfig `toml:"log" yaml:"log"`
}

// AppConfig holds environment settings that are not tied to a process kind
type AppConfig struct {
	Terminal  string `toml:"terminal" yaml:"terminal,omitempty"`
	CondaPath string `toml:"conda_path" yaml:"conda_path,omitempty"` // Bootstrap path, sourced before every command
}

// Commands maps every process kind to its shell command
type Commands struct {
	WorkingDirectory string `toml:"working_directory" yaml:"working_directory,omitempty"`
	Teleoperation    string `toml:"teleoperation" yaml:"teleoperation"`
	Record           string `toml:"record" yaml:"record"`
	Replay           string `toml:"replay" yaml:"replay"`
}

// LogConfig configures the zap backend; command line flags take precedence
type LogConfig struct {
	Level  string `toml:"level" yaml:"level,omitempty"`
	Format string `toml:"format" yaml:"format,omitempty"`
	Output string `toml:"output" yaml:"output,omitempty"`
}

// Command returns the configured command for kind
func (c Commands) Command(kind processkind.ProcessKind) string {
	switch kind {
	case processkind.Teleoperation:
		return c.Teleoperation
	case processkind.Record:
		return c.Record
	case processkind.Replay:
		return c.Replay
	default:
		return ""
	}
}

// LoadConfigFromFile loads the launcher configuration. Files ending in .yaml or
// .yml are parsed as YAML, everything else as TOML. Every failure is reported
// as a config load error.
func LoadConfigFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.NewConfigLoadError(
			fmt.Sprintf("failed to read config file '%s'", filename),
			errors.NewIOError("read failed", err),
		).WithContext("filename", filename)
	}

	config, err := parseConfig(filename, data)
	if err != nil {
		return nil, errors.NewConfigLoadError(
			fmt.Sprintf("failed to parse config file '%s'", filename), err,
		).WithContext("filename", filename)
	}

	setConfigDefaults(config)

	if err := ValidateConfig(config); err != nil {
		return nil, errors.NewConfigLoadError(
			fmt.Sprintf("invalid config file '%s'", filename), err,
		).WithContext("filename", filename)
	}

	return config, nil
}

func parseConfig(filename string, data []byte) (*Config, error) {
	var config Config

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, errors.NewValidationError("failed to parse YAML configuration", err)
		}
	default:
		meta, err := toml.Decode(string(data), &config)
		if err != nil {
			return nil, errors.NewValidationError("failed to parse TOML configuration", err)
		}
		if !meta.IsDefined("commands") {
			return nil, errors.NewValidationError("missing [commands] table", nil)
		}
	}

	return &config, nil
}

// setConfigDefaults fills in optional values
func setConfigDefaults(config *Config) {
	config.App.Terminal = strings.TrimSpace(config.App.Terminal)
	if config.App.Terminal == "" {
		config.App.Terminal = DefaultTerminal
	}
	config.App.CondaPath = strings.TrimSpace(config.App.CondaPath)
	config.Commands.WorkingDirectory = strings.TrimSpace(config.Commands.WorkingDirectory)

	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "console"
	}
	if config.Log.Output == "" {
		config.Log.Output = "stderr"
	}
}

// ValidateConfig checks that every kind has a command and that the log settings are known
func ValidateConfig(config *Config) error {
	if config == nil {
		return errors.NewValidationError("configuration cannot be nil", nil)
	}

	for _, kind := range processkind.All() {
		if strings.TrimSpace(config.Commands.Command(kind)) == "" {
			return errors.NewValidationError(
				fmt.Sprintf("missing command for '%s'", kind.Key()), nil,
			).WithContext("kind", kind.String())
		}
	}

	if _, ok := logging.ParseLevel(config.Log.Level); !ok {
		return errors.NewValidationError(
			fmt.Sprintf("invalid log level: %s", config.Log.Level), nil,
		).WithContext("valid_levels", "debug, info, warn, error")
	}

	switch config.Log.Format {
	case "console", "json":
	default:
		return errors.NewValidationError(
			fmt.Sprintf("invalid log format: %s", config.Log.Format), nil,
		).WithContext("valid_formats", "console, json")
	}

	return nil
}
