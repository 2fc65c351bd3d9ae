package processfile

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/core-tools/hsu-launcher/pkg/errors"
	"github.com/core-tools/hsu-launcher/pkg/logging"
)

// Default application name for the launcher
const DefaultAppName = "hsu-launcher"

// ProcessFileConfig holds configuration for launcher file placement (log files)
type ProcessFileConfig struct {
	// Base directory for files. If empty, uses OS-appropriate default
	BaseDirectory string

	// Service context - affects directory selection
	ServiceContext ServiceContext

	// Application name for subdirectory creation
	AppName string
}

// ServiceContext defines the context in which the launcher runs
type ServiceContext string

const (
	// UserService keeps files across logins
	UserService ServiceContext = "user"

	// SessionService keeps files in the login session runtime directory
	SessionService ServiceContext = "session"
)

// ProcessFileManager provides file path generation for the launcher
type ProcessFileManager struct {
	config ProcessFileConfig
	logger logging.Logger
}

// NewProcessFileManager creates a new process file manager with the given configuration
func NewProcessFileManager(config ProcessFileConfig, logger logging.Logger) *ProcessFileManager {
	if config.AppName == "" {
		config.AppName = DefaultAppName
	}

	if config.ServiceContext == "" {
		config.ServiceContext = SessionService
	}

	return &ProcessFileManager{
		config: config,
		logger: logger,
	}
}

// GenerateLogDirectoryPath returns the launcher's log directory
func (m *ProcessFileManager) GenerateLogDirectoryPath() string {
	return filepath.Join(m.getLogBaseDirectory(), m.config.AppName)
}

// GenerateLogFilePath returns the path of a log file inside the log directory
func (m *ProcessFileManager) GenerateLogFilePath(name string) string {
	return filepath.Join(m.GenerateLogDirectoryPath(), name)
}

// EnsureLogFilePath generates the log file path and creates its directory
func (m *ProcessFileManager) EnsureLogFilePath(name string) (string, error) {
	path := m.GenerateLogFilePath(name)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.NewIOError("failed to create log directory", err).WithContext("directory", dir)
	}
	m.logger.Debugf("Using log file: %s", path)
	return path, nil
}

// getLogBaseDirectory returns the appropriate base directory for log files
func (m *ProcessFileManager) getLogBaseDirectory() string {
	if m.config.BaseDirectory != "" {
		return filepath.Join(m.config.BaseDirectory, "logs")
	}

	switch m.config.ServiceContext {
	case UserService:
		return m.getUserLogDirectory()
	case SessionService:
		return m.getSessionLogDirectory()
	default:
		return m.getSessionLogDirectory()
	}
}

func (m *ProcessFileManager) getUserLogDirectory() string {
	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "logs")
		}
		return filepath.Join(homeDir, "Library", "Logs")

	default:
		// XDG_STATE_HOME or ~/.local/state
		if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
			return filepath.Join(stateHome, "logs")
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "logs")
		}
		return filepath.Join(homeDir, ".local", "state", "logs")
	}
}

func (m *ProcessFileManager) getSessionLogDirectory() string {
	if runtime.GOOS != "linux" {
		return filepath.Join(os.TempDir(), "logs")
	}

	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return filepath.Join(runtimeDir, "logs")
	}

	sessionDir := fmt.Sprintf("/run/user/%d", os.Getuid())
	if _, err := os.Stat(sessionDir); err == nil {
		return filepath.Join(sessionDir, "logs")
	}

	// Fallback to temp directory
	return filepath.Join(os.TempDir(), "logs")
}
