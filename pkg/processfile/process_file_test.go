package processfile

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/core-tools/hsu-launcher/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ProcessFileMockLogger is a simple mock implementation of Logger for testing
type ProcessFileMockLogger struct{}

func (m *ProcessFileMockLogger) LogLevelf(level int, format string, args ...interface{}) {}
func (m *ProcessFileMockLogger) Debugf(format string, args ...interface{})               {}
func (m *ProcessFileMockLogger) Infof(format string, args ...interface{})                {}
func (m *ProcessFileMockLogger) Warnf(format string, args ...interface{})                {}
func (m *ProcessFileMockLogger) Errorf(format string, args ...interface{})               {}

func TestNewProcessFileManager_WithDefaults(t *testing.T) {
	manager := NewProcessFileManager(ProcessFileConfig{}, &ProcessFileMockLogger{})

	assert.Equal(t, DefaultAppName, manager.config.AppName)
	assert.Equal(t, SessionService, manager.config.ServiceContext)
}

func TestGenerateLogFilePath_WithCustomBaseDirectory(t *testing.T) {
	base := t.TempDir()
	manager := NewProcessFileManager(ProcessFileConfig{
		BaseDirectory: base,
		AppName:       "test-app",
	}, &ProcessFileMockLogger{})

	assert.Equal(t, filepath.Join(base, "logs", "test-app"), manager.GenerateLogDirectoryPath())
	assert.Equal(t, filepath.Join(base, "logs", "test-app", "launcher.log"), manager.GenerateLogFilePath("launcher.log"))
}

func TestGenerateLogFilePath_ServiceContexts(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG directories are Linux specific")
	}

	stateHome := t.TempDir()
	runtimeDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)
	t.Setenv("XDG_RUNTIME_DIR", runtimeDir)

	tests := []struct {
		name        string
		context     ServiceContext
		expectedDir string
	}{
		{
			name:        "user service uses state home",
			context:     UserService,
			expectedDir: filepath.Join(stateHome, "logs", DefaultAppName),
		},
		{
			name:        "session service uses runtime dir",
			context:     SessionService,
			expectedDir: filepath.Join(runtimeDir, "logs", DefaultAppName),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := NewProcessFileManager(ProcessFileConfig{ServiceContext: tt.context}, &ProcessFileMockLogger{})
			assert.Equal(t, tt.expectedDir, manager.GenerateLogDirectoryPath())
		})
	}
}

func TestEnsureLogFilePath_CreatesDirectory(t *testing.T) {
	base := t.TempDir()
	manager := NewProcessFileManager(ProcessFileConfig{BaseDirectory: base}, &ProcessFileMockLogger{})

	path, err := manager.EnsureLogFilePath("launcher.log")

	require.NoError(t, err)
	assert.Equal(t, manager.GenerateLogFilePath("launcher.log"), path)
	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureLogFilePath_InvalidBase(t *testing.T) {
	base := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(base, []byte("x"), 0o644))

	manager := NewProcessFileManager(ProcessFileConfig{BaseDirectory: base}, &ProcessFileMockLogger{})
	_, err := manager.EnsureLogFilePath("launcher.log")

	require.Error(t, err)
	assert.True(t, errors.IsIOError(err))
}
