package process

import (
	"testing"

	"github.com/core-tools/hsu-launcher/pkg/errors"
	"github.com/core-tools/hsu-launcher/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardCommand(t *testing.T) {
	guarded := GuardCommand("cd /work && echo hi")

	assert.Equal(t,
		`(cd /work && echo hi); echo -e "\n\n[INFO] Command finished. Press Enter to close this terminal."; read`,
		guarded)
}

func TestTerminalArgs(t *testing.T) {
	tests := []struct {
		name     string
		guarded  string
		expected []string
	}{
		{
			name:     "plain",
			guarded:  "(echo hi); read",
			expected: []string{"-e", "bash -ic '(echo hi); read'"},
		},
		{
			name:     "embedded single quotes",
			guarded:  "(echo 'hi'); read",
			expected: []string{"-e", `bash -ic '(echo '\''hi'\''); read'`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TerminalArgs(tt.guarded))
		})
	}
}

func TestInvocation(t *testing.T) {
	argv := Invocation("echo hi", "test-term")

	require.Len(t, argv, 3)
	assert.Equal(t, "test-term", argv[0])
	assert.Equal(t, "-e", argv[1])
	assert.Equal(t, "bash -ic '"+GuardCommand("echo hi")+"'", argv[2])
}

func TestLaunchCmd_Adapter(t *testing.T) {
	var gotCommand, gotTerminal string
	launcher := LaunchCmd(func(command string, terminal string) (Handle, error) {
		gotCommand, gotTerminal = command, terminal
		return nil, errors.NewSpawnError("stub", nil)
	})

	_, err := launcher.Launch("echo hi", "test-term")

	assert.True(t, errors.IsSpawnError(err))
	assert.Equal(t, "echo hi", gotCommand)
	assert.Equal(t, "test-term", gotTerminal)
}

func TestTerminalLauncher_EmptyTerminal(t *testing.T) {
	launcher := NewTerminalLauncher(logging.NewNopLogger())

	handle, err := launcher.Launch("echo hi", "  ")

	assert.Nil(t, handle)
	require.Error(t, err)
	assert.True(t, errors.IsSpawnError(err))
	assert.True(t, errors.IsValidationError(err))
}

func TestTerminalLauncher_MissingTerminal(t *testing.T) {
	launcher := NewTerminalLauncher(logging.NewNopLogger())

	handle, err := launcher.Launch("echo hi", "hsu-launcher-no-such-terminal")

	assert.Nil(t, handle)
	require.Error(t, err)
	assert.True(t, errors.IsSpawnError(err))

	terminal, ok := errors.ContextValue(err, "terminal")
	require.True(t, ok)
	assert.Equal(t, "hsu-launcher-no-such-terminal", terminal)
}
