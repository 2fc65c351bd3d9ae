package tui

import (
	stderrors "errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/core-tools/hsu-launcher/pkg/errors"
	"github.com/core-tools/hsu-launcher/pkg/lifecycle"
	"github.com/core-tools/hsu-launcher/pkg/processkind"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeController records requests and exposes a scripted state
type fakeController struct {
	configErr error
	snapshot  lifecycle.Snapshot

	polls   int
	starts  []processkind.ProcessKind
	stops   int
	exitsOn int // poll number that reports an exit, 0 for never
}

func (f *fakeController) Poll() lifecycle.ProcessState {
	f.polls++
	if f.exitsOn != 0 && f.polls >= f.exitsOn {
		f.snapshot = lifecycle.Snapshot{State: lifecycle.ProcessStateIdle}
	}
	return f.snapshot.State
}

func (f *fakeController) RequestStart(kind processkind.ProcessKind) error {
	f.starts = append(f.starts, kind)
	if f.configErr != nil || f.snapshot.Running() {
		return nil
	}
	f.snapshot = lifecycle.Snapshot{
		State:     lifecycle.ProcessStateRunning,
		Kind:      kind,
		PID:       1234,
		StartTime: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	return nil
}

func (f *fakeController) RequestStop() error {
	f.stops++
	f.snapshot = lifecycle.Snapshot{State: lifecycle.ProcessStateIdle}
	return nil
}

func (f *fakeController) Snapshot() lifecycle.Snapshot {
	return f.snapshot
}

func (f *fakeController) ConfigError() error {
	return f.configErr
}

func newIdleController() *fakeController {
	return &fakeController{snapshot: lifecycle.Snapshot{State: lifecycle.ProcessStateIdle}}
}

func runesKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func TestModel_QuickLaunchKeys(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected processkind.ProcessKind
	}{
		{name: "1 launches teleoperation", key: "1", expected: processkind.Teleoperation},
		{name: "2 launches record", key: "2", expected: processkind.Record},
		{name: "3 launches replay", key: "3", expected: processkind.Replay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := newIdleController()
			m := New(controller, 0)

			press(m, runesKey(tt.key))

			require.Len(t, controller.starts, 1)
			assert.Equal(t, tt.expected, controller.starts[0])
			assert.Equal(t, tt.expected, m.Selected())
		})
	}
}

func TestModel_NavigateAndLaunch(t *testing.T) {
	controller := newIdleController()
	m := New(controller, 0)
	assert.Equal(t, processkind.Teleoperation, m.Selected())

	press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, processkind.Teleoperation, m.Selected(), "selection is clamped at the top")

	press(m, runesKey("j"))
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, processkind.Replay, m.Selected(), "selection is clamped at the bottom")

	press(m, runesKey("k"))
	assert.Equal(t, processkind.Record, m.Selected())

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []processkind.ProcessKind{processkind.Record}, controller.starts)
}

func TestModel_RunningKeys(t *testing.T) {
	controller := newIdleController()
	m := New(controller, 0)
	press(m, runesKey("2"))
	require.True(t, controller.snapshot.Running())

	// Launch keys are inactive while running
	press(m, runesKey("1"))
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Len(t, controller.starts, 1)
	assert.Equal(t, processkind.Record, m.Selected())

	press(m, runesKey("s"))
	assert.Equal(t, 1, controller.stops)
	assert.False(t, controller.snapshot.Running())
}

func TestModel_EnterStopsWhileRunning(t *testing.T) {
	controller := newIdleController()
	m := New(controller, 0)
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, controller.snapshot.Running())

	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 1, controller.stops)
	assert.Len(t, controller.starts, 1)
}

func TestModel_TickPollsAndRearms(t *testing.T) {
	controller := newIdleController()
	controller.exitsOn = 2
	m := New(controller, 0)
	press(m, runesKey("3"))

	_, cmd := m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd, "every tick schedules the next one")
	assert.Contains(t, m.View(), "Replay is running...")

	m.Update(tickMsg(time.Now()))
	assert.Equal(t, 2, controller.polls)
	assert.NotContains(t, m.View(), "is running")
	assert.Equal(t, 0, controller.stops)
}

func TestModel_QuitStopsRunningProcess(t *testing.T) {
	tests := []struct {
		name          string
		running       bool
		key           tea.KeyMsg
		expectedStops int
	}{
		{name: "q while idle", key: runesKey("q")},
		{name: "ctrl+c while idle", key: tea.KeyMsg{Type: tea.KeyCtrlC}},
		{name: "q while running", running: true, key: runesKey("q"), expectedStops: 1},
		{name: "ctrl+c while running", running: true, key: tea.KeyMsg{Type: tea.KeyCtrlC}, expectedStops: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := newIdleController()
			m := New(controller, 0)
			if tt.running {
				press(m, runesKey("1"))
			}

			cmd := press(m, tt.key)

			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, m.Quitting())
			assert.Equal(t, tt.expectedStops, controller.stops)
			assert.Empty(t, m.View())
		})
	}
}

func TestModel_ConfigErrorDisablesLaunching(t *testing.T) {
	controller := newIdleController()
	controller.configErr = errors.NewConfigLoadError("failed to read config file", stderrors.New("no such file"))
	m := New(controller, 0)

	for _, k := range []string{"1", "2", "3", "s", "?"} {
		press(m, runesKey(k))
	}
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, controller.starts)
	assert.Equal(t, 0, controller.stops)
	assert.False(t, m.showHelp)

	view := m.View()
	assert.Contains(t, view, "config: failed to read config file: no such file")
	assert.Contains(t, view, "quit")
	assert.NotContains(t, view, "Teleoperation")
	assert.NotContains(t, view, "launch")

	cmd := press(m, runesKey("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.Quitting())
}

func TestModel_IdleViewShowsLastError(t *testing.T) {
	controller := newIdleController()
	controller.snapshot.LastError = errors.NewSpawnError("failed to start terminal", stderrors.New("executable file not found"))
	m := New(controller, 0)

	view := m.View()

	assert.Contains(t, view, "Teleop Record Replay")
	assert.Contains(t, view, "Teleoperation")
	assert.Contains(t, view, "Record")
	assert.Contains(t, view, "Replay")
	assert.Contains(t, view, "spawn: failed to start terminal")
}

func TestModel_RunningViewShowsProcess(t *testing.T) {
	controller := newIdleController()
	m := New(controller, 0)
	m.now = func() time.Time { return time.Date(2026, 1, 1, 12, 1, 5, 0, time.UTC) }
	press(m, runesKey("1"))

	view := m.View()

	assert.Contains(t, view, "Teleoperation is running...")
	assert.Contains(t, view, "1234")
	assert.Contains(t, view, "1m5s")
	assert.Contains(t, view, "Stop")
}

func TestModel_HelpToggle(t *testing.T) {
	m := New(newIdleController(), 0)
	assert.NotContains(t, m.View(), "teleoperation")

	press(m, runesKey("?"))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "teleoperation", "full help lists the quick launch keys")

	press(m, runesKey("?"))
	assert.False(t, m.showHelp)
}

func TestNew_DefaultRefresh(t *testing.T) {
	m := New(newIdleController(), -time.Second)
	assert.Equal(t, DefaultRefreshInterval, m.refresh)

	m = New(newIdleController(), 250*time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, m.refresh)
}

func TestModel_DrivesLifecycle(t *testing.T) {
	// The real lifecycle satisfies the controller contract
	var _ Controller = (*lifecycle.Lifecycle)(nil)
}
