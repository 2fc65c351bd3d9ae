// Package tui is the terminal front end of the launcher. It polls the
// lifecycle on every refresh tick and turns key presses into start and stop
// requests.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/core-tools/hsu-launcher/pkg/lifecycle"
	"github.com/core-tools/hsu-launcher/pkg/processkind"
)

const (
	DefaultRefreshInterval = 100 * time.Millisecond

	windowTitle = "Teleop Record Replay"
)

// Controller is the part of the lifecycle the TUI drives
type Controller interface {
	Poll() lifecycle.ProcessState
	RequestStart(kind processkind.ProcessKind) error
	RequestStop() error
	Snapshot() lifecycle.Snapshot
	ConfigError() error
}

type viewMode int

const (
	modeIdle viewMode = iota
	modeRunning
	modeConfigError
)

// tickMsg is sent on each refresh interval
type tickMsg time.Time

// Model is the bubbletea model for the launcher TUI
type Model struct {
	controller Controller
	refresh    time.Duration

	kinds    []processkind.ProcessKind
	selected int

	keys     KeyMap
	help     help.Model
	showHelp bool
	width    int
	quitting bool

	now func() time.Time
}

// New creates a TUI model driving controller. A non-positive refresh uses
// DefaultRefreshInterval.
func New(controller Controller, refresh time.Duration) *Model {
	if refresh <= 0 {
		refresh = DefaultRefreshInterval
	}

	h := help.New()
	h.ShowAll = false

	m := &Model{
		controller: controller,
		refresh:    refresh,
		kinds:      processkind.All(),
		keys:       DefaultKeyMap(),
		help:       h,
		now:        time.Now,
	}
	m.keys.setMode(m.mode())
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.tick(),
		tea.SetWindowTitle(windowTitle),
	)
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Quitting reports whether the user asked to leave
func (m *Model) Quitting() bool {
	return m.quitting
}

// Selected returns the kind under the cursor
func (m *Model) Selected() processkind.ProcessKind {
	return m.kinds[m.selected]
}

func (m *Model) mode() viewMode {
	if m.controller.ConfigError() != nil {
		return modeConfigError
	}
	if m.controller.Snapshot().Running() {
		return modeRunning
	}
	return modeIdle
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tickMsg:
		m.controller.Poll()
		cmd = m.tick()

	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}

	m.keys.setMode(m.mode())
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.controller.Snapshot().Running() {
			_ = m.controller.RequestStop()
		}
		m.quitting = true
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.Stop):
		_ = m.controller.RequestStop()

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.kinds)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.Launch):
		m.start(m.Selected())

	case key.Matches(msg, m.keys.Launch1):
		m.start(processkind.Teleoperation)

	case key.Matches(msg, m.keys.Launch2):
		m.start(processkind.Record)

	case key.Matches(msg, m.keys.Launch3):
		m.start(processkind.Replay)
	}

	return nil
}

// start leaves failures to the lifecycle, which records them as the last error
func (m *Model) start(kind processkind.ProcessKind) {
	for i, k := range m.kinds {
		if k == kind {
			m.selected = i
		}
	}
	_ = m.controller.RequestStart(kind)
}
