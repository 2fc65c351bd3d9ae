package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(windowTitle))
	b.WriteString("\n")

	switch m.mode() {
	case modeConfigError:
		b.WriteString(errorStyle.Render(m.controller.ConfigError().Error()))
		b.WriteString("\n")
	case modeRunning:
		b.WriteString(m.renderRunning())
	default:
		b.WriteString(m.renderIdle())
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderIdle() string {
	buttons := make([]string, 0, len(m.kinds))
	for i, kind := range m.kinds {
		label := fmt.Sprintf("%d  %s", i+1, kind)
		if i == m.selected {
			buttons = append(buttons, selectedButtonStyle.Render(label))
		} else {
			buttons = append(buttons, buttonStyle.Render(label))
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, buttons...))
	b.WriteString("\n")

	if err := m.controller.Snapshot().LastError; err != nil {
		b.WriteString(errorStyle.Render("Error: " + err.Error()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderRunning() string {
	snapshot := m.controller.Snapshot()
	elapsed := m.now().Sub(snapshot.StartTime).Truncate(time.Second)

	var b strings.Builder
	b.WriteString(runningStyle.Render(fmt.Sprintf("%s is running...", snapshot.Kind)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("PID: "))
	b.WriteString(fmt.Sprintf("%d", snapshot.PID))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Elapsed: "))
	b.WriteString(elapsed.String())
	b.WriteString("\n")
	b.WriteString(stopButtonStyle.Render("Stop"))
	b.WriteString("\n")
	return b.String()
}
