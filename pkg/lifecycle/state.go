package lifecycle

import (
	"time"

	"github.com/core-tools/hsu-launcher/pkg/processkind"
)

// ProcessState represents the current state of the launcher
type ProcessState string

const (
	ProcessStateIdle    ProcessState = "idle"    // No tracked process, launches allowed
	ProcessStateRunning ProcessState = "running" // One tracked process
)

// Snapshot is a read-only view of the lifecycle for renderers
type Snapshot struct {
	State     ProcessState
	Kind      processkind.ProcessKind // Valid only when State is running
	PID       int
	StartTime time.Time
	LastError error
}

func (s Snapshot) Running() bool {
	return s.State == ProcessStateRunning
}

// canStartFromState validates if starting is allowed from the current state
func canStartFromState(currentState ProcessState) bool {
	switch currentState {
	case ProcessStateIdle:
		return true
	case ProcessStateRunning:
		return false // One tracked process at a time
	default:
		return false
	}
}

// canStopFromState validates if a stop has anything to act on
func canStopFromState(currentState ProcessState) bool {
	switch currentState {
	case ProcessStateRunning:
		return true
	case ProcessStateIdle:
		return false
	default:
		return false
	}
}
