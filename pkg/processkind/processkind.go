// Package processkind defines the closed set of things the launcher can run.
package processkind

import (
	"strings"

	"github.com/core-tools/hsu-launcher/pkg/errors"
)

// ProcessKind is one of the three launch categories
type ProcessKind int

const (
	Teleoperation ProcessKind = iota
	Record
	Replay
)

// All returns every kind in display order
func All() []ProcessKind {
	return []ProcessKind{Teleoperation, Record, Replay}
}

func (k ProcessKind) String() string {
	switch k {
	case Teleoperation:
		return "Teleoperation"
	case Record:
		return "Record"
	case Replay:
		return "Replay"
	default:
		return "Unknown"
	}
}

// Key is the name of the kind's command in the [commands] config table
func (k ProcessKind) Key() string {
	switch k {
	case Teleoperation:
		return "teleoperation"
	case Record:
		return "record"
	case Replay:
		return "replay"
	default:
		return ""
	}
}

func (k ProcessKind) Valid() bool {
	switch k {
	case Teleoperation, Record, Replay:
		return true
	default:
		return false
	}
}

// Parse accepts either the display name or the config key, case-insensitively
func Parse(s string) (ProcessKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range All() {
		if name == k.Key() {
			return k, nil
		}
	}
	if name == "teleop" {
		return Teleoperation, nil
	}
	return 0, errors.NewValidationError("unknown process kind: "+s, nil).
		WithContext("supported_kinds", "teleoperation, record, replay")
}
