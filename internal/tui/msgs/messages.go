// Package msgs defines the messages that feed the TUI from outside the
// event loop.
package msgs

import (
	"time"

	"github.com/pablasso/linebar/internal/progress"
)

// TargetMsg moves every bar to Value.
type TargetMsg struct {
	Value float64
}

// TargetsClosedMsg signals that the target source has no more values.
type TargetsClosedMsg struct{}

// ReloadMsg carries options reloaded from the config file.
type ReloadMsg struct {
	Options progress.Options
	Err     error
}

// DemoTickMsg asks demo playback to pick the next target.
type DemoTickMsg time.Time
