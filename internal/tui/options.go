package tui

import (
	"github.com/pablasso/linebar/internal/config"
	"github.com/pablasso/linebar/internal/demo"
	"github.com/pablasso/linebar/internal/progress"
	"github.com/rs/zerolog"
)

// Options configures TUI startup behavior.
type Options struct {
	// Indicator is applied to every bar on startup.
	Indicator progress.Options
	// Demo, when set, drives the bars with random targets.
	Demo *demo.Config
	// Watcher, when set, is run for the lifetime of the program and its
	// reloads are applied to every bar.
	Watcher *config.Watcher
	// Targets, when set, moves every bar to each value received.
	Targets <-chan float64
	// Easing shapes every transition. Nil means linear.
	Easing progress.Easing
	// Logger receives diagnostics. Nil discards them.
	Logger *zerolog.Logger
}
