// Package styles defines shared lipgloss styles and colors for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	errorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for errors

	// Bar colors, as color.Color values for the indicators
	TrackColor  = colorful.MustParseHex("#3A3A3A")
	FillColor   = colorful.MustParseHex("#5FAFAF")
	AccentColor = colorful.MustParseHex("#87AF87")

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// SubtleStyle for hints/help text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// LabelStyle for bar captions
	LabelStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Width(12)

	// StatusBarStyle for bottom status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)
