package progress

import (
	"fmt"
	"image/color"
	"strings"
)

// CapStyle controls how line endpoints are rendered.
type CapStyle int

const (
	CapRound CapStyle = iota
	CapSquare
)

func (c CapStyle) String() string {
	switch c {
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return "unknown"
	}
}

// ParseCapStyle accepts "round" or "square", case-insensitively.
func ParseCapStyle(value string) (CapStyle, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "round", "circle":
		return CapRound, nil
	case "square":
		return CapSquare, nil
	default:
		return CapRound, fmt.Errorf("invalid cap style %q (valid: round, square)", value)
	}
}

// Orientation selects the main drawing axis.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseOrientation accepts "horizontal" or "vertical", case-insensitively.
func ParseOrientation(value string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("invalid orientation %q (valid: horizontal, vertical)", value)
	}
}

// StyleConfig is the drawing configuration read on every redraw.
type StyleConfig struct {
	BackgroundThickness float64
	ProgressThickness   float64
	BackgroundColor     color.Color
	ProgressColor       color.Color
	Cap                 CapStyle
	Orientation         Orientation
	Reverse             bool
}

// Thickness returns the thicker of the two line widths.
func (s StyleConfig) Thickness() float64 {
	return max(s.BackgroundThickness, s.ProgressThickness)
}
