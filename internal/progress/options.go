package progress

import (
	"image/color"
	"time"
)

// Options is the flat set of named options a host forwards to an indicator.
// Nil fields are left untouched.
type Options struct {
	BackgroundLineWidth *float64
	ProgressLineWidth   *float64
	BackgroundLineColor color.Color
	ProgressLineColor   color.Color
	Min                 *float64
	Max                 *float64
	Progress            *float64
	LineMode            *int
	AnimateProgress     *bool
	AnimationDuration   *int // milliseconds
	Mode                *int
	Reverse             *bool
}

// ParseLineMode maps the raw lineMode flag: 2 is square, anything else round.
func ParseLineMode(flag int) CapStyle {
	switch flag {
	case 2:
		return CapSquare
	default:
		return CapRound
	}
}

// ParseMode maps the raw mode flag: 2 is vertical, anything else horizontal.
func ParseMode(flag int) Orientation {
	switch flag {
	case 2:
		return Vertical
	default:
		return Horizontal
	}
}

// apply writes o into ind. The range goes through the same max > min guard
// as SetRange, and the value is set last so it is checked against the new
// range and picks up the new animation settings.
func (o Options) apply(ind *Indicator) {
	if o.BackgroundLineWidth != nil {
		ind.SetBackgroundLineWidth(*o.BackgroundLineWidth)
	}
	if o.ProgressLineWidth != nil {
		ind.SetProgressLineWidth(*o.ProgressLineWidth)
	}
	if o.BackgroundLineColor != nil {
		ind.SetBackgroundLineColor(o.BackgroundLineColor)
	}
	if o.ProgressLineColor != nil {
		ind.SetProgressLineColor(o.ProgressLineColor)
	}
	if o.LineMode != nil {
		ind.SetLineMode(ParseLineMode(*o.LineMode))
	}
	if o.Mode != nil {
		ind.setOrientation(ParseMode(*o.Mode))
	}
	if o.Reverse != nil {
		ind.setReverse(*o.Reverse)
	}
	if o.AnimationDuration != nil {
		ind.SetAnimationDuration(time.Duration(*o.AnimationDuration) * time.Millisecond)
	}
	if o.AnimateProgress != nil {
		ind.SetAnimateProgress(*o.AnimateProgress)
	}

	switch {
	case o.Min != nil && o.Max != nil:
		ind.SetRange(*o.Min, *o.Max)
	case o.Min != nil:
		ind.SetMin(*o.Min)
	case o.Max != nil:
		ind.SetMax(*o.Max)
	}

	if o.Progress != nil {
		ind.SetProgress(*o.Progress)
	}
}
