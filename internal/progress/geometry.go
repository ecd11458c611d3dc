package progress

import "math"

// Segment is a straight line in the indicator's local coordinate space.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Length returns the euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.X2-s.X1, s.Y2-s.Y1)
}

// Insets are the edge paddings of the drawing area. Start and End are the
// leading and trailing horizontal edges.
type Insets struct {
	Top, Bottom, Start, End float64
}

// Rect is the area offered to the indicator by its layout.
type Rect struct {
	Width, Height float64
	Insets
}

// Bounds returns r, so a fixed Rect can serve as a Layout.
func (r Rect) Bounds() Rect { return r }

// Size is a measured or proposed extent.
type Size struct {
	Width, Height float64
}

// Resolve maps percent onto the background and foreground segments for the
// given area and style. It has no state; identical inputs give identical
// segments.
//
// The main axis span runs from the leading inset to the trailing inset and
// the line sits on the centre of the cross axis. Round caps shrink the span
// by half the thicker line at both ends so the cap stays inside the area.
// A span that is empty, inverted or not finite collapses to a point at its
// start.
func Resolve(r Rect, style StyleConfig, percent float64) (background, foreground Segment) {
	var origin, start, end, center float64
	if style.Orientation == Vertical {
		origin = r.Top
		end = r.Height - r.Bottom
		center = (r.Width-r.Start-r.End)/2 + r.Start
	} else {
		origin = r.Start
		end = r.Width - r.End
		center = (r.Height-r.Top-r.Bottom)/2 + r.Top
	}
	start = origin

	if style.Cap == CapRound {
		half := style.Thickness() / 2
		start += half
		end -= half
	}
	if !isFinite(start) || !isFinite(end) || !(end > start) {
		if !isFinite(start) {
			start = finiteOr(origin, 0)
		}
		end = start
	}
	center = finiteOr(center, 0)

	p := clampPercent(percent)
	filled := (end - start) * p / 100

	from, to := start, start+filled
	if style.Reverse {
		from, to = end, end-filled
	}
	if p == 100 {
		to = end
		if style.Reverse {
			to = start
		}
	}

	background = axisSegment(style.Orientation, start, end, center)
	foreground = axisSegment(style.Orientation, from, to, center)
	return background, foreground
}

// Measure answers a layout negotiation: the cross axis asks for the thicker
// line plus both insets, the main axis takes whatever was offered.
func Measure(proposed Size, insets Insets, style StyleConfig) Size {
	t := style.Thickness()
	if style.Orientation == Vertical {
		return Size{
			Width:  insets.Start + t + insets.End,
			Height: math.Max(proposed.Height, 0),
		}
	}
	return Size{
		Width:  math.Max(proposed.Width, 0),
		Height: insets.Top + t + insets.Bottom,
	}
}

func axisSegment(o Orientation, from, to, center float64) Segment {
	if o == Vertical {
		return Segment{X1: center, Y1: from, X2: center, Y2: to}
	}
	return Segment{X1: from, Y1: center, X2: to, Y2: center}
}

func finiteOr(v, fallback float64) float64 {
	if isFinite(v) {
		return v
	}
	return fallback
}

func clampPercent(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
