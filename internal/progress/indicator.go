package progress

import (
	"image/color"
	"math"
	"time"

	"github.com/rs/zerolog"
)

// Layout supplies the area the indicator draws into.
type Layout interface {
	Bounds() Rect
}

// Surface is the host's line drawing primitive.
type Surface interface {
	DrawLine(seg Segment, thickness float64, c color.Color, capStyle CapStyle)
}

// Invalidator is asked for a redraw after every accepted change.
type Invalidator interface {
	Invalidate()
}

// InvalidateFunc adapts a function to Invalidator.
type InvalidateFunc func()

// Invalidate implements Invalidator.
func (f InvalidateFunc) Invalidate() { f() }

// Option configures an Indicator at construction.
type Option func(*Indicator)

// WithScheduler sets the frame source for animated transitions. Without one,
// animated updates are applied immediately.
func WithScheduler(s FrameScheduler) Option {
	return func(ind *Indicator) { ind.scheduler = s }
}

// WithClock overrides the clock used to time transitions.
func WithClock(c Clock) Option {
	return func(ind *Indicator) { ind.clock = c }
}

// WithInvalidator sets the redraw hook.
func WithInvalidator(inv Invalidator) Option {
	return func(ind *Indicator) {
		if inv != nil {
			ind.invalidator = inv
		}
	}
}

// WithEasing replaces the default linear easing.
func WithEasing(e Easing) Option {
	return func(ind *Indicator) { ind.easing = e }
}

// WithDiagnostics logs rejected requests at debug level. Rejections are
// silent otherwise.
func WithDiagnostics(log zerolog.Logger) Option {
	return func(ind *Indicator) { ind.log = log }
}

// Indicator is the state shared by Single and Dual: the value range, the
// style and the transition driving animated updates. Use NewSingle or
// NewDual to create one.
type Indicator struct {
	rng        *RangeModel
	style      StyleConfig
	animate    bool
	duration   time.Duration
	transition *Transition

	invalidator Invalidator
	scheduler   FrameScheduler
	clock       Clock
	easing      Easing
	log         zerolog.Logger
}

func newIndicator(opts ...Option) *Indicator {
	ind := &Indicator{
		rng: NewRangeModel(),
		style: StyleConfig{
			BackgroundColor: color.Transparent,
			ProgressColor:   color.Transparent,
		},
		invalidator: InvalidateFunc(func() {}),
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(ind)
	}
	ind.transition = NewTransition(ind.clock, ind.scheduler, ind.easing, ind.onFrame)
	return ind
}

func (ind *Indicator) onFrame(v float64) {
	ind.rng.SetValue(v)
	ind.invalidator.Invalidate()
}

func (ind *Indicator) reject(option string, v float64) {
	ind.log.Debug().
		Str("option", option).
		Float64("value", v).
		Float64("min", ind.rng.Min()).
		Float64("max", ind.rng.Max()).
		Msg("rejected")
}

// Min returns the lower bound of the range.
func (ind *Indicator) Min() float64 { return ind.rng.Min() }

// Max returns the upper bound of the range.
func (ind *Indicator) Max() float64 { return ind.rng.Max() }

// SetMin changes the lower bound; ignored unless it stays below Max.
func (ind *Indicator) SetMin(v float64) bool {
	return ind.SetRange(v, ind.rng.Max())
}

// SetMax changes the upper bound; ignored unless it stays above Min.
func (ind *Indicator) SetMax(v float64) bool {
	return ind.SetRange(ind.rng.Min(), v)
}

// SetRange changes both bounds at once; ignored unless max > min.
// A transition in flight is canceled.
func (ind *Indicator) SetRange(min, max float64) bool {
	if !ind.rng.SetRange(min, max) {
		ind.reject("range", max-min)
		return false
	}
	ind.transition.Cancel()
	ind.invalidator.Invalidate()
	return true
}

// Progress returns the displayed value, which trails the target while a
// transition runs.
func (ind *Indicator) Progress() float64 { return ind.rng.Value() }

// Target returns the value the indicator is heading to.
func (ind *Indicator) Target() float64 {
	if ind.transition.State() == Running {
		return ind.transition.Target()
	}
	return ind.rng.Value()
}

// Percent returns the displayed value as a percentage of the range.
func (ind *Indicator) Percent() float64 { return ind.rng.Percent() }

// Animating reports whether a transition is running.
func (ind *Indicator) Animating() bool { return ind.transition.State() == Running }

// SetProgress moves the indicator to v. Values outside [Min, Max] are
// ignored. With animation enabled the change runs from the displayed value
// over AnimationDuration, replacing any transition in flight.
func (ind *Indicator) SetProgress(v float64) bool {
	if !ind.rng.Contains(v) {
		ind.reject("progress", v)
		return false
	}
	if ind.animate {
		ind.transition.Start(ind.rng.Value(), v, ind.duration)
		return true
	}
	ind.transition.Cancel()
	ind.rng.SetValue(v)
	ind.invalidator.Invalidate()
	return true
}

// BackgroundLineWidth returns the track thickness.
func (ind *Indicator) BackgroundLineWidth() float64 { return ind.style.BackgroundThickness }

// SetBackgroundLineWidth sets the track thickness; negative or infinite widths are ignored.
func (ind *Indicator) SetBackgroundLineWidth(w float64) bool {
	if !(w >= 0) || math.IsInf(w, 1) {
		ind.reject("backgroundLineWidth", w)
		return false
	}
	ind.style.BackgroundThickness = w
	ind.invalidator.Invalidate()
	return true
}

// ProgressLineWidth returns the filled line thickness.
func (ind *Indicator) ProgressLineWidth() float64 { return ind.style.ProgressThickness }

// SetProgressLineWidth sets the filled line thickness; negative or infinite widths are ignored.
func (ind *Indicator) SetProgressLineWidth(w float64) bool {
	if !(w >= 0) || math.IsInf(w, 1) {
		ind.reject("progressLineWidth", w)
		return false
	}
	ind.style.ProgressThickness = w
	ind.invalidator.Invalidate()
	return true
}

// BackgroundLineColor returns the track color.
func (ind *Indicator) BackgroundLineColor() color.Color { return ind.style.BackgroundColor }

// SetBackgroundLineColor sets the track color. nil means transparent.
func (ind *Indicator) SetBackgroundLineColor(c color.Color) {
	if c == nil {
		c = color.Transparent
	}
	ind.style.BackgroundColor = c
	ind.invalidator.Invalidate()
}

// ProgressLineColor returns the filled line color.
func (ind *Indicator) ProgressLineColor() color.Color { return ind.style.ProgressColor }

// SetProgressLineColor sets the filled line color. nil means transparent.
func (ind *Indicator) SetProgressLineColor(c color.Color) {
	if c == nil {
		c = color.Transparent
	}
	ind.style.ProgressColor = c
	ind.invalidator.Invalidate()
}

// LineMode returns the cap style.
func (ind *Indicator) LineMode() CapStyle { return ind.style.Cap }

// SetLineMode sets the cap style of both lines.
func (ind *Indicator) SetLineMode(c CapStyle) {
	ind.style.Cap = c
	ind.invalidator.Invalidate()
}

// AnimateProgress reports whether value changes are animated.
func (ind *Indicator) AnimateProgress() bool { return ind.animate }

// SetAnimateProgress turns animated value changes on or off. Turning it off
// leaves a running transition to finish.
func (ind *Indicator) SetAnimateProgress(on bool) {
	ind.animate = on
	ind.invalidator.Invalidate()
}

// AnimationDuration returns the transition length.
func (ind *Indicator) AnimationDuration() time.Duration { return ind.duration }

// SetAnimationDuration sets the transition length. Zero or negative
// durations make updates apply at once.
func (ind *Indicator) SetAnimationDuration(d time.Duration) {
	ind.duration = d
	ind.invalidator.Invalidate()
}

// Style returns a copy of the current drawing configuration.
func (ind *Indicator) Style() StyleConfig { return ind.style }

// Segments resolves the background and foreground lines for r.
func (ind *Indicator) Segments(r Rect) (background, foreground Segment) {
	return Resolve(r, ind.style, ind.rng.Percent())
}

// Measure returns the size the indicator wants out of proposed.
func (ind *Indicator) Measure(proposed Size, insets Insets) Size {
	return Measure(proposed, insets, ind.style)
}

// Draw paints the track and then the filled line so the latter stays on top.
func (ind *Indicator) Draw(l Layout, s Surface) {
	bg, fg := ind.Segments(l.Bounds())
	s.DrawLine(bg, ind.style.BackgroundThickness, ind.style.BackgroundColor, ind.style.Cap)
	s.DrawLine(fg, ind.style.ProgressThickness, ind.style.ProgressColor, ind.style.Cap)
}

func (ind *Indicator) setOrientation(o Orientation) {
	ind.style.Orientation = o
	ind.invalidator.Invalidate()
}

func (ind *Indicator) setReverse(on bool) {
	ind.style.Reverse = on
	ind.invalidator.Invalidate()
}
