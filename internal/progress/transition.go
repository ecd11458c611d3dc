package progress

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// State is the lifecycle state of a Transition.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	default:
		return "Unknown"
	}
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// FrameScheduler delivers per-frame callbacks. NextFrame arranges for fn to
// run once on the next frame; the returned cancel drops the request if it
// has not fired yet. Callbacks must run on the same logical thread as every
// other call into the indicator.
type FrameScheduler interface {
	NextFrame(fn func(now time.Time)) (cancel func())
}

// Easing maps the elapsed fraction of a transition in [0, 1] to the
// interpolation fraction.
type Easing func(fraction float64) float64

// Linear is the default easing.
func Linear(f float64) float64 { return f }

// EaseOutQuad decelerates towards the target.
func EaseOutQuad(f float64) float64 { return 1 - (1-f)*(1-f) }

// EaseInOutCubic accelerates then decelerates.
func EaseInOutCubic(f float64) float64 {
	if f < 0.5 {
		return 4 * f * f * f
	}
	g := -2*f + 2
	return 1 - g*g*g/2
}

// ParseEasing looks up an easing by name: linear, out-quad or in-out-cubic.
func ParseEasing(name string) (Easing, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return Linear, nil
	case "out-quad":
		return EaseOutQuad, nil
	case "in-out-cubic":
		return EaseInOutCubic, nil
	default:
		return nil, fmt.Errorf("invalid easing %q (valid: linear, out-quad, in-out-cubic)", name)
	}
}

// Transition animates a value from one number to another over a duration.
// Each frame's value is handed to the emit callback. Only one transition is
// active at a time: Start cancels the one in flight.
type Transition struct {
	clock     Clock
	scheduler FrameScheduler
	easing    Easing
	emit      func(float64)

	state     State
	from, to  float64
	duration  time.Duration
	startTime time.Time
	lastFrame time.Time
	value     float64

	cancelFrame func()
	generation  uint64
}

// NewTransition creates an idle transition. A nil scheduler makes every
// Start apply its target immediately; nil clock and easing fall back to
// SystemClock and Linear.
func NewTransition(clock Clock, scheduler FrameScheduler, easing Easing, emit func(float64)) *Transition {
	if clock == nil {
		clock = SystemClock
	}
	if easing == nil {
		easing = Linear
	}
	if emit == nil {
		emit = func(float64) {}
	}
	return &Transition{
		clock:     clock,
		scheduler: scheduler,
		easing:    easing,
		emit:      emit,
	}
}

// State reports whether the transition is idle or running.
func (t *Transition) State() State { return t.state }

// Value returns the last emitted value.
func (t *Transition) Value() float64 { return t.value }

// Target returns the end value of the last started transition.
func (t *Transition) Target() float64 { return t.to }

// Start begins animating from `from` to `to` over d. A running transition
// is canceled first. When d <= 0 or from == to the target is emitted at
// once and the transition stays idle.
func (t *Transition) Start(from, to float64, d time.Duration) {
	t.Cancel()
	t.from, t.to = from, to

	if d <= 0 || from == to || t.scheduler == nil {
		t.publish(to)
		return
	}

	t.state = Running
	t.duration = d
	t.startTime = t.clock.Now()
	t.lastFrame = t.startTime
	t.value = from
	t.schedule()
}

// Cancel stops a running transition where it is. No final value is emitted.
func (t *Transition) Cancel() {
	if t.state != Running {
		return
	}
	t.state = Idle
	t.generation++
	if t.cancelFrame != nil {
		t.cancelFrame()
		t.cancelFrame = nil
	}
}

func (t *Transition) schedule() {
	gen := t.generation
	t.cancelFrame = t.scheduler.NextFrame(func(now time.Time) {
		// A scheduler may still deliver a callback it was asked to drop.
		if gen != t.generation || t.state != Running {
			return
		}
		t.frame(now)
	})
}

func (t *Transition) frame(now time.Time) {
	t.cancelFrame = nil
	if now.Before(t.lastFrame) {
		now = t.lastFrame
	}
	t.lastFrame = now

	fraction := float64(now.Sub(t.startTime)) / float64(t.duration)
	if fraction >= 1 {
		t.state = Idle
		t.generation++
		t.publish(t.to)
		return
	}
	if fraction < 0 {
		fraction = 0
	}

	gen := t.generation
	v := t.from + (t.to-t.from)*t.easing(fraction)
	t.publish(between(v, t.from, t.to))

	// The emit callback may have canceled or restarted us.
	if gen == t.generation && t.state == Running {
		t.schedule()
	}
}

func (t *Transition) publish(v float64) {
	t.value = v
	t.emit(v)
}

func between(v, a, b float64) float64 {
	lo, hi := math.Min(a, b), math.Max(a, b)
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
