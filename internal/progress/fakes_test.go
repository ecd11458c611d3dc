package progress

import (
	"image/color"
	"sort"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock { return &fakeClock{now: epoch} }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

// fakeScheduler queues frame callbacks until fire is called.
type fakeScheduler struct {
	nextID   int
	pending  map[int]func(time.Time)
	requests int
	// ignoreCancel keeps canceled callbacks queued to mimic a host that
	// cannot retract a frame request.
	ignoreCancel bool
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{pending: make(map[int]func(time.Time))}
}

func (s *fakeScheduler) NextFrame(fn func(time.Time)) func() {
	id := s.nextID
	s.nextID++
	s.requests++
	s.pending[id] = fn
	return func() {
		if !s.ignoreCancel {
			delete(s.pending, id)
		}
	}
}

// fire runs every queued callback with now and returns how many ran.
func (s *fakeScheduler) fire(now time.Time) int {
	queued := s.pending
	s.pending = make(map[int]func(time.Time))

	ids := make([]int, 0, len(queued))
	for id := range queued {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		queued[id](now)
	}
	return len(ids)
}

type drawCall struct {
	seg       Segment
	thickness float64
	color     color.Color
	cap       CapStyle
}

type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) DrawLine(seg Segment, thickness float64, c color.Color, capStyle CapStyle) {
	s.calls = append(s.calls, drawCall{seg: seg, thickness: thickness, color: c, cap: capStyle})
}

type countingInvalidator struct {
	count int
}

func (c *countingInvalidator) Invalidate() { c.count++ }
