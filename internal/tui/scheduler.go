package tui

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const frameInterval = time.Second / 60

// frameMsg is delivered on every animation frame.
type frameMsg time.Time

// frameScheduler implements progress.FrameScheduler on top of the Bubble Tea
// event loop. Callbacks queue up until the next frameMsg; a tick is only
// scheduled while something is waiting for a frame.
type frameScheduler struct {
	interval time.Duration
	nextID   int
	pending  map[int]func(time.Time)
	ticking  bool
}

func newFrameScheduler(interval time.Duration) *frameScheduler {
	return &frameScheduler{
		interval: interval,
		pending:  make(map[int]func(time.Time)),
	}
}

// NextFrame implements progress.FrameScheduler.
func (s *frameScheduler) NextFrame(fn func(now time.Time)) func() {
	id := s.nextID
	s.nextID++
	s.pending[id] = fn
	return func() { delete(s.pending, id) }
}

// Pending returns the number of queued callbacks.
func (s *frameScheduler) Pending() int { return len(s.pending) }

// cmd returns a tick command when callbacks are waiting and no tick is
// already in flight.
func (s *frameScheduler) cmd() tea.Cmd {
	if s.ticking || len(s.pending) == 0 {
		return nil
	}
	s.ticking = true
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// fire runs every callback queued before the frame. Callbacks that request
// another frame wait for the next tick.
func (s *frameScheduler) fire(now time.Time) {
	s.ticking = false
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
}
