package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emitted struct {
	values []float64
}

func (e *emitted) record(v float64) { e.values = append(e.values, v) }

func (e *emitted) last() float64 { return e.values[len(e.values)-1] }

func TestTransition_LinearSamples(t *testing.T) {
	clock := newFakeClock()
	sched := newFakeScheduler()
	out := &emitted{}
	tr := NewTransition(clock, sched, nil, out.record)

	tr.Start(0, 100, time.Second)
	require.Equal(t, Running, tr.State())

	sched.fire(clock.at(0))
	assert.Equal(t, 0.0, out.last())

	sched.fire(clock.at(500))
	assert.InDelta(t, 50, out.last(), 1e-9)
	assert.Equal(t, Running, tr.State())

	sched.fire(clock.at(1000))
	assert.Equal(t, 100.0, out.last())
	assert.Equal(t, Idle, tr.State())
	assert.Empty(t, sched.pending, "no frames requested after completion")
}

func TestTransition_LateFrameEndsExactly(t *testing.T) {
	clock := newFakeClock()
	sched := newFakeScheduler()
	out := &emitted{}
	tr := NewTransition(clock, sched, nil, out.record)

	tr.Start(13, 87.3, 250*time.Millisecond)
	sched.fire(clock.at(5000))

	if out.last() != 87.3 {
		t.Errorf("expected exact end value 87.3, got %v", out.last())
	}
	if tr.State() != Idle {
		t.Errorf("expected Idle, got %v", tr.State())
	}
	if sched.fire(clock.at(6000)) != 0 {
		t.Error("expected no further frames")
	}
}

func TestTransition_DegenerateStartsApplyImmediately(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		d        time.Duration
	}{
		{name: "zero duration", from: 0, to: 60, d: 0},
		{name: "negative duration", from: 0, to: 60, d: -time.Second},
		{name: "same value", from: 60, to: 60, d: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched := newFakeScheduler()
			out := &emitted{}
			tr := NewTransition(newFakeClock(), sched, nil, out.record)

			tr.Start(tt.from, tt.to, tt.d)

			assert.Equal(t, []float64{60}, out.values)
			assert.Equal(t, Idle, tr.State())
			assert.Zero(t, sched.requests)
		})
	}
}

func TestTransition_NilSchedulerAppliesImmediately(t *testing.T) {
	out := &emitted{}
	tr := NewTransition(nil, nil, nil, out.record)

	tr.Start(0, 40, time.Second)

	assert.Equal(t, []float64{40}, out.values)
	assert.Equal(t, Idle, tr.State())
}

func TestTransition_CancelLeavesValue(t *testing.T) {
	clock := newFakeClock()
	sched := newFakeScheduler()
	out := &emitted{}
	tr := NewTransition(clock, sched, nil, out.record)

	tr.Start(0, 100, time.Second)
	sched.fire(clock.at(300))
	tr.Cancel()

	assert.Equal(t, Idle, tr.State())
	assert.InDelta(t, 30, tr.Value(), 1e-9)
	assert.Empty(t, sched.pending)
	assert.Len(t, out.values, 1)
}

func TestTransition_StaleCallbackIgnored(t *testing.T) {
	clock := newFakeClock()
	sched := newFakeScheduler()
	sched.ignoreCancel = true
	out := &emitted{}
	tr := NewTransition(clock, sched, nil, out.record)

	tr.Start(0, 100, time.Second)
	tr.Cancel()
	sched.fire(clock.at(500))

	assert.Empty(t, out.values)
	assert.Equal(t, Idle, tr.State())
}

func TestTransition_RestartCancelsPrevious(t *testing.T) {
	clock := newFakeClock()
	sched := newFakeScheduler()
	out := &emitted{}
	tr := NewTransition(clock, sched, nil, out.record)

	tr.Start(0, 100, time.Second)
	sched.fire(clock.at(400))
	require.InDelta(t, 40, tr.Value(), 1e-9)

	clock.now = clock.at(400)
	tr.Start(tr.Value(), 0, time.Second)
	assert.Len(t, sched.pending, 1, "only the new transition is subscribed")

	sched.fire(clock.at(900))
	assert.InDelta(t, 20, out.last(), 1e-9)
	assert.Equal(t, 0.0, tr.Target())
}

func TestTransition_TimeNeverRunsBackwards(t *testing.T) {
	clock := newFakeClock()
	sched := newFakeScheduler()
	out := &emitted{}
	tr := NewTransition(clock, sched, nil, out.record)

	tr.Start(0, 100, time.Second)
	sched.fire(clock.at(600))
	sched.fire(clock.at(200))

	require.Len(t, out.values, 2)
	assert.GreaterOrEqual(t, out.values[1], out.values[0])
}

func TestTransition_ValuesStayBetweenEndpoints(t *testing.T) {
	overshoot := func(f float64) float64 { return f*2 - 0.5 }
	clock := newFakeClock()
	sched := newFakeScheduler()
	out := &emitted{}
	tr := NewTransition(clock, sched, overshoot, out.record)

	tr.Start(80, 20, time.Second)
	for ms := 0; ms <= 1000; ms += 50 {
		sched.fire(clock.at(ms))
	}

	for _, v := range out.values {
		if v < 20 || v > 80 {
			t.Errorf("value %v escaped [20, 80]", v)
		}
	}
	assert.Equal(t, 20.0, out.last())
}

func TestEasings(t *testing.T) {
	for _, name := range []string{"linear", "out-quad", "IN-OUT-CUBIC", ""} {
		e, err := ParseEasing(name)
		require.NoError(t, err, name)
		assert.InDelta(t, 0, e(0), 1e-12, name)
		assert.InDelta(t, 1, e(1), 1e-12, name)
	}
	_, err := ParseEasing("bounce")
	assert.Error(t, err)
	assert.InDelta(t, 0.5, EaseInOutCubic(0.5), 1e-12)
	assert.InDelta(t, 0.75, EaseOutQuad(0.5), 1e-12)
}
