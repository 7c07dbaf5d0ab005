package histz

import (
	"sync/atomic"
	"time"

	"github.com/zoobzio/clockz"
)

// FillMetrics is a snapshot of a Registry's fill activity.
type FillMetrics struct {
	Fills    uint64        // accepted Fill1D/Fill2D calls
	Rejected uint64        // soft-failed fill calls
	Rows     uint64        // rows passed to accepted fills, in range or not
	FillTime time.Duration // cumulative time spent in accepted fills
}

// counter is a monotonically increasing event count.
type counter struct {
	value atomic.Uint64
}

func (c *counter) inc() { c.value.Add(1) }

func (c *counter) add(n int) {
	if n <= 0 {
		return
	}
	c.value.Add(uint64(n))
}

func (c *counter) get() uint64 { return c.value.Load() }

// timer accumulates durations measured against an injectable clock.
type timer struct {
	clock clockz.Clock
	total atomic.Int64
}

func newTimer(clock clockz.Clock) *timer {
	return &timer{clock: clock}
}

// start returns a stopwatch that records into t when stopped.
func (t *timer) start() stopwatch {
	return stopwatch{start: t.clock.Now(), timer: t}
}

func (t *timer) get() time.Duration { return time.Duration(t.total.Load()) }

type stopwatch struct {
	start time.Time
	timer *timer
}

// stop records the elapsed time since start.
func (s stopwatch) stop() {
	s.timer.total.Add(int64(s.timer.clock.Now().Sub(s.start)))
}

// instruments holds a Registry's fill counters.
type instruments struct {
	fills    counter
	rejected counter
	rows     counter
	fillTime *timer
}

func newInstruments(clock clockz.Clock) *instruments {
	return &instruments{fillTime: newTimer(clock)}
}

func (in *instruments) snapshot() FillMetrics {
	return FillMetrics{
		Fills:    in.fills.get(),
		Rejected: in.rejected.get(),
		Rows:     in.rows.get(),
		FillTime: in.fillTime.get(),
	}
}
