package hal

import (
	"sync/atomic"
	"time"
)

type hostTime struct {
	start time.Time
	now   func() time.Time
	last  atomic.Uint64
}

func newHostTime() *hostTime {
	return newHostTimeWithClock(time.Now)
}

func newHostTimeWithClock(clock func() time.Time) *hostTime {
	return &hostTime{start: clock(), now: clock}
}

// NowTick returns milliseconds since the HAL was created.
//
// The value never goes backwards even if the wall clock does.
func (t *hostTime) NowTick() uint64 {
	d := t.now().Sub(t.start)
	if d < 0 {
		d = 0
	}
	ms := uint64(d / time.Millisecond)
	for {
		last := t.last.Load()
		if ms <= last {
			return last
		}
		if t.last.CompareAndSwap(last, ms) {
			return ms
		}
	}
}
