// Package sched is the cooperative per-frame scheduler of the showcase.
//
// Everything that touches scene or UI state runs inside Tick, on the frame
// loop. Other goroutines hand work over with Post.
package sched

import (
	"sort"
	"sync"
)

// Scheduler runs posted callbacks and tick timers from the frame loop.
type Scheduler struct {
	mu    sync.Mutex
	inbox mailbox

	now    uint64
	seq    uint64
	timers []*Timer
}

// New creates a scheduler starting at tick 0.
func New() *Scheduler {
	return &Scheduler{}
}

// Post queues fn to run on the next Tick. It is safe to call from any
// goroutine and reports false when the mailbox is full.
func (s *Scheduler) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inbox.push(fn)
}

// Pending returns the number of queued callbacks.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inbox.len()
}

// Now returns the tick passed to the last Tick call.
func (s *Scheduler) Now() uint64 { return s.now }

// After arranges for fn to run once, at the first Tick at or past now+delay.
// It must be called from the frame loop.
func (s *Scheduler) After(delay uint64, fn func()) *Timer {
	s.seq++
	t := &Timer{s: s, deadline: s.now + delay, seq: s.seq, fn: fn, active: true}
	s.timers = append(s.timers, t)
	return t
}

// Tick advances the clock to now, drains the mailbox in FIFO order, then
// fires due timers in deadline order.
func (s *Scheduler) Tick(now uint64) {
	if now > s.now {
		s.now = now
	}

	for {
		s.mu.Lock()
		fn, ok := s.inbox.pop()
		s.mu.Unlock()
		if !ok {
			break
		}
		fn()
	}

	s.fireDue()
}

func (s *Scheduler) fireDue() {
	var due []*Timer
	keep := s.timers[:0]
	for _, t := range s.timers {
		switch {
		case !t.active:
		case t.deadline <= s.now:
			due = append(due, t)
		default:
			keep = append(keep, t)
		}
	}
	for i := len(keep); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = keep

	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline != due[j].deadline {
			return due[i].deadline < due[j].deadline
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		// An earlier callback in this batch may have cancelled t.
		if !t.active {
			continue
		}
		t.active = false
		if t.fn != nil {
			t.fn()
		}
	}
}

// Timer is a one-shot deferred callback.
type Timer struct {
	s        *Scheduler
	deadline uint64
	seq      uint64
	fn       func()
	active   bool
}

// Cancel stops the timer. It reports whether the timer was still pending.
func (t *Timer) Cancel() bool {
	if t == nil || !t.active {
		return false
	}
	t.active = false
	return true
}

// Active reports whether the timer has neither fired nor been cancelled.
func (t *Timer) Active() bool { return t != nil && t.active }

// Deadline returns the tick at which the timer fires.
func (t *Timer) Deadline() uint64 {
	if t == nil {
		return 0
	}
	return t.deadline
}
