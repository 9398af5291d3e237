package sched

import (
	"sync"
	"testing"
)

func TestPostRunsOnTickInOrder(t *testing.T) {
	s := New()
	var got []int
	for i := 0; i < 3; i++ {
		i := i
		if !s.Post(func() { got = append(got, i) }) {
			t.Fatalf("Post %d failed", i)
		}
	}
	if len(got) != 0 {
		t.Fatal("callbacks ran before Tick")
	}

	s.Tick(1)
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("unexpected order %v", got)
	}
	if s.Pending() != 0 {
		t.Fatalf("expected empty mailbox, got %d", s.Pending())
	}
}

func TestPostFromGoroutines(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	n := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Post(func() { n++ })
		}()
	}
	wg.Wait()
	s.Tick(0)
	if n != 16 {
		t.Fatalf("expected 16 callbacks, got %d", n)
	}
}

func TestPostFull(t *testing.T) {
	s := New()
	for i := 0; i < mailboxSlots; i++ {
		if !s.Post(func() {}) {
			t.Fatalf("Post %d unexpectedly failed", i)
		}
	}
	if s.Post(func() {}) {
		t.Fatal("expected Post to fail when mailbox is full")
	}
	if s.Post(nil) {
		t.Fatal("expected nil callback to be rejected")
	}
}

func TestAfterFiresOnce(t *testing.T) {
	s := New()
	s.Tick(100)

	fired := 0
	tm := s.After(1000, func() { fired++ })
	if tm.Deadline() != 1100 {
		t.Fatalf("expected deadline 1100, got %d", tm.Deadline())
	}

	s.Tick(1099)
	if fired != 0 || !tm.Active() {
		t.Fatal("timer fired early")
	}
	s.Tick(1100)
	if fired != 1 || tm.Active() {
		t.Fatalf("expected one fire, got %d", fired)
	}
	s.Tick(5000)
	if fired != 1 {
		t.Fatalf("timer fired again: %d", fired)
	}
}

func TestCancel(t *testing.T) {
	s := New()
	fired := false
	tm := s.After(10, func() { fired = true })
	if !tm.Cancel() {
		t.Fatal("expected Cancel to report pending timer")
	}
	if tm.Cancel() {
		t.Fatal("second Cancel should report false")
	}
	s.Tick(20)
	if fired {
		t.Fatal("cancelled timer fired")
	}
	var nilTimer *Timer
	if nilTimer.Cancel() || nilTimer.Active() {
		t.Fatal("nil timer should be inert")
	}
}

func TestDueTimersRunInDeadlineOrder(t *testing.T) {
	s := New()
	var got []string
	s.After(30, func() { got = append(got, "c") })
	var b *Timer
	s.After(10, func() {
		got = append(got, "a")
		b.Cancel()
	})
	b = s.After(20, func() { got = append(got, "b") })

	s.Tick(50)
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestTickNeverGoesBackwards(t *testing.T) {
	s := New()
	s.Tick(500)
	s.Tick(100)
	if s.Now() != 500 {
		t.Fatalf("expected 500, got %d", s.Now())
	}
}
