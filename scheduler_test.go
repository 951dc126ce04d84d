package fab

import (
	"reflect"
	"testing"
	"time"
)

func TestSchedulerRunsPostedTasks(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler(clock)
	var got []int
	s.Post(func() { got = append(got, 1) })
	s.Post(func() { got = append(got, 2) })

	if n := s.RunDue(); n != 2 {
		t.Errorf("RunDue = %d, want 2", n)
	}
	if !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("order = %v, want [1 2]", got)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", s.Pending())
	}
}

func TestSchedulerDelayedTasks(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler(clock)
	var got []string
	s.PostDelayed(func() { got = append(got, "late") }, 200*time.Millisecond)
	s.PostDelayed(func() { got = append(got, "early") }, 100*time.Millisecond)

	if n := s.RunDue(); n != 0 {
		t.Fatalf("RunDue before due = %d, want 0", n)
	}
	due, ok := s.NextDue()
	if !ok || !due.Equal(clock.Now().Add(100*time.Millisecond)) {
		t.Errorf("NextDue = %v, %v, want now+100ms", due, ok)
	}

	clock.Advance(100 * time.Millisecond)
	s.RunDue()
	if !reflect.DeepEqual(got, []string{"early"}) {
		t.Errorf("after 100ms = %v, want [early]", got)
	}

	clock.Advance(time.Second)
	s.RunDue()
	if !reflect.DeepEqual(got, []string{"early", "late"}) {
		t.Errorf("after 1.1s = %v, want [early late]", got)
	}
}

func TestSchedulerEarliestFirst(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler(clock)
	var got []string
	s.PostDelayed(func() { got = append(got, "b") }, 20*time.Millisecond)
	s.PostDelayed(func() { got = append(got, "a") }, 10*time.Millisecond)
	s.Post(func() { got = append(got, "now") })

	clock.Advance(time.Second)
	s.RunDue()
	if !reflect.DeepEqual(got, []string{"now", "a", "b"}) {
		t.Errorf("order = %v, want [now a b]", got)
	}
}

func TestSchedulerTasksPostedWhileRunningWait(t *testing.T) {
	s := NewScheduler(newFakeClock())
	runs := 0
	var again func()
	again = func() {
		runs++
		s.Post(again)
	}
	s.Post(again)

	s.RunDue()
	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", s.Pending())
	}
	s.RunDue()
	if runs != 2 {
		t.Errorf("runs = %d, want 2", runs)
	}
}

func TestSchedulerIgnoresNilAndClampsNegative(t *testing.T) {
	s := NewScheduler(newFakeClock())
	s.Post(nil)
	if s.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", s.Pending())
	}
	ran := false
	s.PostDelayed(func() { ran = true }, -time.Second)
	s.RunDue()
	if !ran {
		t.Error("negative delay should run immediately")
	}
}

func TestSchedulerNilClock(t *testing.T) {
	s := NewScheduler(nil)
	if s.clock != SystemClock {
		t.Error("nil clock should fall back to SystemClock")
	}
	if _, ok := s.NextDue(); ok {
		t.Error("NextDue on empty scheduler should report false")
	}
}
