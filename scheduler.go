package fab

import (
	"sort"
	"time"
)

// Clock provides time for the scheduler. Tests inject a fake clock to
// control delayed redraws deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock is the default Clock backed by time.Now.
var SystemClock Clock = realClock{}

type scheduledTask struct {
	due time.Time
	seq uint64
	fn  func()
}

// Scheduler is a single-threaded task queue. Frame handlers post "run again"
// work into it and the host drains due tasks once per tick. There is no
// locking: every method must be called from the UI goroutine.
type Scheduler struct {
	clock Clock
	tasks []scheduledTask
	ready []scheduledTask
	seq   uint64
}

// NewScheduler creates a scheduler. A nil clock means SystemClock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock
	}
	return &Scheduler{clock: clock}
}

// Post queues fn to run on the next RunDue.
func (s *Scheduler) Post(fn func()) {
	s.PostDelayed(fn, 0)
}

// PostDelayed queues fn to run on the first RunDue at least d from now.
// Negative delays are treated as zero.
func (s *Scheduler) PostDelayed(fn func(), d time.Duration) {
	if fn == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	s.seq++
	s.tasks = append(s.tasks, scheduledTask{due: s.clock.Now().Add(d), seq: s.seq, fn: fn})
}

// RunDue runs every task whose due time has passed, earliest first and in
// posting order for equal due times. Tasks posted by a running task wait for
// the next call. Returns the number of tasks run.
func (s *Scheduler) RunDue() int {
	if len(s.tasks) == 0 {
		return 0
	}
	now := s.clock.Now()
	s.ready = s.ready[:0]
	pending := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.due.After(now) {
			s.ready = append(s.ready, t)
		} else {
			pending = append(pending, t)
		}
	}
	// Clear the tail so finished closures can be collected.
	for i := len(pending); i < len(s.tasks); i++ {
		s.tasks[i] = scheduledTask{}
	}
	s.tasks = pending

	sort.SliceStable(s.ready, func(i, j int) bool {
		if s.ready[i].due.Equal(s.ready[j].due) {
			return s.ready[i].seq < s.ready[j].seq
		}
		return s.ready[i].due.Before(s.ready[j].due)
	})
	run := len(s.ready)
	batch := s.ready
	s.ready = nil
	for i := range batch {
		batch[i].fn()
		batch[i] = scheduledTask{}
	}
	s.ready = batch[:0]
	return run
}

// Pending returns the number of queued tasks.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// NextDue returns the due time of the earliest queued task.
func (s *Scheduler) NextDue() (time.Time, bool) {
	if len(s.tasks) == 0 {
		return time.Time{}, false
	}
	next := s.tasks[0].due
	for _, t := range s.tasks[1:] {
		if t.due.Before(next) {
			next = t.due
		}
	}
	return next, true
}
