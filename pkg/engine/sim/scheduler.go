package sim

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultResolution is how often Run samples the wall clock.
	DefaultResolution = 50 * time.Millisecond
	// DefaultMaxStep bounds the wall time a single Run step may feed into the
	// clock, so a stalled process does not replay a burst of ticks.
	DefaultMaxStep = time.Second
)

// TaskFunc is called with the simulated time the task was due at and the
// task's interval.
type TaskFunc func(now time.Time, dt time.Duration)

type task struct {
	name      string
	interval  time.Duration
	next      time.Duration // clock elapsed time of the next firing
	fn        TaskFunc
	cancelled bool
}

// Scheduler fires named periodic tasks against a Clock. Tasks due within one
// Advance are fired in time order; ties go to the task registered first.
type Scheduler struct {
	mu         sync.Mutex
	clock      *Clock
	tasks      []*task
	resolution time.Duration
	maxStep    time.Duration
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithResolution sets the wall-clock sampling period used by Run.
func WithResolution(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.resolution = d
		}
	}
}

// WithMaxStep sets the per-step elapsed clamp used by Run.
func WithMaxStep(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.maxStep = d
		}
	}
}

// NewScheduler returns a scheduler driving clock.
func NewScheduler(clock *Clock, opts ...Option) *Scheduler {
	s := &Scheduler{
		clock:      clock,
		resolution: DefaultResolution,
		maxStep:    DefaultMaxStep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Clock returns the clock this scheduler advances.
func (s *Scheduler) Clock() *Clock {
	return s.clock
}

// Every registers fn to run each interval of simulated time, first one
// interval from now. Registering an existing name replaces that task.
func (s *Scheduler) Every(name string, interval time.Duration, fn TaskFunc) {
	if interval <= 0 || fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(name)
	s.tasks = append(s.tasks, &task{
		name:     name,
		interval: interval,
		next:     s.clock.Elapsed() + interval,
		fn:       fn,
	})
}

// Cancel removes the named task. Unknown names are ignored.
func (s *Scheduler) Cancel(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(name)
}

func (s *Scheduler) cancelLocked(name string) {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.name == name {
			t.cancelled = true
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
}

// Reset cancels every task.
func (s *Scheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		t.cancelled = true
	}
	s.tasks = nil
}

// Tasks returns the names of the registered tasks in registration order.
func (s *Scheduler) Tasks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.tasks))
	for _, t := range s.tasks {
		names = append(names, t.name)
	}
	return names
}

func (s *Scheduler) Pause()       { s.clock.Pause() }
func (s *Scheduler) Resume()      { s.clock.Resume() }
func (s *Scheduler) Paused() bool { return s.clock.Paused() }

// Advance moves simulated time forward by d, firing every task that falls due
// on the way. Task callbacks run without the scheduler lock held, so they may
// register or cancel tasks. Advance does nothing while paused.
func (s *Scheduler) Advance(d time.Duration) {
	if d <= 0 || s.clock.Paused() {
		return
	}
	target := s.clock.Elapsed() + d

	for {
		// A callback may pause the clock; stop feeding time once it does.
		if s.clock.Paused() {
			return
		}

		s.mu.Lock()
		var due *task
		for _, t := range s.tasks {
			if t.next > target {
				continue
			}
			if due == nil || t.next < due.next {
				due = t
			}
		}
		if due == nil {
			s.mu.Unlock()
			break
		}
		at := due.next
		due.next += due.interval
		s.mu.Unlock()

		s.clock.advanceTo(at)
		s.mu.Lock()
		cancelled := due.cancelled
		s.mu.Unlock()
		if !cancelled {
			due.fn(s.clock.Now(), due.interval)
		}
	}

	s.clock.advanceTo(target)
}

// Run drives Advance from the wall clock until ctx is done. Each step feeds
// the wall time since the previous step, clamped to the max step.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.resolution)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			if elapsed > s.maxStep {
				elapsed = s.maxStep
			}
			s.Advance(elapsed)
		}
	}
}
