// Package sim provides the simulated time source and the fixed-interval task
// scheduler that drive a running night.
package sim

import (
	"sync"
	"time"
)

// Clock is a pausable simulated clock. Its time is base plus the running time
// accumulated through Advance; while paused, Advance is a no-op.
type Clock struct {
	mu      sync.Mutex
	base    time.Time
	elapsed time.Duration
	paused  bool
}

// NewClock returns a running clock that starts at base.
func NewClock(base time.Time) *Clock {
	return &Clock{base: base}
}

// Now returns the current simulated time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.base.Add(c.elapsed)
}

// Elapsed returns the running time accumulated since the clock was created.
func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// Advance moves the clock forward by d unless it is paused. It reports whether
// time moved.
func (c *Clock) Advance(d time.Duration) bool {
	if d <= 0 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return false
	}
	c.elapsed += d
	return true
}

// advanceTo sets the elapsed running time to at, never moving backwards.
func (c *Clock) advanceTo(at time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if at > c.elapsed {
		c.elapsed = at
	}
}

func (c *Clock) Pause() {
	c.mu.Lock()
	c.paused = true
	c.mu.Unlock()
}

func (c *Clock) Resume() {
	c.mu.Lock()
	c.paused = false
	c.mu.Unlock()
}

// Paused reports whether the clock is currently stopped.
func (c *Clock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}
