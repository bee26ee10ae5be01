package mocks

import (
	"sync"
	"time"
)

// FakeClock is a manually advanced clock. Sleep advances the clock instead of blocking.
type FakeClock struct {
	now    time.Time
	sleeps []time.Duration
	mutex  sync.Mutex
}

// NewFakeClock creates a clock starting at start
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now returns the current fake time
func (c *FakeClock) Now() time.Time {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.now
}

// Sleep records d and advances the clock by it
func (c *FakeClock) Sleep(d time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

// Advance moves the clock forward without recording a sleep
func (c *FakeClock) Advance(d time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.now = c.now.Add(d)
}

// Sleeps returns the recorded sleep durations
func (c *FakeClock) Sleeps() []time.Duration {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	sleeps := make([]time.Duration, len(c.sleeps))
	copy(sleeps, c.sleeps)
	return sleeps
}
