package interest

import (
	"sync"
	"time"
)

// Clock records the wall-clock time of the most recent calculation. Nothing
// in the calculators reads it back; it exists as an audit marker for hosts
// to report. Safe for concurrent use.
type Clock struct {
	mu      sync.Mutex
	now     func() time.Time
	last    time.Time
	stamped bool
}

// NewClock creates a clock backed by the system time.
func NewClock() *Clock {
	return NewClockWithNow(time.Now)
}

// NewClockWithNow creates a clock that reads the current time from now.
// Tests substitute a deterministic source.
func NewClockWithNow(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Stamp records the current time as the moment of the latest calculation.
func (c *Clock) Stamp() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = c.now()
	c.stamped = true
}

// Last returns the time of the most recent calculation. The boolean is
// false until the first calculation runs.
func (c *Clock) Last() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.stamped
}
