package core

import "time"

// Clock reports elapsed time in seconds. Games read it once per tick so a
// run can be replayed with a ManualClock.
type Clock interface {
	Now() float64
}

// SystemClock measures wall time since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a wall clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns seconds since NewSystemClock.
func (c *SystemClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock only moves when told to.
type ManualClock struct {
	now float64
}

// Now returns the current reading.
func (c *ManualClock) Now() float64 {
	return c.now
}

// Advance moves the clock forward by d seconds.
func (c *ManualClock) Advance(d float64) {
	c.now += d
}

// Set moves the clock to an absolute reading.
func (c *ManualClock) Set(now float64) {
	c.now = now
}
