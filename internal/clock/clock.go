package clock

import "time"

// Clock reports seconds elapsed since it started. It starts on the first read (or Start)
// and is never paused or reset. Readings never go backwards, even if the time source does.
type Clock struct {
	now     func() time.Time
	start   time.Time
	started bool
	last    float64
}

// New returns a clock backed by time.Now (monotonic reading).
func New() *Clock {
	return NewWithSource(time.Now)
}

// NewWithSource returns a clock that reads time from now. Used by tests to drive elapsed time.
func NewWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Start begins counting if the clock has not started yet. Calling it again has no effect.
func (c *Clock) Start() {
	if c.started {
		return
	}
	c.start = c.now()
	c.started = true
}

// Running reports whether the clock has started.
func (c *Clock) Running() bool {
	return c.started
}

// ElapsedTime returns seconds since start, starting the clock on first call (first reading is 0).
func (c *Clock) ElapsedTime() float64 {
	if !c.started {
		c.Start()
		return 0
	}
	elapsed := c.now().Sub(c.start).Seconds()
	if elapsed < c.last {
		return c.last
	}
	c.last = elapsed
	return elapsed
}
