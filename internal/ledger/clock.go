package ledger

import "time"

// Clock supplies the current instant to the ledger.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. Readings carry Go's monotonic component,
// so Sub between two of them is not affected by wall clock adjustments.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to.
type ManualClock struct {
	now time.Time
}

// NewManualClock returns a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock by d. Negative values move it backwards.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set pins the clock to t.
func (c *ManualClock) Set(t time.Time) {
	c.now = t
}
