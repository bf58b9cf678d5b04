package stub

import (
	"sync"
	"time"
)

// TimestampLayout is ISO-8601 local time with microseconds and no zone
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Clock issues timestamps that never go backwards, even if the wall clock does
type Clock struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

// NewClock returns a clock backed by time.Now
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Now returns the current wall time, or the last issued time if that is later
func (c *Clock) Now() time.Time {
	// Round(0) drops the monotonic reading so comparisons use wall time.
	t := c.now().Round(0)

	c.mu.Lock()
	defer c.mu.Unlock()

	if t.Before(c.last) {
		t = c.last
	}
	c.last = t
	return t
}

// Timestamp formats Now with TimestampLayout
func (c *Clock) Timestamp() string {
	return c.Now().Format(TimestampLayout)
}
