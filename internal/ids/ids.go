// Package ids generates todo identifiers.
package ids

import (
	"sync"
	"time"
)

// Clock issues time-derived IDs (Unix milliseconds). Two calls within the same
// millisecond, or after the wall clock steps back, still get increasing IDs.
type Clock struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewClock returns a Clock reading time.Now.
func NewClock() *Clock { return &Clock{now: time.Now} }

// NextID returns the next ID, always greater than the previous one.
func (c *Clock) NextID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	id := now().UnixMilli()
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}

// Counter issues 1, 2, 3, ... after its starting value.
type Counter struct {
	mu   sync.Mutex
	last int64
}

// NewCounter returns a Counter whose first ID is start+1.
func NewCounter(start int64) *Counter { return &Counter{last: start} }

func (c *Counter) NextID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last++
	return c.last
}
