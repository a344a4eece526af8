package piano

import (
	"sort"
	"time"
)

// ManualClock is a Scheduler driven by Advance instead of wall time.
// Callbacks fire in due order; ties fire in scheduling order.
type ManualClock struct {
	now     time.Duration
	seq     int
	pending []pendingTask
}

type pendingTask struct {
	due time.Duration
	seq int
	fn  func()
}

// After schedules fn at now+d.
func (c *ManualClock) After(d time.Duration, fn func()) {
	c.seq++
	c.pending = append(c.pending, pendingTask{due: c.now + d, seq: c.seq, fn: fn})
}

// Now returns the elapsed virtual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Pending returns the number of callbacks not yet fired.
func (c *ManualClock) Pending() int {
	return len(c.pending)
}

// Advance moves time forward by d and runs every callback that became due.
func (c *ManualClock) Advance(d time.Duration) {
	target := c.now + d
	for {
		sort.SliceStable(c.pending, func(i, j int) bool {
			if c.pending[i].due != c.pending[j].due {
				return c.pending[i].due < c.pending[j].due
			}
			return c.pending[i].seq < c.pending[j].seq
		})
		if len(c.pending) == 0 || c.pending[0].due > target {
			break
		}
		task := c.pending[0]
		c.pending = c.pending[1:]
		c.now = task.due
		task.fn()
	}
	c.now = target
}
