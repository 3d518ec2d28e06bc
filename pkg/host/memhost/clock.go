package memhost

import (
	"sort"
	"time"
)

// clock is a manually advanced timer queue. Timers fire in deadline order
// when the clock moves past them; repeating timers reschedule themselves.
type clock struct {
	now    time.Time
	timers []*memTimer
	seq    int
}

type memTimer struct {
	c        *clock
	at       time.Time
	interval time.Duration // zero for one-shot timers
	fn       func()
	seq      int
	stopped  bool
}

func newClock() clock {
	return clock{now: time.Unix(0, 0)}
}

func (c *clock) schedule(d, interval time.Duration, fn func()) *memTimer {
	c.seq++
	t := &memTimer{c: c, at: c.now.Add(d), interval: interval, fn: fn, seq: c.seq}
	c.timers = append(c.timers, t)
	return t
}

// advance moves time forward, firing due timers in deadline order. Callbacks
// may schedule or stop timers; newly scheduled timers fire within the same
// advance when they fall inside the window.
func (c *clock) advance(d time.Duration) {
	deadline := c.now.Add(d)
	for {
		next := c.nextDue(deadline)
		if next == nil {
			break
		}
		c.now = next.at
		if next.interval > 0 {
			next.at = next.at.Add(next.interval)
		} else {
			next.stopped = true
		}
		next.fn()
	}
	c.now = deadline
	c.compact()
}

// nextDue returns the earliest unstopped timer at or before deadline,
// breaking ties by scheduling order.
func (c *clock) nextDue(deadline time.Time) *memTimer {
	var best *memTimer
	for _, t := range c.timers {
		if t.stopped || t.at.After(deadline) {
			continue
		}
		if best == nil || t.at.Before(best.at) || (t.at.Equal(best.at) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (c *clock) compact() {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	c.timers = live
	sort.Slice(c.timers, func(i, j int) bool { return c.timers[i].at.Before(c.timers[j].at) })
}

// Stop implements host.Timer.
func (t *memTimer) Stop() { t.stopped = true }
