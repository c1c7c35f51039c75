// Package testutils provides test doubles shared across engine packages,
// chiefly the virtual clock that drives scheduler tests without real waits.
package testutils

import (
	"sort"
	"sync"
	"time"

	"github.com/offbook/offbook/pkg/ports"
)

// Clock is a manually advanced ports.Clock. Timers fire synchronously inside
// Advance, on the caller's goroutine, ordered by deadline and then by
// scheduling order, so event sequences in tests are fully deterministic.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	clock    *Clock
	deadline time.Time
	seq      int
	fn       func()
	stopped  bool
	fired    bool
}

// NewClock creates a virtual clock frozen at start.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current virtual time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc registers fn to run once virtual time reaches now+d.
func (c *Clock) AfterFunc(d time.Duration, fn func()) ports.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{
		clock:    c,
		deadline: c.now.Add(d),
		seq:      c.seq,
		fn:       fn,
	}
	c.seq++
	c.timers = append(c.timers, t)
	return t
}

// Stop cancels the timer if it has not fired yet.
func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves virtual time forward by d, firing every due timer in
// (deadline, scheduling) order. Callbacks run without the clock lock held,
// so they may schedule further timers; newly due ones fire within the same
// Advance call. Advance(0) fires timers scheduled with a zero delay.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()

	for {
		t := c.popDue()
		if t == nil {
			return
		}
		t.fn()
	}
}

// popDue removes and returns the earliest unfired, unstopped timer whose
// deadline has passed, marking it fired.
func (c *Clock) popDue() *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.fired && !t.stopped && !t.deadline.After(c.now) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline.Equal(due[j].deadline) {
			return due[i].seq < due[j].seq
		}
		return due[i].deadline.Before(due[j].deadline)
	})
	due[0].fired = true
	return due[0]
}

// Pending returns how many timers are armed but not yet fired or stopped.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}
