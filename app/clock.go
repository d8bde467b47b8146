// SPDX-License-Identifier: Unlicense OR MIT

package app

import "time"

// clock is the absolute time source for the pump. It is built on the
// runtime's monotonic reading, so wall clock adjustments never
// affect frame pacing. Reported time is non-decreasing except across
// an explicit setNow.
type clock struct {
	origin time.Time
	offset time.Duration
	last   time.Duration
}

func (c *clock) reset() {
	c.origin = time.Now()
	c.offset = 0
	c.last = 0
}

// now returns the time since the pump started, adjusted by setNow.
func (c *clock) now() time.Duration {
	t := time.Since(c.origin) + c.offset
	if t < c.last {
		t = c.last
	}
	c.last = t
	return t
}

// setNow rebases the clock so that the next call to now returns t.
func (c *clock) setNow(t time.Duration) {
	c.origin = time.Now()
	c.offset = t
	c.last = t
}
