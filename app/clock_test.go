// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"testing"
	"time"
)

func TestClockMonotonic(t *testing.T) {
	var c clock
	c.reset()
	prev := c.now()
	for i := 0; i < 100; i++ {
		now := c.now()
		if now < prev {
			t.Fatalf("clock went backwards: %v after %v", now, prev)
		}
		prev = now
	}
}

func TestClockSetNow(t *testing.T) {
	var c clock
	c.reset()

	c.setNow(42 * time.Second)
	got := c.now()
	if got < 42*time.Second || got > 42*time.Second+100*time.Millisecond {
		t.Errorf("now after setNow(42s) = %v", got)
	}

	// Rebasing backwards takes effect immediately.
	c.setNow(time.Millisecond)
	got = c.now()
	if got < time.Millisecond || got > time.Second {
		t.Errorf("now after rebase = %v", got)
	}
}

func TestClockReset(t *testing.T) {
	var c clock
	c.reset()
	c.setNow(time.Hour)
	c.reset()
	if got := c.now(); got > time.Second {
		t.Errorf("now after reset = %v, want near zero", got)
	}
}
