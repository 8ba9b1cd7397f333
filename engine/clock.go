package engine

import (
	"sync/atomic"
	"time"
)

// Clock converts wall time into a whole number of fixed simulation steps
// Pausing freezes accumulation; the loop keeps rendering while paused
type Clock struct {
	step     time.Duration
	maxSteps int

	last        time.Time
	accumulated time.Duration
	isPaused    atomic.Bool

	// Injectable for tests
	now func() time.Time
}

// NewClock creates a clock issuing steps of size step, at most maxSteps per Advance
func NewClock(step time.Duration, maxSteps int) *Clock {
	c := &Clock{step: step, maxSteps: maxSteps, now: time.Now}
	c.last = c.now()
	return c
}

// Advance reports how many fixed steps elapsed since the previous call
// Backlog beyond maxSteps is dropped so a stall never snowballs
func (c *Clock) Advance() int {
	now := c.now()
	elapsed := now.Sub(c.last)
	c.last = now
	if c.isPaused.Load() {
		return 0
	}

	c.accumulated += elapsed
	steps := int(c.accumulated / c.step)
	c.accumulated -= time.Duration(steps) * c.step
	if steps > c.maxSteps {
		steps = c.maxSteps
		c.accumulated = 0
	}
	return steps
}

// StepSeconds returns the step size in simulation seconds
func (c *Clock) StepSeconds() float64 {
	return c.step.Seconds()
}

// Pause stops step accumulation
func (c *Clock) Pause() {
	c.isPaused.Store(true)
}

// Resume continues accumulation without crediting the paused interval
func (c *Clock) Resume() {
	if c.isPaused.CompareAndSwap(true, false) {
		c.last = c.now()
		c.accumulated = 0
	}
}

// Toggle flips the pause state and returns the new state
func (c *Clock) Toggle() bool {
	if c.IsPaused() {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

func (c *Clock) IsPaused() bool {
	return c.isPaused.Load()
}
