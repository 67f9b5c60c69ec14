package life

import "time"

// Delay bounds for the simulation clock. Wheel adjustments saturate at the
// bounds instead of wrapping.
const (
	MinDelay  = 20 * time.Millisecond
	MaxDelay  = 1000 * time.Millisecond
	DelayStep = 10 * time.Millisecond
)

// Clock decides when the board should advance. It accumulates elapsed frame
// time and fires once per configured delay while unpaused.
type Clock struct {
	paused      bool
	delay       time.Duration
	accumulated time.Duration
}

// NewClock constructs a clock with the given inter-step delay, clamped to
// the valid range.
func NewClock(delay time.Duration) *Clock {
	c := &Clock{}
	c.SetDelay(delay)
	return c
}

// Tick feeds elapsed wall time into the clock and reports whether the board
// should step now. A paused clock does not accumulate time, so unpausing
// never fires a burst of catch-up steps.
func (c *Clock) Tick(elapsed time.Duration) bool {
	if c.paused {
		return false
	}
	if elapsed < 0 {
		elapsed = 0
	}
	c.accumulated += elapsed
	if c.accumulated < c.delay {
		return false
	}
	c.accumulated -= c.delay
	// Cap the residue so a long stall cannot queue up a backlog of steps.
	if c.accumulated > c.delay {
		c.accumulated = c.delay
	}
	return true
}

// TogglePause flips the paused state.
func (c *Clock) TogglePause() {
	c.paused = !c.paused
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool { return c.paused }

// Delay returns the current inter-step delay.
func (c *Clock) Delay() time.Duration { return c.delay }

// SetDelay clamps d into [MinDelay, MaxDelay] and uses it as the new delay.
func (c *Clock) SetDelay(d time.Duration) {
	if d < MinDelay {
		d = MinDelay
	}
	if d > MaxDelay {
		d = MaxDelay
	}
	c.delay = d
}

// IncreaseDelay slows the simulation down by one step, saturating at MaxDelay.
func (c *Clock) IncreaseDelay() {
	c.SetDelay(c.delay + DelayStep)
}

// DecreaseDelay speeds the simulation up by one step, saturating at MinDelay.
func (c *Clock) DecreaseDelay() {
	c.SetDelay(c.delay - DelayStep)
}
