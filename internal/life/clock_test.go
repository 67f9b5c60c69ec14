package life

import (
	"testing"
	"time"
)

func TestClockFiresAfterDelay(t *testing.T) {
	c := NewClock(100 * time.Millisecond)
	if c.Tick(50 * time.Millisecond) {
		t.Fatal("fired before the delay elapsed")
	}
	if !c.Tick(50 * time.Millisecond) {
		t.Fatal("did not fire once the delay elapsed")
	}
	if c.Tick(10 * time.Millisecond) {
		t.Fatal("fired again without a full delay accumulating")
	}
}

func TestClockPausedNeverFires(t *testing.T) {
	c := NewClock(20 * time.Millisecond)
	c.TogglePause()
	for i := 0; i < 10; i++ {
		if c.Tick(time.Second) {
			t.Fatal("paused clock fired")
		}
	}
	c.TogglePause()
	// Time fed while paused must not have accumulated.
	if c.Tick(0) {
		t.Fatal("unpausing fired a burst step")
	}
	if !c.Tick(20 * time.Millisecond) {
		t.Fatal("clock did not resume after unpause")
	}
}

func TestClockResidueIsCapped(t *testing.T) {
	c := NewClock(100 * time.Millisecond)
	if !c.Tick(10 * time.Second) {
		t.Fatal("long stall should fire")
	}
	// At most one catch-up step, then the backlog is gone.
	if !c.Tick(0) {
		t.Fatal("capped residue should allow one immediate step")
	}
	if c.Tick(0) {
		t.Fatal("stall backlog was not discarded")
	}
}

func TestDelayAdjustmentSaturates(t *testing.T) {
	c := NewClock(100 * time.Millisecond)
	for i := 0; i < 500; i++ {
		c.IncreaseDelay()
		if d := c.Delay(); d < MinDelay || d > MaxDelay {
			t.Fatalf("delay %v left the valid range", d)
		}
	}
	if c.Delay() != MaxDelay {
		t.Fatalf("delay %v, want saturation at %v", c.Delay(), MaxDelay)
	}
	for i := 0; i < 500; i++ {
		c.DecreaseDelay()
		if d := c.Delay(); d < MinDelay || d > MaxDelay {
			t.Fatalf("delay %v left the valid range", d)
		}
	}
	if c.Delay() != MinDelay {
		t.Fatalf("delay %v, want saturation at %v", c.Delay(), MinDelay)
	}
}

func TestNewClockClampsDelay(t *testing.T) {
	if d := NewClock(0).Delay(); d != MinDelay {
		t.Fatalf("delay %v, want %v", d, MinDelay)
	}
	if d := NewClock(time.Hour).Delay(); d != MaxDelay {
		t.Fatalf("delay %v, want %v", d, MaxDelay)
	}
}
