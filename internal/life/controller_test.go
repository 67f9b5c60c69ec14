package life

import (
	"testing"
	"time"
)

func newTestController() *Controller {
	return NewController(NewGrid(10, 10), NewClock(100*time.Millisecond))
}

func TestApplyLastWriteWins(t *testing.T) {
	ct := newTestController()
	ct.Apply(Command{Op: OpSetAlive, Row: 4, Col: 4})
	ct.Apply(Command{Op: OpSetDead, Row: 4, Col: 4})
	alive, err := ct.Grid().Get(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if alive {
		t.Fatal("later edit to the same cell must win")
	}
}

func TestApplyClockCommands(t *testing.T) {
	ct := newTestController()
	ct.Apply(Command{Op: OpTogglePause})
	if !ct.Clock().Paused() {
		t.Fatal("pause command not applied")
	}
	ct.Apply(Command{Op: OpIncreaseDelay})
	if ct.Clock().Delay() != 110*time.Millisecond {
		t.Fatalf("delay %v after increase", ct.Clock().Delay())
	}
	ct.Apply(Command{Op: OpDecreaseDelay})
	ct.Apply(Command{Op: OpDecreaseDelay})
	if ct.Clock().Delay() != 90*time.Millisecond {
		t.Fatalf("delay %v after decreases", ct.Clock().Delay())
	}
}

func TestAdvanceStepsWhenClockFires(t *testing.T) {
	ct := newTestController()
	ct.Apply(Command{Op: OpSetAlive, Row: 5, Col: 5})
	if ct.Advance(50 * time.Millisecond) {
		t.Fatal("stepped before the delay elapsed")
	}
	if ct.Generation() != 0 {
		t.Fatal("generation moved without a step")
	}
	if !ct.Advance(60 * time.Millisecond) {
		t.Fatal("did not step after the delay elapsed")
	}
	if ct.Generation() != 1 {
		t.Fatalf("generation %d after one step", ct.Generation())
	}
	// The lone cell must have died in that step.
	if ct.Grid().Population() != 0 {
		t.Fatal("step was not applied to the board")
	}
}

func TestAdvanceWhilePaused(t *testing.T) {
	ct := newTestController()
	ct.Apply(Command{Op: OpTogglePause})
	for i := 0; i < 5; i++ {
		if ct.Advance(time.Second) {
			t.Fatal("paused controller stepped")
		}
	}
	// Edits still land while paused.
	ct.Apply(Command{Op: OpSetAlive, Row: 0, Col: 0})
	if ct.Grid().Population() != 1 {
		t.Fatal("edit dropped while paused")
	}
}

func TestStepOnceIgnoresClock(t *testing.T) {
	ct := newTestController()
	ct.Apply(Command{Op: OpTogglePause})
	ct.StepOnce()
	if ct.Generation() != 1 {
		t.Fatal("manual step did not advance the generation")
	}
}

func TestApplyOutOfBoundsEditPanics(t *testing.T) {
	ct := newTestController()
	defer func() {
		if recover() == nil {
			t.Fatal("out-of-bounds edit must panic")
		}
	}()
	ct.Apply(Command{Op: OpSetAlive, Row: -1, Col: 0})
}
