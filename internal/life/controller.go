package life

import "time"

// Controller owns the board and the step clock. Frontends feed it commands
// in arrival order and the elapsed time of each frame; everything runs on
// the frontend's single thread.
type Controller struct {
	grid       *Grid
	clock      *Clock
	generation int
}

// NewController composes a controller from the given board and clock.
func NewController(grid *Grid, clock *Clock) *Controller {
	return &Controller{grid: grid, clock: clock}
}

// Grid returns the board the controller owns.
func (ct *Controller) Grid() *Grid { return ct.grid }

// Clock returns the simulation clock.
func (ct *Controller) Clock() *Clock { return ct.clock }

// Generation returns the number of steps taken so far.
func (ct *Controller) Generation() int { return ct.generation }

// Apply executes one command. Commands applied later in a frame override
// earlier edits to the same cell. Point edits carry coordinates that the
// input mapper has already bounds-filtered, so a bounds failure here is a
// programmer error and panics.
func (ct *Controller) Apply(cmd Command) {
	switch cmd.Op {
	case OpSetAlive:
		if err := ct.grid.Set(cmd.Row, cmd.Col, true); err != nil {
			panic(err)
		}
	case OpSetDead:
		if err := ct.grid.Set(cmd.Row, cmd.Col, false); err != nil {
			panic(err)
		}
	case OpResetAll:
		ct.grid.Reset()
	case OpTogglePause:
		ct.clock.TogglePause()
	case OpIncreaseDelay:
		ct.clock.IncreaseDelay()
	case OpDecreaseDelay:
		ct.clock.DecreaseDelay()
	}
}

// Advance feeds the frame's elapsed time to the clock and steps the board
// when it fires. It reports whether a step happened.
func (ct *Controller) Advance(elapsed time.Duration) bool {
	if !ct.clock.Tick(elapsed) {
		return false
	}
	ct.grid.Step()
	ct.generation++
	return true
}

// StepOnce advances the board by exactly one generation regardless of the
// clock, used for manual single-stepping while paused.
func (ct *Controller) StepOnce() {
	ct.grid.Step()
	ct.generation++
}
