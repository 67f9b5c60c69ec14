package life

// Op identifies one kind of user command applied to the simulation.
type Op uint8

const (
	// OpSetAlive brings the cell at (Row, Col) to life.
	OpSetAlive Op = iota
	// OpSetDead kills the cell at (Row, Col).
	OpSetDead
	// OpResetAll kills every cell on the board.
	OpResetAll
	// OpTogglePause pauses or resumes the simulation clock.
	OpTogglePause
	// OpIncreaseDelay slows the simulation down by one delay step.
	OpIncreaseDelay
	// OpDecreaseDelay speeds the simulation up by one delay step.
	OpDecreaseDelay
)

// Command is a single user action, produced by an input mapper and consumed
// by the controller within the same frame. Row and Col are only meaningful
// for the point edits.
type Command struct {
	Op  Op
	Row int
	Col int
}
