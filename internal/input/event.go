package input

// Kind enumerates the raw input event types a frontend can deliver.
type Kind uint8

const (
	// KindKeyPress is a key transitioning from up to down.
	KindKeyPress Kind = iota
	// KindMouseDown is a mouse button pressed or held over a pixel.
	KindMouseDown
	// KindWheel is a vertical mouse wheel movement.
	KindWheel
)

// Key identifies the keyboard keys the simulation reacts to. Frontends map
// their own key codes to these before handing events over.
type Key uint8

const (
	// KeyNone marks an event without a key binding.
	KeyNone Key = iota
	// KeyReset is the "r" key.
	KeyReset
	// KeyPause is the space bar.
	KeyPause
)

// Button identifies a mouse button.
type Button uint8

const (
	// ButtonLeft paints cells alive.
	ButtonLeft Button = iota
	// ButtonRight paints cells dead.
	ButtonRight
)

// Event is one raw input occurrence. A frontend drains its pending events
// once per frame, in arrival order.
type Event struct {
	Kind   Kind
	Key    Key
	Button Button
	X, Y   int
	WheelY float64
}
