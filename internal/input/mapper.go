package input

import "golife/internal/life"

// Geometry describes how the board maps onto window pixels.
type Geometry struct {
	CellSize int
	OriginX  int
	OriginY  int
	Rows     int
	Cols     int
}

// CellAt translates a pixel position into board coordinates. ok is false
// when the pixel lies outside the rendered board area.
func (g Geometry) CellAt(x, y int) (row, col int, ok bool) {
	if g.CellSize <= 0 {
		return 0, 0, false
	}
	x -= g.OriginX
	y -= g.OriginY
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row = y / g.CellSize
	col = x / g.CellSize
	if row >= g.Rows || col >= g.Cols {
		return 0, 0, false
	}
	return row, col, true
}

// Map translates one raw event into a simulation command. The boolean
// reports whether the event produced a command; mouse events outside the
// board area and unbound keys are silently dropped.
func Map(ev Event, geo Geometry) (life.Command, bool) {
	switch ev.Kind {
	case KindKeyPress:
		switch ev.Key {
		case KeyReset:
			return life.Command{Op: life.OpResetAll}, true
		case KeyPause:
			return life.Command{Op: life.OpTogglePause}, true
		}
	case KindMouseDown:
		row, col, ok := geo.CellAt(ev.X, ev.Y)
		if !ok {
			return life.Command{}, false
		}
		op := life.OpSetAlive
		if ev.Button == ButtonRight {
			op = life.OpSetDead
		}
		return life.Command{Op: op, Row: row, Col: col}, true
	case KindWheel:
		if ev.WheelY > 0 {
			return life.Command{Op: life.OpIncreaseDelay}, true
		}
		if ev.WheelY < 0 {
			return life.Command{Op: life.OpDecreaseDelay}, true
		}
	}
	return life.Command{}, false
}
