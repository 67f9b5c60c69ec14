package life

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds reports a cell access outside the board. InputMapper filters
// coordinates before they reach the board, so seeing this error at runtime
// means a caller has a bug.
var ErrOutOfBounds = errors.New("cell out of bounds")

// Grid stores one Life board as a dense row-major slice of cell states.
// Edges are bounded: coordinates outside the board hold no cells and never
// count as neighbors, there is no toroidal wrapping.
type Grid struct {
	w, h int
	cur  []uint8
	nxt  []uint8
}

// NewGrid allocates an all-dead board with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	cells := make([]uint8, w*h)
	return &Grid{w: w, h: h, cur: cells, nxt: make([]uint8, len(cells))}
}

// Size returns the board dimensions as (width, height).
func (g *Grid) Size() (int, int) { return g.w, g.h }

// Cells exposes the current generation so renderers can read it directly.
func (g *Grid) Cells() []uint8 { return g.cur }

// Get reports whether the cell at (row, col) is alive.
func (g *Grid) Get(row, col int) (bool, error) {
	if !g.inBounds(row, col) {
		return false, g.boundsError(row, col)
	}
	return g.cur[row*g.w+col] == 1, nil
}

// Set writes the state of the cell at (row, col).
func (g *Grid) Set(row, col int, alive bool) error {
	if !g.inBounds(row, col) {
		return g.boundsError(row, col)
	}
	v := uint8(0)
	if alive {
		v = 1
	}
	g.cur[row*g.w+col] = v
	return nil
}

// Reset kills every cell.
func (g *Grid) Reset() {
	for i := range g.cur {
		g.cur[i] = 0
	}
}

// Population counts the live cells of the current generation.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		n += int(c)
	}
	return n
}

// Randomize fills the board with live cells at the given density using a
// deterministic stream for the seed.
func (g *Grid) Randomize(seed int64, density float64) {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	rng := NewRNG(seed)
	for i := range g.cur {
		g.cur[i] = 0
		if rng.Float64() < density {
			g.cur[i] = 1
		}
	}
}

// Step advances the board by one generation. The next generation is computed
// entirely from a snapshot of the current one and swapped in, so scan order
// never affects the result and no partial state is observable.
func (g *Grid) Step() {
	w, h := g.w, g.h
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			neighbors := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := row+dr, col+dc
					if nr < 0 || nr >= h || nc < 0 || nc >= w {
						continue
					}
					neighbors += int(g.cur[nr*w+nc])
				}
			}
			idx := row*w + col
			alive := g.cur[idx] == 1
			g.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				g.nxt[idx] = 1
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

func (g *Grid) boundsError(row, col int) error {
	return fmt.Errorf("cell (%d,%d) outside %dx%d board: %w", row, col, g.w, g.h, ErrOutOfBounds)
}
