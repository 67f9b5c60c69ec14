package life

import (
	"errors"
	"slices"
	"testing"
)

func TestAllDeadStaysDead(t *testing.T) {
	g := NewGrid(8, 8)
	for i := 0; i < 5; i++ {
		g.Step()
	}
	for _, c := range g.Cells() {
		if c != 0 {
			t.Fatal("dead board produced a live cell")
		}
	}
}

func TestBlinkerOscillatesAtBoundedEdge(t *testing.T) {
	// A vertical blinker filling the middle column of a 3x3 board. With
	// bounded edges it flips to the middle row and back.
	g := NewGrid(3, 3)
	mustSet := func(r, c int) {
		if err := g.Set(r, c, true); err != nil {
			t.Fatal(err)
		}
	}
	mustSet(0, 1)
	mustSet(1, 1)
	mustSet(2, 1)

	g.Step()

	expects := map[[2]int]bool{
		{1, 0}: true,
		{1, 1}: true,
		{1, 2}: true,
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			alive, err := g.Get(r, c)
			if err != nil {
				t.Fatal(err)
			}
			if alive != expects[[2]int{r, c}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", r, c, alive, expects[[2]int{r, c}])
			}
		}
	}

	g.Step()

	expects = map[[2]int]bool{
		{0, 1}: true,
		{1, 1}: true,
		{2, 1}: true,
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			alive, err := g.Get(r, c)
			if err != nil {
				t.Fatal(err)
			}
			if alive != expects[[2]int{r, c}] {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", r, c, alive, expects[[2]int{r, c}])
			}
		}
	}
}

func TestIsolatedCellDies(t *testing.T) {
	g := NewGrid(5, 5)
	if err := g.Set(2, 2, true); err != nil {
		t.Fatal(err)
	}
	g.Step()
	if g.Population() != 0 {
		t.Fatalf("isolated cell survived, population=%d", g.Population())
	}
}

func TestOvercrowdedCellDies(t *testing.T) {
	g := NewGrid(5, 5)
	// Center cell with four orthogonal neighbors.
	for _, rc := range [][2]int{{2, 2}, {1, 2}, {3, 2}, {2, 1}, {2, 3}} {
		if err := g.Set(rc[0], rc[1], true); err != nil {
			t.Fatal(err)
		}
	}
	g.Step()
	alive, err := g.Get(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if alive {
		t.Fatal("cell with 4 neighbors should die of overpopulation")
	}
}

func TestDeadCellWithThreeNeighborsIsBorn(t *testing.T) {
	g := NewGrid(5, 5)
	for _, rc := range [][2]int{{1, 1}, {1, 2}, {1, 3}} {
		if err := g.Set(rc[0], rc[1], true); err != nil {
			t.Fatal(err)
		}
	}
	g.Step()
	alive, err := g.Get(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !alive {
		t.Fatal("dead cell with exactly 3 neighbors should be born")
	}
}

func TestNoWrappingAcrossEdges(t *testing.T) {
	// Three live cells in the top row of a wide board. With toroidal
	// wrapping the corner column would interact with the far edge; bounded
	// edges must treat off-board coordinates as dead.
	g := NewGrid(4, 4)
	for _, rc := range [][2]int{{0, 0}, {0, 3}, {1, 0}} {
		if err := g.Set(rc[0], rc[1], true); err != nil {
			t.Fatal(err)
		}
	}
	g.Step()
	alive, err := g.Get(0, 3)
	if err != nil {
		t.Fatal(err)
	}
	if alive {
		t.Fatal("corner cell survived; edge neighbors must not wrap")
	}
}

func TestResetIsFixedPoint(t *testing.T) {
	g := NewGrid(6, 6)
	g.Randomize(42, 0.5)
	g.Reset()
	for i := 0; i < 4; i++ {
		g.Step()
		if g.Population() != 0 {
			t.Fatalf("board not all-dead after reset + %d steps", i+1)
		}
	}
}

func TestBoundsErrors(t *testing.T) {
	g := NewGrid(4, 3)
	cases := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 4}, {3, 4}}
	for _, rc := range cases {
		if _, err := g.Get(rc[0], rc[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Get(%d,%d) err=%v, want ErrOutOfBounds", rc[0], rc[1], err)
		}
		if err := g.Set(rc[0], rc[1], true); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set(%d,%d) err=%v, want ErrOutOfBounds", rc[0], rc[1], err)
		}
	}
	if _, err := g.Get(2, 3); err != nil {
		t.Fatalf("in-bounds Get failed: %v", err)
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := NewGrid(16, 16)
	b := NewGrid(16, 16)
	a.Randomize(99, 0.2)
	b.Randomize(99, 0.2)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed must produce the same board")
	}
	if a.Population() == 0 {
		t.Fatal("density 0.2 on 256 cells should settle someone")
	}
	b.Randomize(100, 0.2)
	if slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("different seeds should produce different boards")
	}
}
