package model

import (
	"testing"

	"github.com/sheikhrachel/go-gol-sprites/utils"
)

func blinker() *Grid {
	g := NewGrid(5, 5)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	g.Set(2, 3, true)
	return g
}

func expectAlive(t *testing.T, g *Grid, alive map[[2]int]bool) {
	t.Helper()
	for y := range g.GetHeight() {
		for x := range g.GetWidth() {
			want := alive[[2]int{x, y}]
			if got := g.Get(x, y); got != want {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v\n%s", x, y, got, want, g)
			}
		}
	}
}

func TestNextGenerationKeepsDimensions(t *testing.T) {
	sizes := [][2]int{{1, 1}, {3, 7}, {15, 15}, {20, 4}}
	for _, size := range sizes {
		g := NewRandomGrid(size[0], size[1], 0.5, utils.NewRNG(1))
		next := g.NextGenerationSequential(nil)
		if next.GetWidth() != size[0] || next.GetHeight() != size[1] {
			t.Fatalf("%dx%d grid stepped to %dx%d", size[0], size[1], next.GetWidth(), next.GetHeight())
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := blinker()

	next := g.NextGenerationSequential(nil)
	expectAlive(t, next, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true})

	next = next.NextGenerationSequential(nil)
	expectAlive(t, next, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true})
}

func TestNextGenerationLeavesInputUntouched(t *testing.T) {
	g := blinker()
	before := g.GetGridHash()
	g.NextGenerationSequential(nil)
	if g.GetGridHash() != before {
		t.Fatal("stepping must not modify the source grid")
	}
}

func TestNeighborCountWraps(t *testing.T) {
	g := NewGrid(4, 3)
	g.Set(3, 2, true) // (row h-1, col w-1)

	if n := g.CountNeighbors(0, 0); n != 1 {
		t.Fatalf("corner (0,0) sees %d neighbors, expected 1", n)
	}
	if n := g.CountNeighbors(3, 0); n != 1 {
		t.Fatalf("(3,0) sees %d neighbors, expected 1 through the top edge", n)
	}
	if n := g.CountNeighbors(0, 2); n != 1 {
		t.Fatalf("(0,2) sees %d neighbors, expected 1 through the left edge", n)
	}
	if n := g.CountNeighbors(1, 1); n != 0 {
		t.Fatalf("(1,1) sees %d neighbors, expected 0", n)
	}
}

func TestBlinkerAcrossCorner(t *testing.T) {
	// Vertical blinker split over the top and bottom edges at column 0
	g := NewGrid(5, 5)
	g.Set(0, 4, true)
	g.Set(0, 0, true)
	g.Set(0, 1, true)

	next := g.NextGenerationSequential(nil)
	expectAlive(t, next, map[[2]int]bool{{4, 0}: true, {0, 0}: true, {1, 0}: true})
}

func TestGliderReturnsAfterCrossingTorus(t *testing.T) {
	g := NewGrid(6, 6)
	for _, p := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		g.Set(p[0], p[1], true)
	}

	// A glider moves one cell diagonally every 4 generations
	cur := g
	for range 4 * 6 {
		cur = cur.NextGenerationSequential(nil)
	}
	if !cur.Equal(g) {
		t.Fatalf("glider did not return to its start after wrapping:\n%s", cur)
	}
}

func TestRuleTable(t *testing.T) {
	// Cell (1,1) of a 3x3 torus sees every other cell exactly once
	order := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{false, true} {
			g := NewGrid(3, 3)
			for _, p := range order[:n] {
				g.Set(p[0], p[1], true)
			}
			g.Set(1, 1, alive)

			want := n == 3 || (alive && n == 2)
			if got := g.NextGenerationSequential(nil).Get(1, 1); got != want {
				t.Fatalf("n=%d alive=%v: next=%v, expected %v", n, alive, got, want)
			}
		}
	}
}

func TestEmptyGridIsFixedPoint(t *testing.T) {
	g := NewGrid(15, 15)
	next := g.NextGeneration(utils.DefaultConfig(), nil)
	if next.CountLivingCells() != 0 {
		t.Fatalf("empty grid produced %d living cells", next.CountLivingCells())
	}
	if !next.Equal(g) {
		t.Fatal("empty grid must map to an empty grid")
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.UseParallel = true
	g := NewRandomGrid(37, 23, 0.35, utils.NewRNG(7))

	for i := range 10 {
		seq := g.NextGenerationSequential(nil)
		par := g.NextGeneration(cfg, nil)
		if !seq.Equal(par) {
			t.Fatalf("generation %d: parallel result differs from sequential", i+1)
		}
		g = seq
	}
}

func TestNewRandomGridDensity(t *testing.T) {
	rng := utils.NewRNG(3)
	if n := NewRandomGrid(15, 15, 0, rng).CountLivingCells(); n != 0 {
		t.Fatalf("density 0 produced %d living cells", n)
	}
	if n := NewRandomGrid(15, 15, 1, rng).CountLivingCells(); n != 225 {
		t.Fatalf("density 1 produced %d living cells, expected 225", n)
	}

	n := NewRandomGrid(100, 100, 0.1, rng).CountLivingCells()
	if n < 800 || n > 1200 {
		t.Fatalf("density 0.1 produced %d of 10000 living cells", n)
	}
}

func TestNewRandomGridSeeded(t *testing.T) {
	a := NewRandomGrid(15, 15, 0.3, utils.NewRNG(99))
	b := NewRandomGrid(15, 15, 0.3, utils.NewRNG(99))
	if !a.Equal(b) {
		t.Fatal("same seed must produce the same board")
	}
}

func TestGridPoolReturnsClearedGrid(t *testing.T) {
	pool := NewGridPool()
	g := NewRandomGrid(8, 8, 1, utils.NewRNG(1))
	GridToPool(g, pool)

	got := pool.Get(6, 4)
	if got.GetWidth() != 6 || got.GetHeight() != 4 {
		t.Fatalf("pooled grid is %dx%d, expected 6x4", got.GetWidth(), got.GetHeight())
	}
	if got.CountLivingCells() != 0 {
		t.Fatalf("pooled grid has %d living cells", got.CountLivingCells())
	}

	GridToPool(nil, pool)
	GridToPool(got, nil)
}

func TestNextGenerationWithPool(t *testing.T) {
	pool := NewGridPool()
	g := blinker()
	for range 4 {
		next := g.NextGenerationSequential(pool)
		GridToPool(g, pool)
		g = next
	}
	expectAlive(t, g, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true})
}

func TestNewGridFromRows(t *testing.T) {
	g := NewGridFromRows([][]bool{
		{true, false, false},
		{false, false, true},
	})
	if g.GetWidth() != 3 || g.GetHeight() != 2 {
		t.Fatalf("grid is %dx%d, expected 3x2", g.GetWidth(), g.GetHeight())
	}
	expectAlive(t, g, map[[2]int]bool{{0, 0}: true, {2, 1}: true})
}

func TestString(t *testing.T) {
	g := NewGridFromRows([][]bool{{true, false}, {false, true}})
	want := gridPosBlock + gridPosEmpty + "\n" + gridPosEmpty + gridPosBlock + "\n"
	if got := g.String(); got != want {
		t.Fatalf("String() = %q, expected %q", got, want)
	}
}

func TestGridHashDistinguishesStates(t *testing.T) {
	a := blinker()
	b := a.NextGenerationSequential(nil)
	if a.GetGridHash() == b.GetGridHash() {
		t.Fatal("different boards must hash differently")
	}
	if a.GetGridHash() != blinker().GetGridHash() {
		t.Fatal("equal boards must hash equally")
	}
}
