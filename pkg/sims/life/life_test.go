package life

import (
	"slices"
	"testing"

	"gol-ca/pkg/core"
)

func expectBoard(t *testing.T, l *Life, alive map[core.Coord]bool) {
	t.Helper()
	size := l.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := core.Coord{X: int16(x), Y: int16(y)}
			if l.IsAlive(c) != alive[c] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, l.IsAlive(c), alive[c])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	l, err := FromCoords(5, 5, []core.Coord{
		{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2},
	})
	if err != nil {
		t.Fatal(err)
	}

	l.Step()
	expectBoard(t, l, map[core.Coord]bool{
		{X: 2, Y: 1}: true,
		{X: 2, Y: 2}: true,
		{X: 2, Y: 3}: true,
	})

	l.Step()
	expectBoard(t, l, map[core.Coord]bool{
		{X: 1, Y: 2}: true,
		{X: 2, Y: 2}: true,
		{X: 3, Y: 2}: true,
	})
}

func TestLoneCellDiesAndStaysDead(t *testing.T) {
	l, err := FromCoords(3, 3, []core.Coord{{X: 1, Y: 1}})
	if err != nil {
		t.Fatal(err)
	}

	l.Step()
	expectBoard(t, l, nil)

	// All-dead is a terminal state.
	l.Step()
	expectBoard(t, l, nil)
}

func TestGliderTranslation(t *testing.T) {
	l, err := FromPattern(16, 16, Glider)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 4; i++ {
		l.Step()
	}

	// After four generations the glider reappears shifted by (1,1).
	want := map[core.Coord]bool{}
	for _, c := range Glider.Coords {
		want[c.Step(1, 1)] = true
	}
	expectBoard(t, l, want)
}

func TestToroidalWrapAtEdges(t *testing.T) {
	// A blinker laid across the seam: the left edge sees the right edge.
	l, err := FromCoords(5, 5, []core.Coord{
		{X: 4, Y: 2}, {X: 0, Y: 2}, {X: 1, Y: 2},
	})
	if err != nil {
		t.Fatal(err)
	}

	l.Step()
	expectBoard(t, l, map[core.Coord]bool{
		{X: 0, Y: 1}: true,
		{X: 0, Y: 2}: true,
		{X: 0, Y: 3}: true,
	})
}

func TestPopulationNotConserved(t *testing.T) {
	// Two lonely cells die of underpopulation with no births.
	l, err := FromCoords(8, 8, []core.Coord{
		{X: 1, Y: 1}, {X: 2, Y: 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	before := l.Population()
	l.Step()
	if l.Population() == before {
		t.Fatalf("population stayed at %d across a generation that must change it", before)
	}
	if l.Population() != 0 {
		t.Fatalf("population = %d after the pair starves, want 0", l.Population())
	}
}

func TestDuplicateCoordsIdempotent(t *testing.T) {
	once, err := FromCoords(5, 5, []core.Coord{{X: 2, Y: 2}})
	if err != nil {
		t.Fatal(err)
	}
	twice, err := FromCoords(5, 5, []core.Coord{{X: 2, Y: 2}, {X: 2, Y: 2}})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(once.Cells(), twice.Cells()) {
		t.Fatal("marking a cell alive twice changed the board")
	}
}

func TestOutOfRangeCoordsWrapIntoBounds(t *testing.T) {
	l, err := FromCoords(5, 5, []core.Coord{{X: -1, Y: -1}, {X: 7, Y: 3}})
	if err != nil {
		t.Fatal(err)
	}
	if !l.IsAlive(core.Coord{X: 4, Y: 4}) {
		t.Fatal("(-1,-1) did not wrap to (4,4)")
	}
	if !l.IsAlive(core.Coord{X: 2, Y: 3}) {
		t.Fatal("(7,3) did not wrap to (2,3)")
	}
	if l.Population() != 2 {
		t.Fatalf("population = %d, want 2", l.Population())
	}
}

func TestInvalidDimensionsRejected(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 5}, {256, 5}, {5, 300}} {
		if _, err := New(dims[0], dims[1]); err == nil {
			t.Fatalf("New(%d, %d) accepted invalid dimensions", dims[0], dims[1])
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	l, err := New(32, 24)
	if err != nil {
		t.Fatal(err)
	}
	l.SetLiveCells(100)

	l.Reset(99)
	first := append([]uint8(nil), l.Cells()...)

	// Mutate state to ensure Reset rebuilds from scratch.
	l.Cells()[4] = cellAlive
	l.Step()

	l.Reset(99)
	if !slices.Equal(first, l.Cells()) {
		t.Fatal("Reset with the same seed not deterministic")
	}

	l.Reset(777)
	if slices.Equal(first, l.Cells()) {
		t.Fatal("different seeds should produce different boards")
	}
}

func TestResetLiveCellCounts(t *testing.T) {
	l, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}

	// Unconfigured boards reseed densely.
	l.Reset(42)
	if l.Population() == 0 {
		t.Fatal("default Reset settled no cells")
	}

	// An explicit zero settles nothing.
	l.SetLiveCells(0)
	l.Reset(42)
	if got := l.Population(); got != 0 {
		t.Fatalf("Reset with 0 configured cells settled %d", got)
	}

	// A negative count restores the dense default.
	l.SetLiveCells(-3)
	l.Reset(42)
	if l.Population() == 0 {
		t.Fatal("negative cell count should restore the dense default")
	}
}

func TestRandomizedMatchesGeneratorDraws(t *testing.T) {
	board, err := Randomized(15, 15, 100, core.NewLCG(42))
	if err != nil {
		t.Fatal(err)
	}

	ref, err := FromCoords(15, 15, core.RandomCoords(core.NewLCG(42), 100))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(board.Cells(), ref.Cells()) {
		t.Fatal("Randomized board diverged from explicit draws of the same seed")
	}
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{"w": "40", "h": "30", "cells": "250", "seed": "-7"})
	if c.Width != 40 || c.Height != 30 || c.LiveCells != 250 || c.Seed != -7 {
		t.Fatalf("unexpected config %+v", c)
	}

	c = FromMap(map[string]string{"w": "bogus", "cells": "-1"})
	def := DefaultConfig()
	if c.Width != def.Width || c.LiveCells != def.LiveCells {
		t.Fatalf("invalid values should keep defaults, got %+v", c)
	}
}
