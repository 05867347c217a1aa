package life

import "gol-ca/pkg/core"

// Pattern is a named seeding template of live coordinates.
type Pattern struct {
	Name   string
	Descr  string
	Coords []core.Coord
}

// Builtin seeding patterns.
var (
	Glider = Pattern{
		Name:  "glider",
		Descr: "travels diagonally one cell every four generations",
		Coords: []core.Coord{
			{X: 0, Y: 0},
			{X: 1, Y: 1}, {X: 2, Y: 1},
			{X: 0, Y: 2}, {X: 1, Y: 2},
		},
	}
	Blinker = Pattern{
		Name:  "blinker",
		Descr: "period-2 oscillator between a row and a column",
		Coords: []core.Coord{
			{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2},
		},
	}
	Block = Pattern{
		Name:  "block",
		Descr: "2x2 still life",
		Coords: []core.Coord{
			{X: 1, Y: 1}, {X: 2, Y: 1},
			{X: 1, Y: 2}, {X: 2, Y: 2},
		},
	}
)

// Patterns indexes the builtin patterns by name.
func Patterns() map[string]Pattern {
	return map[string]Pattern{
		Glider.Name:  Glider,
		Blinker.Name: Blinker,
		Block.Name:   Block,
	}
}

// FromPattern builds a board seeded with the pattern's coordinates.
func FromPattern(w, h int, p Pattern) (*Life, error) {
	return FromCoords(w, h, p.Coords)
}
