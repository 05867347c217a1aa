package life

import (
	"fmt"

	"gol-ca/pkg/core"
)

// Cell status values stored in the grid buffers.
const (
	cellDead  uint8 = 0
	cellAlive uint8 = 1
)

// Life implements Conway's Game of Life on a toroidal grid. The board is
// stored row-major in a flat buffer; a second buffer of identical shape
// receives each next generation so a step never reads a partially
// updated board.
type Life struct {
	w, h      int
	cur       []uint8
	nxt       []uint8
	liveCells int
}

// New returns an all-dead Life board with the provided dimensions.
// Dimensions outside [1,255] are rejected: a zero-sized board has no
// coordinate space, and 255 is the largest extent the int16 coordinate
// contract supports cleanly.
func New(w, h int) (*Life, error) {
	if w < 1 || w > 255 {
		return nil, fmt.Errorf("life: width %d outside [1,255]", w)
	}
	if h < 1 || h > 255 {
		return nil, fmt.Errorf("life: height %d outside [1,255]", h)
	}
	cells := make([]uint8, w*h)
	return &Life{w: w, h: h, cur: cells, nxt: make([]uint8, len(cells)), liveCells: -1}, nil
}

// FromCoords builds a board where exactly the given coordinates are
// alive. Coordinates wrap onto the torus, so any int16 pair is valid;
// marking the same cell twice is idempotent.
func FromCoords(w, h int, coords []core.Coord) (*Life, error) {
	l, err := New(w, h)
	if err != nil {
		return nil, err
	}
	l.Settle(coords)
	return l, nil
}

// Randomized builds a board seeded with n coordinates drawn from the
// generator. Draws may collide on the torus, so the resulting population
// can be below n.
func Randomized(w, h, n int, rng *core.LCG) (*Life, error) {
	return FromCoords(w, h, core.RandomCoords(rng, n))
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur }

// IsAlive reports whether the cell at the wrapped coordinate is alive.
func (l *Life) IsAlive(c core.Coord) bool {
	return l.cur[c.IndexIn(l.w, l.h)] == cellAlive
}

// Settle marks the given coordinates alive on the current board.
func (l *Life) Settle(coords []core.Coord) {
	for _, c := range coords {
		l.cur[c.IndexIn(l.w, l.h)] = cellAlive
	}
}

// Population returns the number of live cells. Life does not conserve
// population between generations.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.cur {
		if c == cellAlive {
			n++
		}
	}
	return n
}

// SetLiveCells configures how many random cells Reset settles. Zero
// means none; a negative value restores the default of half the board
// area.
func (l *Life) SetLiveCells(n int) {
	if n < 0 {
		n = -1
	}
	l.liveCells = n
}

// Reset clears the board and reseeds it with random live cells drawn
// from an LCG built over the provided seed. The same seed always yields
// the same board.
func (l *Life) Reset(seed int64) {
	for i := range l.cur {
		l.cur[i] = cellDead
	}
	n := l.liveCells
	if n < 0 {
		n = l.w * l.h / 2
	}
	l.Settle(core.RandomCoords(core.NewLCG(uint64(seed)), n))
}

// Step advances the board by one generation. Neighbor counts are taken
// entirely from the pre-step snapshot; the freshly computed buffer is
// swapped in at the end, so callers never observe a half-updated board.
func (l *Life) Step() {
	w, h := l.w, l.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			coord := core.Coord{X: int16(x), Y: int16(y)}
			neighbors := 0
			for _, nc := range coord.Neighbors() {
				if l.cur[nc.IndexIn(w, h)] == cellAlive {
					neighbors++
				}
			}
			idx := y*w + x
			alive := l.cur[idx] == cellAlive
			l.nxt[idx] = cellDead
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				l.nxt[idx] = cellAlive
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		l, err := New(c.Width, c.Height)
		if err != nil {
			return nil, err
		}
		l.SetLiveCells(c.LiveCells)
		return l, nil
	})
}
