package core

// Coord is a position on the conceptual infinite plane. Values may lie
// outside any particular grid; wrapping into grid bounds happens only at
// lookup time.
type Coord struct {
	X, Y int16
}

// Step translates the coordinate by the given velocity without wrapping.
func (c Coord) Step(dx, dy int16) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Neighbors returns the Moore neighborhood of c: the 8 adjacent
// coordinates, never including c itself. Results are unwrapped.
func (c Coord) Neighbors() [8]Coord {
	return [8]Coord{
		c.Step(-1, -1), c.Step(0, -1), c.Step(1, -1),
		c.Step(-1, 0), c.Step(1, 0),
		c.Step(-1, 1), c.Step(0, 1), c.Step(1, 1),
	}
}

// Wrap maps the coordinate into [0,w) x [0,h) via Euclidean modulo, so
// negative and overflowing values land on the torus rather than out of
// range. Truncating modulo would leave negative remainders.
func (c Coord) Wrap(w, h int) Coord {
	x := (int(c.X)%w + w) % w
	y := (int(c.Y)%h + h) % h
	return Coord{X: int16(x), Y: int16(y)}
}

// IndexIn wraps the coordinate and linearizes it row-major. Total for any
// coordinate and any positive dimensions.
func (c Coord) IndexIn(w, h int) int {
	wrapped := c.Wrap(w, h)
	return int(wrapped.Y)*w + int(wrapped.X)
}

// RandomCoords draws n coordinates from the generator. Each coordinate
// consumes two values, x then y, truncated to int16; out-of-range values
// are intentional and wrap at indexing time.
func RandomCoords(rng *LCG, n int) []Coord {
	coords := make([]Coord, n)
	for i := range coords {
		x := int16(rng.NextUint32())
		y := int16(rng.NextUint32())
		coords[i] = Coord{X: x, Y: y}
	}
	return coords
}
