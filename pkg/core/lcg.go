package core

import "time"

// Knuth's MMIX constants for a 64-bit linear congruential generator.
const (
	lcgMul uint64 = 6364136223846793005
	lcgInc uint64 = 1442695040888963407
)

// LCG is a deterministic pseudo-random stream over a single 64-bit state
// word. For a given seed the emitted values are bit-identical across runs
// and platforms, which is what makes seeded boards reproducible.
type LCG struct {
	state uint64
}

// NewLCG creates a generator with the provided seed.
func NewLCG(seed uint64) *LCG {
	return &LCG{state: seed}
}

// FromTime creates a generator seeded from the current Unix time. This is
// the only nondeterministic entry point; everything downstream of the
// returned generator is fully reproducible from its state.
func FromTime() *LCG {
	return NewLCG(uint64(time.Now().Unix()))
}

// NextUint32 advances the state and returns the upper half of it. The high
// bits of an LCG have far better statistical quality than the low bits.
// Overflow wraps silently per uint64 arithmetic; the stream never ends.
func (l *LCG) NextUint32() uint32 {
	l.state = l.state*lcgMul + lcgInc
	return uint32(l.state >> 32)
}
