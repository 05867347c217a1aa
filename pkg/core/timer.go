package core

import "time"

// FixedStep paces simulation updates at a steady interval. Elapsed time
// accumulates between checks, so a render that overruns one tick does
// not skew the long-run generation rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a controller that ticks once per step. The
// first ShouldStep call fires immediately.
func NewFixedStep(step time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetStep(step)
	fs.accumulator = fs.step
	return fs
}

// SetStep changes the tick interval. Non-positive steps fall back to a
// 60 Hz cadence.
func (f *FixedStep) SetStep(step time.Duration) {
	if step <= 0 {
		step = time.Second / 60
	}
	f.step = step
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Poll returns a sleep granularity for loops that check ShouldStep
// between ticks.
func (f *FixedStep) Poll() time.Duration {
	p := f.step / 4
	if p < time.Millisecond {
		p = time.Millisecond
	}
	return p
}
