package view

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/logrusorgru/aurora"

	"gol-ca/pkg/core"
)

const (
	ansiClear      = "\x1b[2J\x1b[1;1H"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
)

// ConsoleOut renders frames straight to a writer, clearing the screen
// between generations. It is the non-interactive sibling of ConsoleUI.
type ConsoleOut struct {
	sim      core.Sim
	out      io.Writer
	interval time.Duration
	maxSteps int
	color    bool
}

// NewConsoleOut creates a plain frame printer for the simulation. A
// maxSteps of 0 runs indefinitely.
func NewConsoleOut(sim core.Sim, out io.Writer, interval time.Duration, maxSteps int) *ConsoleOut {
	return &ConsoleOut{sim: sim, out: out, interval: interval, maxSteps: maxSteps, color: true}
}

// SetColor toggles aurora coloring of live cells, for non-ANSI sinks.
func (c *ConsoleOut) SetColor(on bool) { c.color = on }

// Frame renders the current board as bordered text.
func (c *ConsoleOut) Frame() string {
	size := c.sim.Size()
	cells := c.sim.Cells()

	live := "o "
	if c.color {
		live = aurora.Green("o ").String()
	}

	var b bytes.Buffer
	border := func() {
		b.WriteByte(' ')
		for i := 0; i <= size.W; i++ {
			b.WriteString("# ")
		}
		b.WriteByte('\n')
	}

	border()
	for y := 0; y < size.H; y++ {
		b.WriteString("# ")
		for x := 0; x < size.W; x++ {
			if cells[y*size.W+x] != 0 {
				b.WriteString(live)
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("#\n")
	}
	border()
	return b.String()
}

// Run loops render then step until maxSteps generations have been
// shown, paced by a fixed-step accumulator. The board is only ever
// touched between renders.
func (c *ConsoleOut) Run() {
	fmt.Fprint(c.out, ansiHideCursor)
	defer fmt.Fprint(c.out, ansiShowCursor)

	pacer := core.NewFixedStep(c.interval)
	for step := 0; c.maxSteps == 0 || step < c.maxSteps; {
		if !pacer.ShouldStep() {
			time.Sleep(pacer.Poll())
			continue
		}
		fmt.Fprint(c.out, ansiClear)
		fmt.Fprint(c.out, c.Frame())
		fmt.Fprintf(c.out, "generation %d, %d live cells\n", step, liveCount(c.sim.Cells()))
		c.sim.Step()
		step++
	}
}
