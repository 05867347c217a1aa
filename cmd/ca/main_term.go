//go:build !ebiten

package main

import (
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"gol-ca/internal/view"
	"gol-ca/pkg/core"
	"gol-ca/pkg/sims/life"
)

func main() {
	cfg := life.DefaultConfig()
	interval := 100 * time.Millisecond
	maxSteps := 1000
	interactive := false
	pattern := ""

	patternNames := make([]string, 0, len(life.Patterns()))
	for name := range life.Patterns() {
		patternNames = append(patternNames, name)
	}
	sort.Strings(patternNames)

	flaggy.SetDescription("Conway's Game of Life on a toroidal grid")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&cfg.Width, "x", "width", "Width of the board (1-255)")
	flaggy.Int(&cfg.Height, "y", "height", "Height of the board (1-255)")
	flaggy.Int(&cfg.LiveCells, "c", "cells", "Number of random live cells to settle")
	flaggy.Int64(&cfg.Seed, "", "seed", "Seed for the random board; 0 uses the clock")
	flaggy.Duration(&interval, "i", "interval", "Delay between generations, for example 100ms")
	flaggy.Int(&maxSteps, "s", "maxSteps", "Stop after this many generations (0 runs forever)")
	flaggy.String(&pattern, "p", "pattern", "Settle a named pattern instead of random cells ["+strings.Join(patternNames, "|")+"]")
	flaggy.Bool(&interactive, "n", "interactive", "Start the interactive terminal UI")
	flaggy.Parse()

	// Resolve the clock seed up front so the UI reports a seed that
	// actually reproduces the board.
	cfg.Seed = resolveSeed(cfg.Seed)

	board, err := buildBoard(cfg, pattern)
	if err != nil {
		log.Fatal(err)
	}
	board.SetLiveCells(cfg.LiveCells)

	if interactive {
		view.NewConsoleUI(board, cfg.Seed, interval, maxSteps).Start()
		return
	}
	view.NewConsoleOut(board, os.Stdout, interval, maxSteps).Run()
}

func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().Unix()
	}
	return seed
}

func buildBoard(cfg life.Config, pattern string) (*life.Life, error) {
	if pattern != "" {
		p, ok := life.Patterns()[pattern]
		if !ok {
			flaggy.ShowHelpAndExit("unknown pattern " + pattern)
		}
		return life.FromPattern(cfg.Width, cfg.Height, p)
	}
	return life.Randomized(cfg.Width, cfg.Height, cfg.LiveCells, core.NewLCG(uint64(cfg.Seed)))
}
