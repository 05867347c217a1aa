//go:build ebiten

package main

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"

	"gol-ca/internal/app"
	"gol-ca/pkg/core"
	_ "gol-ca/pkg/sims/life"
)

func main() {
	simName := "life"
	scale := 16
	tps := 10
	width := 15
	height := 15
	cells := 100
	var seed int64 = 42

	flaggy.SetDescription("Conway's Game of Life on a toroidal grid (GUI build)")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&simName, "e", "sim", "Simulation to run")
	flaggy.Int(&scale, "", "scale", "Pixel scale multiplier")
	flaggy.Int(&tps, "t", "tps", "Generations per second")
	flaggy.Int(&width, "x", "width", "Width of the board (1-255)")
	flaggy.Int(&height, "y", "height", "Height of the board (1-255)")
	flaggy.Int(&cells, "c", "cells", "Number of random live cells to settle")
	flaggy.Int64(&seed, "", "seed", "Seed for the random board; 0 uses the clock")
	flaggy.Parse()

	factory, ok := core.Sims()[simName]
	if !ok {
		log.Fatalf("unknown sim %q", simName)
	}

	sim, err := factory(map[string]string{
		"w":     strconv.Itoa(width),
		"h":     strconv.Itoa(height),
		"cells": strconv.Itoa(cells),
	})
	if err != nil {
		log.Fatal(err)
	}
	if seed == 0 {
		seed = time.Now().Unix()
	}
	sim.Reset(seed)

	game := app.New(sim, scale, seed)
	size := sim.Size()

	ebiten.SetWindowTitle("gol-ca — " + sim.Name())
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(size.W*scale, size.H*scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
