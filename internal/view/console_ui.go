package view

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"gol-ca/pkg/core"
)

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func() error
}

// ConsoleUI is an interactive terminal front end for a simulation. All
// stepping and rendering happens on the gocui event loop, so the board
// is never read while a generation is being computed.
type ConsoleUI struct {
	sim core.Sim
	g   *gocui.Gui
	k   []keyBinding

	seed     int64
	interval time.Duration
	maxSteps int

	steps   int
	running bool
	stopCh  chan struct{}

	liveFiller string
	deadFiller string
}

// NewConsoleUI creates the terminal UI around the provided simulation.
func NewConsoleUI(sim core.Sim, seed int64, interval time.Duration, maxSteps int) *ConsoleUI {
	t := &ConsoleUI{
		sim:        sim,
		seed:       seed,
		interval:   interval,
		maxSteps:   maxSteps,
		stopCh:     make(chan struct{}),
		liveFiller: aurora.Green("█").String(),
		deadFiller: "░",
	}

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit},
		{'q', "Q", "Exit", t.cmdQuit},
		{'n', "N", "Next generation", t.cmdStepOnce},
		{'r', "R", "Run", t.cmdRun},
		{'s', "S", "Stop", t.cmdStop},
		{'w', "W", "Reseed from clock", t.cmdReseed},
	}
	t.g.SetManagerFunc(t.layout)
	t.initKeyBindings()

	return t
}

func (t *ConsoleUI) initKeyBindings() {
	for _, kb := range t.k {
		h := kb.handler
		err := t.g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error { return h() })
		if err != nil {
			log.Panicln(err)
		}
	}
}

// Start runs the UI until the user quits.
func (t *ConsoleUI) Start() {
	go t.tickLoop()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	close(t.stopCh)
	t.g.Close()
}

// tickLoop paces generations with a fixed-step accumulator. The step
// itself is queued onto the gocui event loop so it is serialized with
// rendering.
func (t *ConsoleUI) tickLoop() {
	pacer := core.NewFixedStep(t.interval)
	ticker := time.NewTicker(pacer.Poll())
	defer ticker.Stop()
	for {
		select {
		case <-t.stopCh:
			return
		case <-ticker.C:
		}
		if !pacer.ShouldStep() {
			continue
		}
		t.g.Update(func(*gocui.Gui) error {
			if t.running {
				t.stepOnce()
			}
			return nil
		})
	}
}

// stepOnce advances one generation; must run on the event loop.
func (t *ConsoleUI) stepOnce() {
	if t.maxSteps != 0 && t.steps >= t.maxSteps {
		t.running = false
		return
	}
	t.sim.Step()
	t.steps++
}

func (t *ConsoleUI) cmdQuit() error { return gocui.ErrQuit }

func (t *ConsoleUI) cmdStepOnce() error {
	t.running = false
	t.stepOnce()
	return nil
}

func (t *ConsoleUI) cmdRun() error {
	t.running = true
	return nil
}

func (t *ConsoleUI) cmdStop() error {
	t.running = false
	return nil
}

func (t *ConsoleUI) cmdReseed() error {
	t.seed = time.Now().Unix()
	t.sim.Reset(t.seed)
	t.steps = 0
	return nil
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28

	if v, err := g.SetView("header", 0, 0, maxX-1, 2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = true
		fmt.Fprint(v, " Conway's Game of Life on a torus — ", t.keyHelp())
	}

	if v, err := g.SetView("status", 0, 3, leftColumnWidth, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}
	t.renderStatus()

	if v, err := g.SetView("board", leftColumnWidth+1, 3, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Board"
		v.Frame = true
	}
	t.renderBoard()

	return nil
}

func (t *ConsoleUI) keyHelp() string {
	var b bytes.Buffer
	for i, kb := range t.k {
		if i != 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%s: %s", aurora.Colorize(kb.name, aurora.CyanFg), kb.descr)
	}
	return b.String()
}

func (t *ConsoleUI) renderStatus() {
	v, err := t.g.View("status")
	if err != nil {
		return
	}
	v.Clear()

	mode := aurora.Colorize("waiting", aurora.BlueFg).String()
	if t.running {
		mode = aurora.Colorize("running", aurora.CyanFg).String()
	}
	size := t.sim.Size()
	fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", size.W, size.H))
	fmt.Fprintln(v, t.renderProp("Interval", "%v", t.interval))
	fmt.Fprintln(v, t.renderProp("Seed", "%v", t.seed))
	fmt.Fprintln(v, t.renderProp("Generation", "%v", t.steps))
	fmt.Fprintln(v, t.renderProp("Live cells", "%v", liveCount(t.sim.Cells())))
	fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
}

func (t *ConsoleUI) renderBoard() {
	v, err := t.g.View("board")
	if err != nil {
		return
	}
	v.Clear()

	size := t.sim.Size()
	cells := t.sim.Cells()
	maxW, maxH := v.Size()

	var b bytes.Buffer
	for y := 0; y < size.H && y < maxH; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		if size.W > maxW || size.H > maxH {
			if y == maxH-1 {
				b.WriteString(aurora.Red("The board is larger than the viewing area").String())
				break
			}
		}
		for x := 0; x < size.W && x < maxW; x++ {
			if cells[y*size.W+x] != 0 {
				b.WriteString(t.liveFiller)
			} else {
				b.WriteString(t.deadFiller)
			}
		}
	}
	fmt.Fprint(v, b.String())
}

func (t *ConsoleUI) renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueFormat, values...)
}

func liveCount(cells []uint8) int {
	n := 0
	for _, c := range cells {
		if c != 0 {
			n++
		}
	}
	return n
}
