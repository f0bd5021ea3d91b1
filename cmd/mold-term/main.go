package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"mold-ca/internal/core"
	"mold-ca/internal/sims/mold"
)

const frameInterval = 33 * time.Millisecond

type viewer struct {
	sim    *mold.Simulation
	screen tcell.Screen
	step   *core.FixedStep

	buf    []uint32
	window core.Size
	pan    core.Point
	zoom   int

	paused   bool
	tickOnce bool
	seed     int64
}

func main() {
	configPath := flag.String("config", "", "path to a YAML simulation config")
	seed := flag.Int64("seed", 0, "seed for simulation reset (0 uses the config seed)")
	tps := flag.Int("tps", 30, "ticks per second")
	flag.Parse()

	cfg, err := mold.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	sim := mold.NewWithConfig(cfg)
	sim.Reset(*seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	defer screen.Fini()
	screen.Clear()

	v := &viewer{
		sim:    sim,
		screen: screen,
		step:   core.NewFixedStep(*tps),
		zoom:   1,
		seed:   *seed,
	}
	v.run()
}

func (v *viewer) run() {
	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- v.screen.PollEvent()
		}
	}()

	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	for {
		select {
		case ev := <-events:
			if !v.handleEvent(ev) {
				return
			}
		case <-frames.C:
			if (v.step.ShouldStep() && !v.paused) || v.tickOnce {
				v.sim.Step()
				v.tickOnce = false
			}
			v.draw()
		}
	}
}

// handleEvent processes one terminal event and reports whether the viewer
// should keep running.
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
			return false
		case ev.Rune() == ' ':
			v.paused = !v.paused
		case ev.Rune() == 'n':
			v.tickOnce = true
		case ev.Rune() == 'r':
			v.sim.Reset(v.seed)
		case ev.Rune() == 's':
			v.seed = time.Now().UnixNano()
			v.sim.Reset(v.seed)
		case ev.Key() == tcell.KeyLeft:
			v.pan.X -= 2 * v.zoom
		case ev.Key() == tcell.KeyRight:
			v.pan.X += 2 * v.zoom
		case ev.Key() == tcell.KeyUp:
			v.pan.Y -= 2 * v.zoom
		case ev.Key() == tcell.KeyDown:
			v.pan.Y += 2 * v.zoom
		case ev.Rune() == '+' || ev.Rune() == '=':
			if v.zoom < 16 {
				v.zoom++
			}
		case ev.Rune() == '-':
			if v.zoom > 1 {
				v.zoom--
			}
		case ev.Rune() == ']':
			v.sim.EnergyLight++
		case ev.Rune() == '[':
			v.sim.EnergyLight--
		}
	}
	return true
}

// draw renders the packed-color projection as background-colored terminal
// cells, two columns per pixel to keep the aspect roughly square, with one
// status row at the bottom.
func (v *viewer) draw() {
	termW, termH := v.screen.Size()
	window := core.Size{W: termW / 2, H: termH - 1}
	if window.W < 1 || window.H < 1 {
		return
	}
	if window != v.window {
		v.window = window
		v.buf = make([]uint32, window.W*window.H)
	}

	if err := v.sim.Render(v.buf, v.window, v.pan, v.zoom); err != nil {
		return
	}

	for y := 0; y < v.window.H; y++ {
		for x := 0; x < v.window.W; x++ {
			p := v.buf[y*v.window.W+x]
			bg := tcell.NewRGBColor(int32(p>>16&0xff), int32(p>>8&0xff), int32(p&0xff))
			style := tcell.StyleDefault.Background(bg)
			v.screen.SetContent(x*2, y, ' ', nil, style)
			v.screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}

	v.drawStatus(termW, termH-1)
	v.screen.Show()
}

func (v *viewer) drawStatus(termW, row int) {
	census := v.sim.CountCensus()
	status := fmt.Sprintf(" tick %d  organisms %d  tissue %d  spores %d  light %d  zoom %dx",
		v.sim.Ticks(), census.Organisms, census.Tissue, census.Spores, v.sim.EnergyLight, v.zoom)
	if v.paused {
		status += "  paused"
	}
	if len(status) < termW {
		status += strings.Repeat(" ", termW-len(status))
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range status {
		if i >= termW {
			break
		}
		v.screen.SetContent(i, row, r, nil, style)
	}
}
