// Command arc plots the jump arc of a mover prefab in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/platformer/prefabs"
)

type viewer struct {
	screen tcell.Screen
	file   string
	hold   int
	spec   prefabs.MoverSpec
	arc    arc
	err    error
}

func main() {
	file := flag.String("player", "player.yaml", "mover prefab in prefabs/")
	hold := flag.Int("hold", 60, "ticks the jump button is held")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	v := &viewer{screen: screen, file: *file, hold: *hold}
	v.reload()
	v.run()
}

func (v *viewer) reload() {
	spec, err := prefabs.LoadMoverSpec(v.file)
	if err != nil {
		v.err = err
		return
	}
	a, err := simulateArc(spec, v.hold)
	v.spec, v.arc, v.err = spec, a, err
}

func (v *viewer) run() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return
			case ev.Rune() == 'r':
				v.reload()
			case ev.Rune() == '+':
				v.hold++
				v.reload()
			case ev.Rune() == '-' && v.hold > 0:
				v.hold--
				v.reload()
			}
		case *tcell.EventResize:
			v.screen.Sync()
		}
	}
}

func (v *viewer) draw() {
	s := v.screen
	s.Clear()
	w, h := s.Size()

	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	v.print(0, 0, text, fmt.Sprintf("%s  hold %d ticks   r reload  +/- hold  q quit", v.file, v.hold))
	if v.err != nil {
		v.print(0, 2, tcell.StyleDefault.Foreground(tcell.ColorRed), v.err.Error())
		s.Show()
		return
	}
	a := v.arc
	v.print(0, 1, text, fmt.Sprintf("apex %.2f at x=%.2f  airtime %d ticks  jump event tick %d  land speed %.2f",
		a.Apex.Y, a.Apex.X, a.Ticks, a.JumpTick, a.LandSpeed))

	top, bottom := 3, h-2
	if bottom <= top || w < 2 || len(a.Points) == 0 {
		s.Show()
		return
	}

	maxX, maxY := 0.0, a.Apex.Y
	for _, p := range a.Points {
		maxX = math.Max(maxX, p.X)
	}
	scaleX := float64(w-1) / math.Max(maxX, 1e-6)
	scaleY := float64(bottom-top) / math.Max(maxY, 1e-6)
	// terminal cells are roughly twice as tall as wide
	scale := math.Min(scaleX, scaleY*2)

	floor := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 0; x < w; x++ {
		s.SetContent(x, bottom+1, '▔', nil, floor)
	}

	rising := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	falling := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for i, p := range a.Points {
		cx := int(math.Round(p.X * scale))
		cy := bottom - int(math.Round(p.Y*scale/2))
		if cx < 0 || cx >= w || cy < top || cy > bottom {
			continue
		}
		style := rising
		if i > 0 && p.Y < a.Points[i-1].Y {
			style = falling
		}
		s.SetContent(cx, cy, '•', nil, style)
	}
	s.Show()
}

func (v *viewer) print(x, y int, style tcell.Style, msg string) {
	for _, r := range msg {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
