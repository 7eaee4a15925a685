// Runs the hue wave inside a tcell application: the display draws
// through a Surface instead of owning the terminal, so it can share the
// screen with ordinary tcell widgets and input handling.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	termdisplay "github.com/Liamolucko/terminal-display"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func main() {
	s, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err = s.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer s.Fini()
	s.Clear()
	s.HideCursor()

	d, err := termdisplay.New(termdisplay.WithTerm(termdisplay.NewSurface(s)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	events := make(chan tcell.Event)
	go func() {
		for {
			events <- s.PollEvent()
		}
	}()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyCtrlC, tcell.KeyEscape:
					return
				}
			case *tcell.EventResize:
				s.Sync()
			}
		case <-ticker.C:
			if err := drawWave(d, time.Since(start).Seconds()); err != nil {
				s.Fini()
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(1)
			}
		}
	}
}

func drawWave(d *termdisplay.Display, elapsed float64) error {
	w, h, err := d.Size()
	if err != nil {
		return err
	}

	var x, y int
	src := termdisplay.ColorFunc(func() (termdisplay.Color, bool) {
		hue := math.Mod(float64(x)-float64(y)+elapsed*200, 360)
		if hue < 0 {
			hue += 360
		}
		r, g, b := colorful.Hsv(hue, 1, 1).RGB255()
		x++
		if x == w {
			x = 0
			y++
		}
		return termdisplay.RGB(r, g, b), true
	})

	if err := d.FillContiguous(termdisplay.Rect{W: w, H: h}, src); err != nil {
		return err
	}
	return d.Flush()
}
