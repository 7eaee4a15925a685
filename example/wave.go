// Fills the whole terminal with an animated hue wave, to exercise
// FillContiguous with a procedural color source.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	termdisplay "github.com/Liamolucko/terminal-display"
	"github.com/lucasb-eyer/go-colorful"
)

func main() {
	d, err := termdisplay.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	os.Stdout.WriteString("\x1b[?25l")
	defer os.Stdout.WriteString("\x1b[?25h")

	start := time.Now()
	for {
		w, h, err := d.Size()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		bounds := termdisplay.Rect{W: w, H: h}
		elapsed := time.Since(start).Seconds()

		// Row-major over the bounds, one color per pixel.
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

		if err := d.FillContiguous(bounds, src); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		if err := d.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
}
