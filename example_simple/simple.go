// Draws a diagonal line pixel by pixel, to exercise DrawPoints as
// opposed to the fill operations.
package main

import (
	"fmt"
	"os"

	termdisplay "github.com/Liamolucko/terminal-display"
)

func main() {
	d, err := termdisplay.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	w, h, err := d.Size()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	length := w
	if h < length {
		length = h
	}

	points := make([]termdisplay.Pixel, length)
	for i := range points {
		points[i] = termdisplay.Pixel{
			Point: termdisplay.Point{X: i, Y: i},
			Color: termdisplay.ColorForeground,
		}
	}

	if err := d.Clear(termdisplay.ColorBackground); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := d.DrawPoints(points); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := d.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	select {}
}
