// Draws a square which specifically doesn't align nicely to the cell
// boundaries, to make sure the half-cell edge handling works.
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

	draw := func() error {
		if err := d.Clear(termdisplay.ColorBackground); err != nil {
			return err
		}
		// A red 6x6 outline at (1, 1) filled with green: both edges land
		// mid-cell.
		if err := d.FillSolid(termdisplay.Rect{X: 1, Y: 1, W: 6, H: 6}, termdisplay.ColorRed); err != nil {
			return err
		}
		if err := d.FillSolid(termdisplay.Rect{X: 2, Y: 2, W: 4, H: 4}, termdisplay.ColorGreen); err != nil {
			return err
		}
		return d.Flush()
	}
	if err := draw(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	select {}
}
