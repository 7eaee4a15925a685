package termdisplay

// The four glyphs a cell can render as. Terminals expose one foreground
// and one background color per cell, so two independently colored pixel
// halves are drawn by picking a half-block glyph and routing one color
// through the foreground and the other through the background.
const (
	glyphBlank = ' '
	glyphFull  = '█'
	glyphLower = '▄'
	glyphUpper = '▀'
)

// half addresses one of the two vertically stacked pixels in a cell.
type half uint8

const (
	topHalf half = iota
	bottomHalf
)

// halfOf returns which half of its cell the pixel row y lands in.
func halfOf(y int) half {
	if y%2 == 0 {
		return topHalf
	}
	return bottomHalf
}

// cell is one terminal character position: the colors last attributed to
// its top and bottom pixel. The zero value is a fully default-background
// cell, which is also what every cell renders as before anything is drawn
// into it.
type cell struct {
	top    Color
	bottom Color
}

func (c *cell) set(h half, color Color) {
	if h == topHalf {
		c.top = color
	} else {
		c.bottom = color
	}
}

// emit queues the cell at the sink's current pen position, choosing the
// glyph and color commands for the stored pair. The branch order favors
// the rendering that needs the fewest color commands: both sentinel cases
// queue a single reset, and the glyph is chosen so that the color channel
// left unset is invisible (a blank shows only its background, a full
// block only its foreground).
func (c cell) emit(t Term) error {
	switch {
	case c.top == ColorBackground && c.bottom == ColorBackground:
		if err := t.ResetBackground(); err != nil {
			return err
		}
		return t.WriteGlyph(glyphBlank)
	case c.top == ColorForeground && c.bottom == ColorForeground:
		if err := t.ResetForeground(); err != nil {
			return err
		}
		return t.WriteGlyph(glyphFull)
	case c.top != ColorForeground && c.bottom != ColorBackground:
		if err := t.SetBackground(c.top); err != nil {
			return err
		}
		if err := t.SetForeground(c.bottom); err != nil {
			return err
		}
		return t.WriteGlyph(glyphLower)
	default:
		if err := t.SetBackground(c.bottom); err != nil {
			return err
		}
		if err := t.SetForeground(c.top); err != nil {
			return err
		}
		return t.WriteGlyph(glyphUpper)
	}
}
