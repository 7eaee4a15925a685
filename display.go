package termdisplay

import "os"

// Pixel pairs a point with a color, for DrawPoints.
type Pixel struct {
	Point Point
	Color Color
}

// Display renders an addressable pixel surface onto a terminal. A pixel
// is half of a character cell, since terminal characters are usually
// about 1x2.
//
// Every drawing operation re-checks the terminal size before touching
// anything, clips silently against the current bounds and queues its
// output on the sink; nothing shows up until Flush. A Display owns its
// cell state exclusively and is not safe for concurrent use.
type Display struct {
	buf  buffer
	term Term
}

// New creates a display drawing to the sink, by default the ANSI terminal
// on stdout, and sizes the cell state to the terminal.
func New(opts ...Option) (*Display, error) {
	d := &Display{}
	for _, opt := range opts {
		opt(d)
	}
	if d.term == nil {
		d.term = NewTerm(os.Stdout)
	}
	if _, err := d.resize(); err != nil {
		return nil, err
	}
	return d, nil
}

// resize brings the cell state up to date with the terminal size and
// returns the current bounds in pixels. The bounds stay valid, and cell
// pointers safe, until the next public operation.
func (d *Display) resize() (Rect, error) {
	width, height, err := d.term.Size()
	if err != nil {
		return Rect{}, err
	}
	if width != d.buf.columns() || height != d.buf.rows() {
		tlog.Printf("resize: %dx%d -> %dx%d cells", d.buf.columns(), d.buf.rows(), width, height)
		d.buf.ensureSize(width, height)
	}
	return Rect{W: width, H: 2 * height}, nil
}

// Size returns the dimensions of the drawable area in pixels. The height
// is always even: twice the terminal's row count.
func (d *Display) Size() (width, height int, err error) {
	w, h, err := d.term.Size()
	if err != nil {
		return 0, 0, err
	}
	return w, 2 * h, nil
}

// Flush transmits everything queued so far to the terminal.
func (d *Display) Flush() error {
	return d.term.Flush()
}

// DrawPoints draws individual pixels. Points outside the current bounds
// (including negative coordinates) are silently skipped. Each drawn pixel
// updates only its own half of the cell; the other half keeps the color
// it last rendered with.
func (d *Display) DrawPoints(points []Pixel) error {
	bounds, err := d.resize()
	if err != nil {
		return err
	}
	for _, p := range points {
		if !bounds.Contains(p.Point) {
			continue
		}
		column := p.Point.X
		row := p.Point.Y / 2
		if err := d.term.MoveTo(column, row); err != nil {
			return err
		}
		c := d.buf.cell(row, column)
		c.set(halfOf(p.Point.Y), p.Color)
		if err := c.emit(d.term); err != nil {
			return err
		}
	}
	return nil
}

// FillContiguous fills area with colors, consumed in row-major order.
//
// The source's logical length is area.W*area.H no matter how much of the
// area is actually on screen: elements for clipped-off margins are
// skipped, not dropped from the count, so a generator positioned over the
// whole area stays in sync. The one exception is an area with no visible
// intersection at all, which consumes nothing.
//
// A source that runs out early just stops the fill; that is not an error.
func (d *Display) FillContiguous(area Rect, colors ColorSource) error {
	bounds, err := d.resize()
	if err != nil {
		return err
	}
	drawn := bounds.Intersect(area)
	if drawn.Empty() {
		tlog.Printf("fill: area %+v fully outside %+v, nothing consumed", area, bounds)
		return nil
	}

	// Elements for the rows clipped off above the visible part.
	skipColors(colors, satMul(area.W, satSub(drawn.Y, area.Y)))

	lastY := drawn.Bottom() - 1
	for y := drawn.Y; y <= lastY; y++ {
		isTop := halfOf(y) == topHalf
		row := y / 2
		if err := d.term.MoveTo(drawn.X, row); err != nil {
			return err
		}
		skipColors(colors, satSub(drawn.X, area.X))

		for x := drawn.X; x < drawn.Right(); x++ {
			color, ok := colors.Next()
			if !ok && (isTop || y == drawn.Y || y == lastY) {
				// Nothing buffered needs writing; stop here.
				return nil
			}

			if !isTop || y == lastY {
				// The cell is complete (or this row will never see
				// its other half): write it now. The terminal write
				// is the bottleneck, so cells are written once per
				// two pixel rows, not once per pixel.
				c := d.buf.cell(row, x)
				if ok {
					c.set(halfOf(y), color)
				}
				if err := c.emit(d.term); err != nil {
					return err
				}
			} else {
				// Top half mid-area: stash it until the bottom half
				// of this cell comes around on the next pixel row.
				// ok is guaranteed here, the short-sequence return
				// above covers every top-half position.
				d.buf.cell(row, x).set(topHalf, color)
			}
		}

		skipColors(colors, satSub(area.Right(), drawn.Right()))
	}

	// Elements for any rows clipped off below, so that the source ends
	// this call having yielded exactly area.W*area.H elements.
	skipColors(colors, satMul(area.W, satSub(area.Bottom(), drawn.Bottom())))
	return nil
}

// FillSolid fills area with a single color.
func (d *Display) FillSolid(area Rect, color Color) error {
	bounds, err := d.resize()
	if err != nil {
		return err
	}
	return d.fillSolid(bounds, area, color)
}

// Clear fills the entire terminal with a single color.
func (d *Display) Clear(color Color) error {
	bounds, err := d.resize()
	if err != nil {
		return err
	}
	return d.fillSolid(bounds, bounds, color)
}

func (d *Display) fillSolid(bounds, area Rect, color Color) error {
	drawn := bounds.Intersect(area)
	if drawn.Empty() {
		return nil
	}

	y := drawn.Y
	lastY := drawn.Bottom() - 1

	// A top edge on an odd pixel row covers only the bottom halves of
	// its cell row; the stored top halves must show through unchanged.
	if halfOf(y) == bottomHalf {
		if err := d.fillHalfRow(drawn, y/2, bottomHalf, color); err != nil {
			return err
		}
		y++
	}

	// Likewise a bottom edge on an even row covers only top halves.
	topOnlyLast := y <= lastY && halfOf(lastY) == topHalf
	interiorLast := lastY
	if topOnlyLast {
		interiorLast--
	}

	for ; y+1 <= interiorLast; y += 2 {
		row := y / 2
		for x := drawn.X; x < drawn.Right(); x++ {
			*d.buf.cell(row, x) = cell{top: color, bottom: color}
		}
		if err := d.term.MoveTo(drawn.X, row); err != nil {
			return err
		}
		// The whole row is one uniform color, so one color command
		// covers it: a blank shows only its background, a full block
		// only its foreground.
		var g rune
		switch color {
		case ColorBackground:
			if err := d.term.ResetBackground(); err != nil {
				return err
			}
			g = glyphBlank
		case ColorForeground:
			if err := d.term.ResetForeground(); err != nil {
				return err
			}
			g = glyphFull
		default:
			if err := d.term.SetBackground(color); err != nil {
				return err
			}
			g = glyphBlank
		}
		for x := drawn.X; x < drawn.Right(); x++ {
			if err := d.term.WriteGlyph(g); err != nil {
				return err
			}
		}
	}

	if topOnlyLast {
		return d.fillHalfRow(drawn, lastY/2, topHalf, color)
	}
	return nil
}

// fillHalfRow writes one half of every cell across a row, merging against
// the stored other halves cell by cell.
func (d *Display) fillHalfRow(drawn Rect, row int, h half, color Color) error {
	if err := d.term.MoveTo(drawn.X, row); err != nil {
		return err
	}
	for x := drawn.X; x < drawn.Right(); x++ {
		c := d.buf.cell(row, x)
		c.set(h, color)
		if err := c.emit(d.term); err != nil {
			return err
		}
	}
	return nil
}
