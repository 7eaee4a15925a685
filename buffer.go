package termdisplay

// buffer remembers the colors already sent for every cell of the
// terminal. A terminal can't report back what a cell currently shows, so
// writing a single pixel needs this to preserve the color of the other
// half of its cell.
type buffer struct {
	cells [][]cell
}

func (b *buffer) rows() int {
	return len(b.cells)
}

func (b *buffer) columns() int {
	if len(b.cells) == 0 {
		return 0
	}
	return len(b.cells[0])
}

// ensureSize resizes the grid to width columns by height rows. Rows keep
// their leading cells when the width shrinks and are padded with default
// cells when it grows; added rows start fully default. Shrinking discards
// state: if the terminal grows back later, the regrown cells render as
// default background again. A no-op when the size is unchanged.
func (b *buffer) ensureSize(width, height int) {
	if b.columns() != width {
		for i, row := range b.cells {
			if len(row) > width {
				b.cells[i] = row[:width:width]
			} else {
				padded := make([]cell, width)
				copy(padded, row)
				b.cells[i] = padded
			}
		}
	}
	switch {
	case len(b.cells) > height:
		b.cells = b.cells[:height:height]
	case len(b.cells) < height:
		for len(b.cells) < height {
			b.cells = append(b.cells, make([]cell, width))
		}
	}
}

// cell returns the cell at (row, column) without bounds checking. Only
// valid between a call to ensureSize and the next one; the grid's backing
// arrays change on resize, so pointers must be re-fetched rather than
// held across operations.
func (b *buffer) cell(row, column int) *cell {
	return &b.cells[row][column]
}
