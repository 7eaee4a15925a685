package termdisplay

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// Term is the sink a Display draws through. Everything except Size and
// Flush only queues bytes; nothing reaches the terminal until Flush.
//
// A glyph write advances the pen one column, so the cursor only has to be
// repositioned between runs, not per cell. Color state persists across
// glyphs the way a real terminal's SGR state does.
type Term interface {
	// Size returns the terminal's current size in character cells.
	Size() (width, height int, err error)

	// MoveTo queues a cursor move to the given cell (0-based).
	MoveTo(column, row int) error

	// SetForeground and SetBackground queue a color change. The
	// sentinel colors queue the corresponding default-color reset.
	SetForeground(c Color) error
	SetBackground(c Color) error

	// ResetForeground and ResetBackground queue a reset to the
	// terminal's default colors.
	ResetForeground() error
	ResetBackground() error

	// WriteGlyph queues a single character at the pen position.
	WriteGlyph(g rune) error

	// Flush transmits everything queued so far. Idempotent.
	Flush() error
}

// Pre-allocated ANSI sequence fragments, shared by all queue methods to
// keep the hot path allocation-free.
var (
	csiCUP       = []byte("\x1b[") // followed by row;columnH
	csiSGR       = []byte("\x1b[") // followed by a named color parameter and m
	csiFg256     = []byte("\x1b[38;5;")
	csiBg256     = []byte("\x1b[48;5;")
	csiFgRGB     = []byte("\x1b[38;2;")
	csiBgRGB     = []byte("\x1b[48;2;")
	csiDefaultFg = []byte("\x1b[39m")
	csiDefaultBg = []byte("\x1b[49m")
)

const outBufSize = 128 * 1024

// writeInt writes a non-negative integer without allocating.
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n >= 10 {
		writeInt(w, n/10)
	}
	w.WriteByte(byte(n%10) + '0')
}

type ansiTerm struct {
	out  *bufio.Writer
	size func() (int, int, error)
}

// NewTerm returns a Term that queues ANSI escape sequences for the given
// terminal and reads its size from the tty.
func NewTerm(tty *os.File) Term {
	fd := int(tty.Fd())
	return &ansiTerm{
		out: bufio.NewWriterSize(tty, outBufSize),
		size: func() (int, int, error) {
			return term.GetSize(fd)
		},
	}
}

// NewTermWriter returns an ANSI Term over an arbitrary writer with an
// injected size query, for output that isn't a tty.
func NewTermWriter(w io.Writer, size func() (width, height int, err error)) Term {
	return &ansiTerm{
		out:  bufio.NewWriterSize(w, outBufSize),
		size: size,
	}
}

func (t *ansiTerm) Size() (int, int, error) {
	return t.size()
}

func (t *ansiTerm) MoveTo(column, row int) error {
	t.out.Write(csiCUP)
	writeInt(t.out, row+1)
	t.out.WriteByte(';')
	writeInt(t.out, column+1)
	return t.out.WriteByte('H')
}

// setColor queues the SGR for c. bg shifts named parameters into the
// background range and picks the 48-prefixed extended forms.
func (t *ansiTerm) setColor(c Color, bg bool) error {
	switch {
	case c.isRGB():
		r, g, b := c.rgb()
		if bg {
			t.out.Write(csiBgRGB)
		} else {
			t.out.Write(csiFgRGB)
		}
		writeInt(t.out, int(r))
		t.out.WriteByte(';')
		writeInt(t.out, int(g))
		t.out.WriteByte(';')
		writeInt(t.out, int(b))
	case c.isPalette():
		if bg {
			t.out.Write(csiBg256)
		} else {
			t.out.Write(csiFg256)
		}
		writeInt(t.out, int(uint8(c)))
	default:
		code := sgrCodes[c]
		if bg {
			code += 10
		}
		t.out.Write(csiSGR)
		writeInt(t.out, code)
	}
	return t.out.WriteByte('m')
}

func (t *ansiTerm) SetForeground(c Color) error {
	return t.setColor(c, false)
}

func (t *ansiTerm) SetBackground(c Color) error {
	return t.setColor(c, true)
}

func (t *ansiTerm) ResetForeground() error {
	_, err := t.out.Write(csiDefaultFg)
	return err
}

func (t *ansiTerm) ResetBackground() error {
	_, err := t.out.Write(csiDefaultBg)
	return err
}

func (t *ansiTerm) WriteGlyph(g rune) error {
	_, err := t.out.WriteRune(g)
	return err
}

func (t *ansiTerm) Flush() error {
	return t.out.Flush()
}
