package termdisplay

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface implements Term on top of a tcell.Screen, so a Display can be
// embedded inside a tcell application instead of owning the terminal
// outright. The queue/flush split maps directly: SetContent only stages
// cells, Show transmits them.
//
// Cursor moves and color commands are modelled as pen state; WriteGlyph
// stages the glyph at the pen with the current style and advances.
type Surface struct {
	screen tcell.Screen

	// Region of the screen the surface draws into. A zero width means
	// the surface tracks the full screen size.
	x, y          int
	width, height int

	col, row int
	style    tcell.Style
}

// NewSurface returns a Surface covering the whole screen, tracking its
// size as it changes.
func NewSurface(s tcell.Screen) *Surface {
	return &Surface{screen: s}
}

// NewSurfaceAt returns a Surface drawing into a fixed region of the
// screen with its top-left at cell (x, y).
func NewSurfaceAt(s tcell.Screen, x, y, width, height int) *Surface {
	return &Surface{screen: s, x: x, y: y, width: width, height: height}
}

func (s *Surface) Size() (int, int, error) {
	if s.width > 0 {
		return s.width, s.height, nil
	}
	w, h := s.screen.Size()
	return w, h, nil
}

func (s *Surface) MoveTo(column, row int) error {
	s.col = column
	s.row = row
	return nil
}

func (s *Surface) SetForeground(c Color) error {
	s.style = s.style.Foreground(c.toTcell())
	return nil
}

func (s *Surface) SetBackground(c Color) error {
	s.style = s.style.Background(c.toTcell())
	return nil
}

func (s *Surface) ResetForeground() error {
	s.style = s.style.Foreground(tcell.ColorDefault)
	return nil
}

func (s *Surface) ResetBackground() error {
	s.style = s.style.Background(tcell.ColorDefault)
	return nil
}

func (s *Surface) WriteGlyph(g rune) error {
	if s.width == 0 || (s.col < s.width && s.row < s.height) {
		s.screen.SetContent(s.x+s.col, s.y+s.row, g, nil, s.style)
	}
	s.col += runewidth.RuneWidth(g)
	return nil
}

func (s *Surface) Flush() error {
	s.screen.Show()
	return nil
}
