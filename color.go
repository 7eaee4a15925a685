package termdisplay

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Color is a color which can be rendered to a terminal: one of the two
// default-color sentinels, a named ANSI color, a 256-palette color or a
// 24-bit RGB color.
//
// The sentinels are real values, not the absence of a color: a pixel
// drawn with ColorBackground renders through a reset command so it always
// matches whatever the terminal's default background currently is, rather
// than a hardcoded approximation of it.
type Color uint32

const (
	// ColorBackground is the default background color of the terminal.
	// It is the zero value, and the color every cell starts out as.
	ColorBackground Color = iota

	// ColorForeground is the default foreground color of the terminal.
	ColorForeground

	ColorBlack
	ColorDarkGrey
	ColorRed
	ColorDarkRed
	ColorGreen
	ColorDarkGreen
	ColorYellow
	ColorDarkYellow
	ColorBlue
	ColorDarkBlue
	ColorMagenta
	ColorDarkMagenta
	ColorCyan
	ColorDarkCyan
	ColorWhite
	ColorGrey
)

const (
	colorIsRGB     Color = 1 << 31
	colorIsPalette Color = 1 << 30
)

// RGB returns a 24-bit color. Most UNIX terminals support these.
func RGB(r, g, b uint8) Color {
	return colorIsRGB | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Palette returns a color from the terminal's 256-color palette.
func Palette(n uint8) Color {
	return colorIsPalette | Color(n)
}

func (c Color) isRGB() bool {
	return c&colorIsRGB != 0
}

func (c Color) isPalette() bool {
	return c&colorIsPalette != 0 && !c.isRGB()
}

func (c Color) rgb() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Foreground SGR parameters for the named colors. Background parameters
// are the same plus 10. The sentinels map to the default-color resets.
var sgrCodes = [...]int{
	ColorBackground:  39,
	ColorForeground:  39,
	ColorBlack:       30,
	ColorDarkGrey:    90,
	ColorRed:         91,
	ColorDarkRed:     31,
	ColorGreen:       92,
	ColorDarkGreen:   32,
	ColorYellow:      93,
	ColorDarkYellow:  33,
	ColorBlue:        94,
	ColorDarkBlue:    34,
	ColorMagenta:     95,
	ColorDarkMagenta: 35,
	ColorCyan:        96,
	ColorDarkCyan:    36,
	ColorWhite:       97,
	ColorGrey:        37,
}

// ANSI palette indices for the named colors, used for the tcell mapping.
var paletteIndex = [...]uint8{
	ColorBlack:       0,
	ColorDarkGrey:    8,
	ColorRed:         9,
	ColorDarkRed:     1,
	ColorGreen:       10,
	ColorDarkGreen:   2,
	ColorYellow:      11,
	ColorDarkYellow:  3,
	ColorBlue:        12,
	ColorDarkBlue:    4,
	ColorMagenta:     13,
	ColorDarkMagenta: 5,
	ColorCyan:        14,
	ColorDarkCyan:    6,
	ColorWhite:       15,
	ColorGrey:        7,
}

// toTcell converts the color to its tcell representation. Both sentinels
// become tcell.ColorDefault, which tcell resolves to the default
// foreground or background depending on which side of a style it lands
// on.
func (c Color) toTcell() tcell.Color {
	switch {
	case c.isRGB():
		r, g, b := c.rgb()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	case c.isPalette():
		return tcell.PaletteColor(int(uint8(c)))
	case c == ColorBackground || c == ColorForeground:
		return tcell.ColorDefault
	default:
		return tcell.PaletteColor(int(paletteIndex[c]))
	}
}

var colorNames = [...]string{
	ColorBackground:  "Background",
	ColorForeground:  "Foreground",
	ColorBlack:       "Black",
	ColorDarkGrey:    "DarkGrey",
	ColorRed:         "Red",
	ColorDarkRed:     "DarkRed",
	ColorGreen:       "Green",
	ColorDarkGreen:   "DarkGreen",
	ColorYellow:      "Yellow",
	ColorDarkYellow:  "DarkYellow",
	ColorBlue:        "Blue",
	ColorDarkBlue:    "DarkBlue",
	ColorMagenta:     "Magenta",
	ColorDarkMagenta: "DarkMagenta",
	ColorCyan:        "Cyan",
	ColorDarkCyan:    "DarkCyan",
	ColorWhite:       "White",
	ColorGrey:        "Grey",
}

func (c Color) String() string {
	switch {
	case c.isRGB():
		r, g, b := c.rgb()
		return fmt.Sprintf("RGB(%d,%d,%d)", r, g, b)
	case c.isPalette():
		return fmt.Sprintf("Palette(%d)", uint8(c))
	case int(c) < len(colorNames):
		return colorNames[c]
	default:
		return fmt.Sprintf("Color(%#x)", uint32(c))
	}
}
