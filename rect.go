package termdisplay

import "math"

// Point is a pixel coordinate. The origin is the top-left corner of the
// terminal and y grows downward.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in pixel space. W and H may extend
// past the terminal bounds; drawing operations clip rather than reject.
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return satAdd(r.X, r.W)
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return satAdd(r.Y, r.H)
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersect returns the overlap of two rectangles. The result is Empty if
// they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, W: right - x, H: bottom - y}
}

// satAdd adds two ints, saturating at math.MaxInt instead of wrapping.
// Areas defined near the edge of the representable range must clamp so
// that the skip accounting in FillContiguous stays monotonic.
func satAdd(a, b int) int {
	sum := a + b
	if b > 0 && sum < a {
		return math.MaxInt
	}
	if b < 0 && sum > a {
		return math.MinInt
	}
	return sum
}

// satSub subtracts b from a with the same clamping.
func satSub(a, b int) int {
	d := a - b
	if b < 0 && d < a {
		return math.MaxInt
	}
	if b > 0 && d > a {
		return math.MinInt
	}
	return d
}

// satMul multiplies two non-negative ints, saturating at math.MaxInt.
func satMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/a != b {
		return math.MaxInt
	}
	return p
}
