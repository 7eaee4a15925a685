package termdisplay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected Rect
	}{
		{
			name:     "contained",
			a:        Rect{X: 0, Y: 0, W: 10, H: 10},
			b:        Rect{X: 2, Y: 3, W: 4, H: 5},
			expected: Rect{X: 2, Y: 3, W: 4, H: 5},
		},
		{
			name:     "overlapping",
			a:        Rect{X: 0, Y: 0, W: 4, H: 8},
			b:        Rect{X: -2, Y: -3, W: 6, H: 6},
			expected: Rect{X: 0, Y: 0, W: 4, H: 3},
		},
		{
			name:     "disjoint",
			a:        Rect{X: 0, Y: 0, W: 4, H: 8},
			b:        Rect{X: 10, Y: 10, W: 6, H: 6},
			expected: Rect{},
		},
		{
			name:     "touching edges is empty",
			a:        Rect{X: 0, Y: 0, W: 4, H: 4},
			b:        Rect{X: 4, Y: 0, W: 4, H: 4},
			expected: Rect{},
		},
		{
			name:     "empty operand",
			a:        Rect{X: 0, Y: 0, W: 4, H: 4},
			b:        Rect{X: 1, Y: 1},
			expected: Rect{},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.a.Intersect(test.b))
			assert.Equal(t, test.expected, test.b.Intersect(test.a))
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 4, H: 8}
	assert.True(t, r.Contains(Point{0, 0}))
	assert.True(t, r.Contains(Point{3, 7}))
	assert.False(t, r.Contains(Point{4, 0}))
	assert.False(t, r.Contains(Point{0, 8}))
	assert.False(t, r.Contains(Point{-1, 0}))
	assert.False(t, r.Contains(Point{0, -1}))
}

func TestSaturatingArithmetic(t *testing.T) {
	assert.Equal(t, math.MaxInt, satAdd(math.MaxInt, 1))
	assert.Equal(t, math.MinInt, satAdd(math.MinInt, -1))
	assert.Equal(t, 5, satAdd(2, 3))

	assert.Equal(t, math.MaxInt, satSub(1, math.MinInt))
	assert.Equal(t, math.MinInt, satSub(math.MinInt, 1))
	assert.Equal(t, -1, satSub(2, 3))

	assert.Equal(t, math.MaxInt, satMul(math.MaxInt/2, 3))
	assert.Equal(t, 0, satMul(0, math.MaxInt))
	assert.Equal(t, 6, satMul(2, 3))
}

func TestRectSaturatedEdges(t *testing.T) {
	// A rectangle reaching the edge of the representable range must not
	// wrap its derived edges.
	r := Rect{X: 1, Y: 1, W: math.MaxInt, H: math.MaxInt}
	assert.Equal(t, math.MaxInt, r.Right())
	assert.Equal(t, math.MaxInt, r.Bottom())
	assert.True(t, r.Contains(Point{math.MaxInt - 1, math.MaxInt - 1}))

	bounds := Rect{W: 4, H: 8}
	assert.Equal(t, Rect{X: 1, Y: 1, W: 3, H: 7}, bounds.Intersect(r))
}
