package termdisplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferStartsEmpty(t *testing.T) {
	var b buffer
	assert.Equal(t, 0, b.rows())
	assert.Equal(t, 0, b.columns())
}

func TestBufferEnsureSize(t *testing.T) {
	var b buffer
	b.ensureSize(4, 3)
	assert.Equal(t, 3, b.rows())
	assert.Equal(t, 4, b.columns())
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			assert.Equal(t, cell{}, *b.cell(row, col))
		}
	}
}

func TestBufferKeepsStateAcrossNoopResize(t *testing.T) {
	var b buffer
	b.ensureSize(4, 3)
	b.cell(1, 2).set(topHalf, ColorRed)
	b.ensureSize(4, 3)
	assert.Equal(t, cell{top: ColorRed}, *b.cell(1, 2))
}

func TestBufferGrowPadsWithDefault(t *testing.T) {
	var b buffer
	b.ensureSize(2, 2)
	b.cell(0, 1).set(bottomHalf, ColorGreen)
	b.ensureSize(4, 3)
	assert.Equal(t, 3, b.rows())
	assert.Equal(t, 4, b.columns())
	// Surviving cells keep their colors, new cells are default.
	assert.Equal(t, cell{bottom: ColorGreen}, *b.cell(0, 1))
	assert.Equal(t, cell{}, *b.cell(0, 2))
	assert.Equal(t, cell{}, *b.cell(2, 0))
}

func TestBufferShrinkThenGrowLosesState(t *testing.T) {
	var b buffer
	b.ensureSize(4, 4)
	b.cell(3, 3).set(topHalf, ColorBlue)
	b.cell(0, 0).set(topHalf, ColorRed)

	b.ensureSize(2, 2)
	assert.Equal(t, 2, b.rows())
	assert.Equal(t, 2, b.columns())

	// Growing back doesn't resurrect the discarded region.
	b.ensureSize(4, 4)
	assert.Equal(t, cell{}, *b.cell(3, 3))
	assert.Equal(t, cell{top: ColorRed}, *b.cell(0, 0))
}

func TestBufferWidthOnlyResize(t *testing.T) {
	var b buffer
	b.ensureSize(4, 2)
	b.cell(1, 0).set(bottomHalf, ColorCyan)
	b.ensureSize(6, 2)
	assert.Equal(t, 2, b.rows())
	assert.Equal(t, 6, b.columns())
	assert.Equal(t, cell{bottom: ColorCyan}, *b.cell(1, 0))
	assert.Equal(t, cell{}, *b.cell(1, 5))
}
