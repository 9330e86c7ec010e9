package lsb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridFromPixels(t *testing.T) {
	pix := []uint32{10, 11, 12, 13}
	g, err := GridFromPixels(2, 2, pix)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, uint32(11), g.Pixel(1, 0))
	assert.Equal(t, uint32(12), g.Pixel(0, 1))

	pix[0] = 99
	assert.Equal(t, uint32(10), g.Pixel(0, 0), "grid must not share the caller's slice")

	_, err = GridFromPixels(2, 2, []uint32{1, 2, 3})
	assert.Error(t, err)
	_, err = GridFromPixels(-1, 2, nil)
	assert.Error(t, err)
}

func TestPixelGrid_Clone(t *testing.T) {
	g := NewPixelGrid(2, 1)
	g.SetPixel(1, 0, 7)
	clone := g.Clone()
	clone.SetPixel(1, 0, 8)
	assert.Equal(t, uint32(7), g.Pixel(1, 0))
	assert.Equal(t, uint32(8), clone.Pixel(1, 0))
}

type funcGrid struct {
	w, h int
	fn   func(x, y int) uint32
}

func (g funcGrid) Width() int {
	return g.w
}

func (g funcGrid) Height() int {
	return g.h
}

func (g funcGrid) Pixel(x, y int) uint32 {
	return g.fn(x, y)
}

func (g funcGrid) SetPixel(_, _ int, _ uint32) {
	panic("read only")
}

func TestCopyGrid(t *testing.T) {
	src := funcGrid{w: 3, h: 2, fn: func(x, y int) uint32 { return uint32(y*10 + x) }}
	g := CopyGrid(src)
	assert.Equal(t, []uint32{0, 1, 2, 10, 11, 12}, g.Pixels())
}
