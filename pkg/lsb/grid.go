package lsb

import "fmt"

// Grid is a raster of packed 32-bit color values, addressed by column x and row y.
type Grid interface {
	Width() int
	Height() int
	Pixel(x, y int) uint32
	SetPixel(x, y int, c uint32)
}

var _ Grid = (*PixelGrid)(nil)

// PixelGrid is an in-memory Grid stored in row-major order.
type PixelGrid struct {
	width  int
	height int
	pix    []uint32
}

// NewPixelGrid creates a zeroed grid with the given dimensions.
func NewPixelGrid(width, height int) *PixelGrid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PixelGrid{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// GridFromPixels creates a grid backed by a copy of pix, which must hold exactly width*height row-major values.
func GridFromPixels(width, height int, pix []uint32) (*PixelGrid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("expected %d pixels for a %dx%d grid, got %d", width*height, width, height, len(pix))
	}
	g := NewPixelGrid(width, height)
	copy(g.pix, pix)
	return g, nil
}

// CopyGrid returns a PixelGrid holding the same values as src that shares no memory with it.
func CopyGrid(src Grid) *PixelGrid {
	if pg, ok := src.(*PixelGrid); ok {
		return pg.Clone()
	}
	g := NewPixelGrid(src.Width(), src.Height())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.pix[y*g.width+x] = src.Pixel(x, y)
		}
	}
	return g
}

func (g *PixelGrid) Width() int {
	return g.width
}

func (g *PixelGrid) Height() int {
	return g.height
}

func (g *PixelGrid) Pixel(x, y int) uint32 {
	return g.pix[y*g.width+x]
}

func (g *PixelGrid) SetPixel(x, y int, c uint32) {
	g.pix[y*g.width+x] = c
}

// Pixels returns a copy of the grid's values in row-major order.
func (g *PixelGrid) Pixels() []uint32 {
	out := make([]uint32, len(g.pix))
	copy(out, g.pix)
	return out
}

func (g *PixelGrid) Clone() *PixelGrid {
	return &PixelGrid{
		width:  g.width,
		height: g.height,
		pix:    g.Pixels(),
	}
}
