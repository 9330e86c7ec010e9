package lsb

import (
	"errors"
	"fmt"
)

var errExhausted = errors.New("no more carrier pixels")

const carrierMask uint32 = 1

// WriteBit returns c with its least significant bit set to bit. All other bits of c are preserved.
func WriteBit(c uint32, bit byte) uint32 {
	if bit != 0 {
		return c | carrierMask
	}
	return c &^ carrierMask
}

// ReadBit returns the least significant bit of c.
func ReadBit(c uint32) byte {
	return byte(c & carrierMask)
}

// Position maps a bit position to its pixel in row-major order.
func Position(pos, width int) (x, y int) {
	return pos % width, pos / width
}

// channel walks a Grid one carrier bit at a time, never revisiting a pixel.
type channel struct {
	grid Grid
	pos  int
	max  int
}

func newChannel(g Grid) *channel {
	return &channel{
		grid: g,
		max:  g.Width() * g.Height(),
	}
}

func (c *channel) remaining() int {
	return c.max - c.pos
}

func (c *channel) writeBit(bit byte) error {
	if c.pos >= c.max {
		return fmt.Errorf("%w: bit position %d is past the last pixel", ErrCapacity, c.pos)
	}
	x, y := Position(c.pos, c.grid.Width())
	c.grid.SetPixel(x, y, WriteBit(c.grid.Pixel(x, y), bit))
	c.pos++
	return nil
}

func (c *channel) writeByte(b byte) error {
	for _, bit := range ToBits(b) {
		if err := c.writeBit(bit); err != nil {
			return err
		}
	}
	return nil
}

func (c *channel) readBit() (byte, bool) {
	if c.pos >= c.max {
		return 0, false
	}
	x, y := Position(c.pos, c.grid.Width())
	c.pos++
	return ReadBit(c.grid.Pixel(x, y)), true
}

// readByte reads the next 8 carrier bits. It returns errExhausted if the grid runs out of pixels first.
func (c *channel) readByte() (byte, error) {
	if c.remaining() < BitsPerByte {
		return 0, errExhausted
	}
	var bits [BitsPerByte]byte
	for i := range bits {
		bits[i], _ = c.readBit()
	}
	return FromBits(bits[:])
}
