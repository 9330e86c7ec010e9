package lsb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadBit(t *testing.T) {
	values := []uint32{0, 1, 10, 11, 0xff00ff00, 0xffffffff, 0x80000001}
	for _, c := range values {
		for _, bit := range []byte{0, 1} {
			got := WriteBit(c, bit)
			assert.Equal(t, bit, ReadBit(got))
			assert.Equal(t, c&^1, got&^1, "only the least significant bit may change")
		}
	}
}

func TestPosition(t *testing.T) {
	tests := map[string]struct {
		pos, width int
		x, y       int
	}{
		"Origin":        {pos: 0, width: 4, x: 0, y: 0},
		"End of row":    {pos: 3, width: 4, x: 3, y: 0},
		"Start of row":  {pos: 4, width: 4, x: 0, y: 1},
		"Single column": {pos: 5, width: 1, x: 0, y: 5},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			x, y := Position(tc.pos, tc.width)
			assert.Equal(t, tc.x, x)
			assert.Equal(t, tc.y, y)
		})
	}
}

func TestChannel_RasterOrder(t *testing.T) {
	g := NewPixelGrid(3, 3)
	ch := newChannel(g)
	require.NoError(t, ch.writeByte(0xff))
	assert.Equal(t, []uint32{1, 1, 1, 1, 1, 1, 1, 1, 0}, g.Pixels())
	assert.Error(t, ch.writeByte(0xff))
	assert.ErrorIs(t, ch.writeBit(1), ErrCapacity)
}

func TestChannel_ReadByte(t *testing.T) {
	g, err := GridFromPixels(3, 3, []uint32{0, 1, 0, 0, 1, 0, 0, 0, 1})
	require.NoError(t, err)
	ch := newChannel(g)
	b, err := ch.readByte()
	require.NoError(t, err)
	assert.Equal(t, byte('H'), b)
	_, err = ch.readByte()
	assert.ErrorIs(t, err, errExhausted)
}
