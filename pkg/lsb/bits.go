package lsb

import (
	"errors"
	"fmt"
)

// BitsPerByte is the number of carrier pixels needed for each hidden byte.
const BitsPerByte = 8

var (
	ErrInvalidBits = errors.New("invalid bit sequence")
)

// ToBits splits b into its bits, most significant bit first. Each element is 0 or 1.
func ToBits(b byte) [BitsPerByte]byte {
	var bits [BitsPerByte]byte
	for i := 0; i < BitsPerByte; i++ {
		bits[i] = (b >> (BitsPerByte - 1 - i)) & 1
	}
	return bits
}

// FromBits rebuilds a byte from exactly 8 bits, most significant bit first.
// Any non-zero element is treated as a set bit.
func FromBits(bits []byte) (byte, error) {
	if len(bits) != BitsPerByte {
		return 0, fmt.Errorf("%w: expected %d bits, got %d", ErrInvalidBits, BitsPerByte, len(bits))
	}
	var b byte
	for _, bit := range bits {
		b <<= 1
		if bit != 0 {
			b++
		}
	}
	return b, nil
}
