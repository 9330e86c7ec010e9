package lsb

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/saylorsolutions/stegx/pkg/xor"
)

var (
	ErrCapacity      = errors.New("the input image is not large enough to hold this message")
	ErrFrameNotFound = errors.New("end of message marker not found")
)

// RequiredBits returns the number of carrier pixels needed to hide a message of msgLen bytes.
func RequiredBits(msgLen int) int {
	return (msgLen + MarkerLen) * BitsPerByte
}

// Capacity returns the longest message, in bytes, that can be hidden in g.
func Capacity(g Grid) int {
	n := g.Width()*g.Height()/BitsPerByte - MarkerLen
	if n < 0 {
		return 0
	}
	return n
}

// Hide screens msg with key, frames it with the Marker, and writes the result into the carrier bits of a copy of src.
// src is never modified. If the framed message doesn't fit in src, then ErrCapacity is returned and no copy is made.
func Hide(src Grid, msg, key []byte) (*PixelGrid, error) {
	var screened bytes.Buffer
	if _, err := xor.NewWriter(&screened, key).Write(msg); err != nil {
		return nil, err
	}
	framed := Frame(screened.Bytes())

	available := src.Width() * src.Height()
	if required := len(framed) * BitsPerByte; required > available {
		return nil, fmt.Errorf("%w: need %d pixels, image has %d", ErrCapacity, required, available)
	}

	dst := CopyGrid(src)
	ch := newChannel(dst)
	for _, b := range framed {
		if err := ch.writeByte(b); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// Show recovers a message hidden with Hide, unscreening it with key.
// The Marker is located before unscreening, so a wrong key produces garbled bytes rather than an error.
// If the grid runs out of pixels before the Marker is found, then ErrFrameNotFound is returned.
func Show(src Grid, key []byte) ([]byte, error) {
	var (
		det Detector
		ch  = newChannel(src)
	)
	for !det.Found() {
		b, err := ch.readByte()
		if err != nil {
			if errors.Is(err, errExhausted) {
				return nil, fmt.Errorf("%w after reading %d bytes", ErrFrameNotFound, det.Len())
			}
			return nil, err
		}
		det.Push(b)
	}
	return io.ReadAll(xor.NewReader(bytes.NewReader(det.Payload()), key))
}
