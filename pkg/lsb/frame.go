package lsb

import "bytes"

// markerDigits is the legacy end of message string. Each character is stored as its digit value, not its character code.
const markerDigits = "003"

// MarkerLen is the length of the end of message Marker in bytes.
const MarkerLen = len(markerDigits)

// Marker is the end of message sequence appended to every screened payload: {0x00, 0x00, 0x03}.
var Marker = digitBytes(markerDigits)

func digitBytes(digits string) []byte {
	out := make([]byte, len(digits))
	for i := 0; i < len(digits); i++ {
		out[i] = digits[i] - '0'
	}
	return out
}

// Frame returns a new slice holding payload followed by the Marker.
func Frame(payload []byte) []byte {
	framed := make([]byte, 0, len(payload)+MarkerLen)
	framed = append(framed, payload...)
	return append(framed, Marker...)
}

// Detector accumulates recovered bytes and reports when the Marker has been seen.
// The zero value is ready to use.
type Detector struct {
	buf   []byte
	found bool
}

// Push appends b and reports whether the accumulated bytes now end with the Marker.
// Bytes pushed after the Marker is found are ignored.
func (d *Detector) Push(b byte) bool {
	if d.found {
		return true
	}
	d.buf = append(d.buf, b)
	d.found = len(d.buf) >= MarkerLen && bytes.Equal(d.buf[len(d.buf)-MarkerLen:], Marker)
	return d.found
}

// Found reports whether the Marker has been seen.
func (d *Detector) Found() bool {
	return d.found
}

// Len returns the number of bytes accumulated so far, including any Marker bytes.
func (d *Detector) Len() int {
	return len(d.buf)
}

// Payload returns the accumulated bytes with the trailing Marker stripped.
// It returns nil until the Marker has been found.
func (d *Detector) Payload() []byte {
	if !d.found {
		return nil
	}
	return d.buf[:len(d.buf)-MarkerLen]
}
