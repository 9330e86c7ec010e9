package xor

import (
	"io"
)

type reader struct {
	source io.Reader
	scr    *xorScreen
}

func (r *reader) Read(out []byte) (n int, err error) {
	n, err = r.source.Read(out)
	for i := 0; i < n; i++ {
		out[i] = r.scr.screen(out[i])
	}
	return n, err
}

// NewReader returns an io.Reader that will XOR all bytes read from r with key, starting at the first key byte.
// An empty key passes bytes through unchanged.
func NewReader(r io.Reader, key []byte) io.Reader {
	return &reader{
		source: r,
		scr:    newXorScreen(key),
	}
}

type writer struct {
	target io.Writer
	scr    *xorScreen
	buf    []byte
}

// NewWriter returns an io.Writer that will XOR all bytes written with key before passing them to target.
// The key position carries across writes, so splitting the input doesn't change the output.
// An empty key passes bytes through unchanged.
func NewWriter(target io.Writer, key []byte) io.Writer {
	return &writer{
		target: target,
		scr:    newXorScreen(key),
	}
}

func (w *writer) Write(in []byte) (n int, err error) {
	w.buf = w.buf[:0]
	for _, b := range in {
		w.buf = append(w.buf, w.scr.screen(b))
	}
	return w.target.Write(w.buf)
}
