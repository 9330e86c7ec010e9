package xor

// Crypt applies the key to data with a repeating-key XOR, starting at the first key byte.
// The result is a new slice of the same length; data is never modified.
// An empty key returns data unchanged.
// Crypt is its own inverse, so Crypt(Crypt(data, key), key) always equals data.
func Crypt(data, key []byte) []byte {
	if len(key) == 0 {
		return data
	}
	scr := newXorScreen(key)
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = scr.screen(b)
	}
	return out
}
