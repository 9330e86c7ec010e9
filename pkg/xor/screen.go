package xor

type xorScreen struct {
	key []byte
	cur int
}

// newXorScreen creates a screen over key. An empty key produces a pass-through screen.
func newXorScreen(key []byte) *xorScreen {
	return &xorScreen{
		key: key,
	}
}

func (s *xorScreen) screen(b byte) byte {
	if len(s.key) == 0 {
		return b
	}
	b ^= s.key[s.cur]
	s.cur = (s.cur + 1) % len(s.key)
	return b
}
