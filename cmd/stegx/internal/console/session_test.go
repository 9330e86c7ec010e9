package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/saylorsolutions/stegx/pkg/imgio"
	"github.com/saylorsolutions/stegx/pkg/lsb"
	"github.com/saylorsolutions/stegx/pkg/seal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	images  map[string]*lsb.PixelGrid
	formats map[string]string
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{
		images:  map[string]*lsb.PixelGrid{},
		formats: map[string]string{},
	}
}

func (m *memStore) Load(path string) (*lsb.PixelGrid, error) {
	g, ok := m.images[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s not found", imgio.ErrRead, path)
	}
	return g.Clone(), nil
}

func (m *memStore) Save(g lsb.Grid, path, format string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.images[path] = lsb.CopyGrid(g)
	m.formats[path] = format
	return nil
}

func run(t *testing.T, store *memStore, input string, opts ...Opt) string {
	t.Helper()
	var out strings.Builder
	s, err := New(strings.NewReader(input), &out, append([]Opt{WithImages(store)}, opts...)...)
	require.NoError(t, err)
	s.Run()
	return out.String()
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

func TestRun_Exit(t *testing.T) {
	out := run(t, newMemStore(), lines("exit", "hide"))
	assert.Equal(t, "\nTask (hide, show, exit):\nBye!\n", out)
}

func TestRun_EndOfInput(t *testing.T) {
	out := run(t, newMemStore(), "")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
}

func TestRun_WrongTask(t *testing.T) {
	out := run(t, newMemStore(), lines("dance", "exit"))
	assert.Contains(t, out, "Wrong task: dance\n")
	assert.Equal(t, 2, strings.Count(out, "Task (hide, show, exit):"))
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
}

func TestDispatch_WrongTask(t *testing.T) {
	s, err := New(strings.NewReader(""), &strings.Builder{})
	require.NoError(t, err)
	err = s.Dispatch("HIDE")
	assert.ErrorIs(t, err, ErrUnrecognizedTask)
	var taskErr *TaskError
	require.True(t, errors.As(err, &taskErr))
	assert.Equal(t, "HIDE", taskErr.Task)
}

func TestRun_HideShow(t *testing.T) {
	store := newMemStore()
	store.images["in.png"] = lsb.NewPixelGrid(100, 100)

	out := run(t, store, lines(
		"hide", "in.png", "out.png", "Hi", "k",
		"show", "out.png", "k",
		"show", "out.png", "wrong",
		"exit",
	))
	assert.Contains(t, out, "Message saved in out.png image.\n")
	assert.Contains(t, out, "Message:\nHi\n")
	assert.Equal(t, 2, strings.Count(out, "Message:\n"), "a wrong password still recovers a message")
	assert.Equal(t, imgio.FormatPNG, store.formats["out.png"])
	assert.Equal(t, lsb.NewPixelGrid(100, 100).Pixels(), store.images["in.png"].Pixels())
}

func TestRun_HidePrompts(t *testing.T) {
	store := newMemStore()
	store.images["in.png"] = lsb.NewPixelGrid(100, 100)
	out := run(t, store, lines("hide", "in.png", "out.bmp", "msg", "", "exit"), WithFormat(imgio.FormatBMP))
	expected := lines(
		"",
		"Task (hide, show, exit):",
		"Input image file:",
		"Output image file:",
		"Message to hide:",
		"Password:",
		"Message saved in out.bmp image.",
		"",
		"Task (hide, show, exit):",
		"Bye!",
	)
	assert.Equal(t, expected, out)
	assert.Equal(t, imgio.FormatBMP, store.formats["out.bmp"])
}

func TestRun_Failures(t *testing.T) {
	tests := map[string]struct {
		setup    func(*memStore)
		input    string
		expected string
	}{
		"Missing input image": {
			input:    lines("hide", "nope.png", "out.png", "Hi", "k", "exit"),
			expected: "Can't read input file!\n",
		},
		"Missing image for show": {
			input:    lines("show", "nope.png", "k", "exit"),
			expected: "Can't read input file!\n",
		},
		"Image too small": {
			setup: func(m *memStore) {
				g, _ := lsb.GridFromPixels(2, 2, []uint32{10, 11, 12, 13})
				m.images["tiny.png"] = g
			},
			input:    lines("hide", "tiny.png", "out.png", "", "", "exit"),
			expected: "The input image is not large enough to hold this message.\n",
		},
		"No hidden message": {
			setup: func(m *memStore) {
				m.images["blank.png"] = lsb.NewPixelGrid(10, 10)
			},
			input:    lines("show", "blank.png", "", "exit"),
			expected: "No hidden message was found in this image.\n",
		},
		"Save failure": {
			setup: func(m *memStore) {
				m.images["in.png"] = lsb.NewPixelGrid(100, 100)
				m.saveErr = fmt.Errorf("%w: disk full", imgio.ErrWrite)
			},
			input:    lines("hide", "in.png", "out.png", "Hi", "k", "exit"),
			expected: "can't write output file: disk full\n",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			store := newMemStore()
			if tc.setup != nil {
				tc.setup(store)
			}
			out := run(t, store, tc.input)
			assert.Contains(t, out, tc.expected)
			assert.NotContains(t, out, "Message saved")
			assert.True(t, strings.HasSuffix(out, "Bye!\n"), "the loop must resume after a failure")
			_, saved := store.images["out.png"]
			assert.False(t, saved)
		})
	}
}

func TestRun_TruncatedInput(t *testing.T) {
	store := newMemStore()
	store.images["in.png"] = lsb.NewPixelGrid(100, 100)
	out := run(t, store, lines("hide", "in.png", "out.png"))
	assert.True(t, strings.HasSuffix(out, "Output image file:\nMessage to hide:\n\nTask (hide, show, exit):\nBye!\n"))
	assert.Len(t, store.images, 1)
}

func TestRun_Sealed(t *testing.T) {
	params, err := seal.NewParams(seal.Iterations(1 << 4))
	require.NoError(t, err)
	store := newMemStore()
	store.images["in.png"] = lsb.NewPixelGrid(100, 100)

	out := run(t, store, lines(
		"hide", "in.png", "out.png", "A sealed secret", "pass",
		"show", "out.png", "pass",
		"show", "out.png", "wrong",
		"hide", "in.png", "other.png", "no password", "",
		"exit",
	), WithSeal(params))
	assert.Contains(t, out, "Message:\nA sealed secret\n")
	assert.Contains(t, out, "Can't open the sealed message, the password may be wrong.\n")
	assert.Contains(t, out, "A password is required for sealed messages.\n")
	assert.NotContains(t, store.images, "other.png")
}

func TestNew_BadFormat(t *testing.T) {
	_, err := New(strings.NewReader(""), &strings.Builder{}, WithFormat("jpeg"))
	assert.ErrorIs(t, err, imgio.ErrFormat)
	_, err = New(strings.NewReader(""), &strings.Builder{}, WithImages(nil))
	assert.Error(t, err)
}

func TestText(t *testing.T) {
	assert.Equal(t, "Hi", Text([]byte("Hi")))
	assert.Equal(t, "", Text(nil))
	assert.Equal(t, "é", Text([]byte{0xe9}))
	assert.Equal(t, "Ã©", Text([]byte("é")), "each byte is its own character")
}

func TestRun_LongMessage(t *testing.T) {
	store := newMemStore()
	store.images["in.png"] = lsb.NewPixelGrid(2900, 2900)
	msg := strings.Repeat("a", 1<<20+1)
	require.LessOrEqual(t, len(msg), lsb.Capacity(store.images["in.png"]))

	out := run(t, store, lines("hide", "in.png", "out.png", msg, "k", "show", "out.png", "k", "exit"))
	assert.Contains(t, out, "Password:\nMessage saved in out.png image.\n")
	assert.Contains(t, out, "Message:\n"+msg+"\n")
	assert.NotContains(t, out, "Wrong task")
}

func TestRun_LineEndings(t *testing.T) {
	tests := map[string]string{
		"CRLF":                 "dance\r\nexit\r\n",
		"No final newline":     "dance\nexit",
		"Task without newline": "dance",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			out := run(t, newMemStore(), input)
			assert.Contains(t, out, "Wrong task: dance\n")
			assert.True(t, strings.HasSuffix(out, "Bye!\n"))
		})
	}
}

func TestRun_ReadError(t *testing.T) {
	store := newMemStore()
	store.images["in.png"] = lsb.NewPixelGrid(100, 100)
	input := io.MultiReader(strings.NewReader(lines("hide", "in.png")), iotest.ErrReader(errors.New("disk gone")))

	var out strings.Builder
	s, err := New(input, &out, WithImages(store))
	require.NoError(t, err)
	s.Run()
	assert.Contains(t, out.String(), "Output image file:\nfailed to read input: disk gone\n")
	assert.True(t, strings.HasSuffix(out.String(), "Bye!\n"))
	assert.Len(t, store.images, 1)
}
