package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// channel is a line based text I/O channel. Lines have no length limit.
type channel struct {
	in  *bufio.Reader
	out io.Writer
}

func newChannel(in io.Reader, out io.Writer) *channel {
	return &channel{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// readLine returns the next line without its line ending.
// A final line without a trailing newline is still returned, and io.EOF is only returned once nothing is left.
func (c *channel) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// prompt prints msg on its own line and reads the next line of input.
func (c *channel) prompt(msg string) (string, error) {
	c.println(msg)
	return c.readLine()
}

// promptAll prompts for each message in order, stopping at the first line that can't be read.
// Running out of input part way through is reported as io.ErrUnexpectedEOF.
func (c *channel) promptAll(msgs ...string) ([]string, error) {
	lines := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		line, err := c.prompt(msg)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (c *channel) println(msg string) {
	_, _ = fmt.Fprintln(c.out, msg)
}

func (c *channel) printf(msg string, args ...any) {
	_, _ = fmt.Fprintf(c.out, msg+"\n", args...)
}
