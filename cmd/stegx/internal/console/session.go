// Package console implements the interactive hide/show command loop.
package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/saylorsolutions/stegx/pkg/imgio"
	"github.com/saylorsolutions/stegx/pkg/lsb"
	"github.com/saylorsolutions/stegx/pkg/seal"
	"github.com/sirupsen/logrus"
)

const (
	TaskHide = "hide"
	TaskShow = "show"
	TaskExit = "exit"
)

var (
	ErrUnrecognizedTask = errors.New("wrong task")
)

// TaskError is returned by Dispatch for a task name that isn't recognized. It matches ErrUnrecognizedTask.
type TaskError struct {
	Task string
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnrecognizedTask, e.Task)
}

func (e *TaskError) Is(target error) bool {
	return target == ErrUnrecognizedTask
}

// ImageStore loads and persists carrier images.
type ImageStore interface {
	Load(path string) (*lsb.PixelGrid, error)
	Save(g lsb.Grid, path, format string) error
}

type fileStore struct{}

func (fileStore) Load(path string) (*lsb.PixelGrid, error) {
	return imgio.Load(path)
}

func (fileStore) Save(g lsb.Grid, path, format string) error {
	return imgio.Save(g, path, format)
}

// FileStore is an ImageStore backed by image files on disk.
func FileStore() ImageStore {
	return fileStore{}
}

// Session runs hide and show tasks over a line based channel.
type Session struct {
	io     *channel
	images ImageStore
	format string
	seal   *seal.Params
	log    logrus.FieldLogger
}

// Opt configures a Session in New.
type Opt = func(*Session) error

// WithImages replaces the default FileStore.
func WithImages(store ImageStore) Opt {
	return func(s *Session) error {
		if store == nil {
			return errors.New("nil image store")
		}
		s.images = store
		return nil
	}
}

// WithFormat sets the output image format, which must be one of imgio.Formats.
func WithFormat(format string) Opt {
	return func(s *Session) error {
		if !imgio.ValidFormat(format) {
			return fmt.Errorf("%w '%s', expected one of %v", imgio.ErrFormat, format, imgio.Formats)
		}
		s.format = format
		return nil
	}
}

// WithSeal enables sealing messages with the given parameters before they're hidden.
// Images written by a sealing session can only be read by a sealing session.
func WithSeal(params *seal.Params) Opt {
	return func(s *Session) error {
		s.seal = params
		return nil
	}
}

// WithLogger sets the diagnostic logger. By default, diagnostics are discarded.
func WithLogger(log logrus.FieldLogger) Opt {
	return func(s *Session) error {
		s.log = log
		return nil
	}
}

// New creates a Session reading commands from in and writing responses to out.
func New(in io.Reader, out io.Writer, opts ...Opt) (*Session, error) {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	s := &Session{
		io:     newChannel(in, out),
		images: FileStore(),
		format: imgio.FormatPNG,
		log:    quiet,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Run prompts for tasks until the exit task is given or input ends.
// Task failures are reported and never end the loop. A failure reading the next task name is reported and ends the loop.
func (s *Session) Run() {
	const taskPrompt = "\nTask (hide, show, exit):"
	task, err := s.io.prompt(taskPrompt)
	for ; err == nil && task != TaskExit; task, err = s.io.prompt(taskPrompt) {
		if err := s.Dispatch(task); err != nil {
			s.report(err)
		}
	}
	if err != nil && !errors.Is(err, io.EOF) {
		s.report(fmt.Errorf("failed to read input: %w", err))
	}
	s.io.println("Bye!")
}

// Dispatch runs a single task by name.
func (s *Session) Dispatch(task string) error {
	switch task {
	case TaskHide:
		return s.Hide()
	case TaskShow:
		return s.Show()
	default:
		return &TaskError{Task: task}
	}
}

func (s *Session) report(err error) {
	var taskErr *TaskError
	s.log.WithError(err).Debug("Task failed")
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF):
		// Input ended mid-task, the loop stops on its own.
	case errors.As(err, &taskErr):
		s.io.println("Wrong task: " + taskErr.Task)
	case errors.Is(err, imgio.ErrRead):
		s.io.println("Can't read input file!")
	case errors.Is(err, lsb.ErrCapacity):
		s.io.println("The input image is not large enough to hold this message.")
	case errors.Is(err, lsb.ErrFrameNotFound):
		s.io.println("No hidden message was found in this image.")
	case errors.Is(err, seal.ErrEmptyPassphrase):
		s.io.println("A password is required for sealed messages.")
	case errors.Is(err, seal.ErrInvalidData):
		s.io.println("Can't open the sealed message, the password may be wrong.")
	default:
		s.io.println(err.Error())
	}
}
