package emit

import (
	"errors"
	"fmt"
)

// ErrWriteFailure matches every error produced by a failed emission.
var ErrWriteFailure = errors.New("write failure")

// WriteError reports that one fixture could not be written to one sink.
type WriteError struct {
	Fixture string
	Sink    string
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s to %s: %v", e.Fixture, e.Sink, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrWriteFailure) hold for every WriteError.
func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailure
}

// SinkFailure records a sink that could not be opened, so the fixtures
// meant for it are reported instead of written.
type SinkFailure struct {
	Sink string
	Err  error
}

// WriteErrors returns one *WriteError per fixture, joined.
func (f SinkFailure) WriteErrors(fixtures []string) error {
	errs := make([]error, 0, len(fixtures))
	for _, name := range fixtures {
		errs = append(errs, &WriteError{Fixture: name, Sink: f.Sink, Err: f.Err})
	}
	return errors.Join(errs...)
}
