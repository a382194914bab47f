// Package emit writes serialized fixtures to their destinations: files,
// standard output, redis and postgres.
package emit

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Sink is a destination for serialized fixtures.
type Sink interface {
	Name() string
	Write(ctx context.Context, name string, text []byte) error
}

// FileSink writes each fixture to <Dir>/<name>, replacing any existing file.
type FileSink struct {
	Dir string
}

func (s FileSink) Name() string {
	return "file:" + s.Dir
}

func (s FileSink) Write(_ context.Context, name string, text []byte) (err error) {
	f, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()

	_, err = f.Write(text)
	return err
}

// WriterSink writes each fixture followed by a newline to an io.Writer.
type WriterSink struct {
	Label string
	W     io.Writer

	mu sync.Mutex
}

func (s *WriterSink) Name() string {
	return s.Label
}

func (s *WriterSink) Write(_ context.Context, _ string, text []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, 0, len(text)+1)
	buf = append(buf, text...)
	buf = append(buf, '\n')
	_, err := s.W.Write(buf)
	return err
}
