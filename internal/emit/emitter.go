package emit

import (
	"context"
	"errors"

	"github.com/fiaro/fixtures/internal/logging"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Artifact is a serialized fixture ready to be written.
type Artifact struct {
	Name string
	Text []byte
}

// Emitter writes artifacts to every configured sink.
type Emitter struct {
	sinks  []Sink
	logger *logrus.Logger
}

func NewEmitter(logger *logrus.Logger, sinks ...Sink) *Emitter {
	return &Emitter{sinks: sinks, logger: logger}
}

// Emit writes every artifact to every sink. Each write runs on its own and a
// failed write never stops the others; all failures come back joined, each as
// a *WriteError.
func (e *Emitter) Emit(ctx context.Context, artifacts []Artifact) error {
	var g errgroup.Group
	errs := make([]error, len(artifacts)*len(e.sinks))

	for i, a := range artifacts {
		for j, s := range e.sinks {
			idx := i*len(e.sinks) + j
			g.Go(func() error {
				errs[idx] = e.write(ctx, s, a)
				return nil
			})
		}
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

func (e *Emitter) write(ctx context.Context, s Sink, a Artifact) error {
	if err := s.Write(ctx, a.Name, a.Text); err != nil {
		werr := &WriteError{Fixture: a.Name, Sink: s.Name(), Err: err}
		logging.LogEmissionFailure(e.logger, a.Name, s.Name(), werr)
		return werr
	}
	logging.LogEmission(e.logger, a.Name, s.Name(), len(a.Text))
	return nil
}
