// internal/logging/logging.go

package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logrus logger writing text output to out at the given level.
func New(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return logger, nil
}

// LogEmission logs a fixture that was written to a sink.
func LogEmission(logger *logrus.Logger, fixture, sink string, size int) {
	logger.WithFields(logrus.Fields{
		"fixture": fixture,
		"sink":    sink,
		"bytes":   size,
	}).Info("Fixture written")
}

// LogEmissionFailure logs a fixture that could not be written to a sink.
func LogEmissionFailure(logger *logrus.Logger, fixture, sink string, err error) {
	logger.WithFields(logrus.Fields{
		"fixture": fixture,
		"sink":    sink,
		"error":   err,
	}).Error("Fixture write failed")
}
