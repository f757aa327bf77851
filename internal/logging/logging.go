// Package logging builds the logrus logger shared by the game.
// The terminal UI owns stdout, so log lines go to a file or nowhere.
package logging

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// New returns a logger writing text records at the given level to path.
// An empty path discards all output.
func New(level, path string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "logging: bad level %q", level)
	}

	logger := log.New()
	logger.SetLevel(lvl)
	logger.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	if path == "" {
		logger.SetOutput(io.Discard)
		return logger, nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "logging: open log file")
	}
	logger.SetOutput(f)
	return logger, f, nil
}

// Discard returns an entry that drops everything.
func Discard() *log.Entry {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return log.NewEntry(logger)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
