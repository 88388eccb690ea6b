package app

import (
	"io"
	"os"

	"github.com/juju/loggo"
	"gopkg.in/errgo.v1"
)

// SetupLogging applies the loggo level specification and, when path is set,
// sends every log entry to that file. With quiet set and no path, output is
// discarded so it cannot scribble over a terminal UI. The returned closer
// releases the log file.
func SetupLogging(spec, path string, quiet bool) (io.Closer, error) {
	if err := loggo.ConfigureLoggers(spec); err != nil {
		return nil, errgo.Notef(err, "cannot configure loggers from %q", spec)
	}
	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errgo.Notef(err, "cannot open log file")
		}
		w, closer = f, f
	case quiet:
		w = io.Discard
	default:
		return closer, nil
	}
	if _, err := loggo.ReplaceDefaultWriter(loggo.NewSimpleWriter(w, loggo.DefaultFormatter)); err != nil {
		closer.Close()
		return nil, errgo.Notef(err, "cannot replace log writer")
	}
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
