package qmc

import (
	"io"

	"github.com/sirupsen/logrus"
)

// log is the package logger. It discards output by default; cmd/qmc wires
// it to os.Stderr when --verbose is passed (see SetOutput).
var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetOutput redirects the package's diagnostic logging and lowers its level
// to Debug, letting callers (cmd/qmc's --verbose flag) opt in to seeing
// per-stage progress.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
	log.SetLevel(logrus.DebugLevel)
}
