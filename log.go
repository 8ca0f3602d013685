package fireeagle

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Silent unless the caller redirects it; see Logger.
var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Logger exposes the package logger so callers can point its output
// somewhere and raise the level to see each signed request and handshake
// step at debug.
func Logger() *logrus.Logger {
	return log
}
