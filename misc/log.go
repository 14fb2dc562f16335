package misc

import (
	"os"
	"sync/atomic"

	"github.com/BrugadaSyndrome/bslogger"
)

var verbose atomic.Bool

// SetVerbose makes loggers created afterwards print debug messages.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// NewLogger returns a stdout logger prefixed with name.
func NewLogger(name string) bslogger.Logger {
	return NewFileLogger(name, nil)
}

// NewFileLogger is NewLogger that also records every message in logFile.
func NewFileLogger(name string, logFile *os.File) bslogger.Logger {
	if verbose.Load() {
		return bslogger.NewLogger(name, bslogger.All, logFile)
	}
	return bslogger.NewLogger(name, bslogger.Normal, logFile)
}
