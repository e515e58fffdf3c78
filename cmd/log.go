package cmd

import (
	"os"

	"github.com/phuslu/log"
)

// logger is the CLI logger, configured by setupLogger.
var logger = &log.DefaultLogger

// setupLogger directs the default logger to stderr at the given level.
func setupLogger(level string) {
	log.DefaultLogger = log.Logger{
		Level:  log.ParseLevel(level),
		Writer: &log.ConsoleWriter{
			Writer:      os.Stderr,
			ColorOutput: isTerminal(os.Stderr),
		},
	}
}

// isTerminal reports whether f is a character device.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
