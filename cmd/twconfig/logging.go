package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns the diagnostic logger. --verbose enables debug output,
// --quiet keeps errors only.
func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if getBoolWithFallback("verbose", "verbose", false) {
		level = log.DebugLevel
	}
	if getBoolWithFallback("quiet", "quiet", false) {
		level = log.ErrorLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "twconfig",
	})
}
