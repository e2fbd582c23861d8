// Package logger is the structured, leveled logger shared by every component.
package logger

import (
	"slices"
	"sync"
)

// Log levels accepted in config.yml (log.level).
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var levels = []string{DebugLevel, InfoLevel, WarnLevel, ErrorLevel}

// Valid reports whether level is one of the accepted level names.
func Valid(level string) bool {
	return slices.Contains(levels, level)
}

var (
	process     *Logger
	processOnce sync.Once
)

// Get returns the process-wide logger and applies level to it. Children
// created with With follow later level changes.
func Get(level string) *Logger {
	processOnce.Do(func() {
		process = newZapLogger(level)
	})
	process.SetLevel(level)
	return process
}
