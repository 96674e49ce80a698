// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

var levels = map[string]log.Level{
	"debug":   log.DebugLevel,
	"info":    log.InfoLevel,
	"warn":    log.WarnLevel,
	"warning": log.WarnLevel,
	"error":   log.ErrorLevel,
}

var defaultLogger atomic.Pointer[log.Logger]

func init() {
	defaultLogger.Store(New("info"))
}

// ParseLevel maps a level name onto a log.Level. Names are case-insensitive.
func ParseLevel(level string) (log.Level, error) {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		return log.InfoLevel, fmt.Errorf("unknown log level %q: expected debug, info, warn "+
			"or error", level)
	}
	return lvl, nil
}

// New creates a logger writing to stderr. Unknown levels give info.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

func NewWithWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{})
	lvl, _ := ParseLevel(level)
	logger.SetLevel(lvl)
	return logger
}

func Default() *log.Logger {
	return defaultLogger.Load()
}

func SetDefault(logger *log.Logger) {
	defaultLogger.Store(logger)
}

// SetLevel updates the level of the default logger; unknown levels are ignored.
func SetLevel(level string) {
	if lvl, err := ParseLevel(level); err == nil {
		Default().SetLevel(lvl)
	}
}

// ForFile returns a child of the default logger which tags every entry with path, so
// warnings from several programs can be told apart.
func ForFile(path string) *log.Logger {
	return Default().With(FieldPath, path)
}
