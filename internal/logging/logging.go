// Package logging builds the charmbracelet/log logger shared by the board,
// the store and the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Options holds configuration for the logger.
type Options struct {
	Level           string
	Format          string
	File            string    // empty disables file output
	Fallback        io.Writer // used when File is empty; nil discards
	ReportTimestamp bool
}

// Logger pairs a logger with the file it owns, if any.
type Logger struct {
	*log.Logger
	Session string
	file    *os.File
}

// New creates a logger tagged with a fresh session id.
// The board owns stdout, so output goes to Options.File when set.
func New(opts Options) (*Logger, error) {
	var (
		w    io.Writer = io.Discard
		file *os.File
	)
	switch {
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, file = f, f
	case opts.Fallback != nil:
		w = opts.Fallback
	}

	session := uuid.NewString()
	l := log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(opts.Level),
		Formatter:       ParseFormatter(opts.Format),
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          "todoboard",
	}).With("session", session)

	return &Logger{Logger: l, Session: session, file: file}, nil
}

// Close closes the log file, if one was opened.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel parses a string log level. Unknown values mean info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a formatter name. Unknown values mean text.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
