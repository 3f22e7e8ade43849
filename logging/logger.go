// Package logging provides the file logger shared by every termfolio front end.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the rotating log file.
type Options struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	Debug      bool
	JSON       bool
}

// Logger writes log lines to a rotating file. A nil *Logger discards
// everything, so components can accept an optional logger.
type Logger struct {
	logger *log.Logger
	closer io.Closer
	debug  bool
	json   bool
}

// New creates a logger writing to opts.File. An empty file name yields a
// logger that discards output.
func New(opts Options) (*Logger, error) {
	if opts.File == "" {
		return Discard(), nil
	}
	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	lf := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB, // megabytes
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays, // days
		Compress:   opts.Compress,
	}
	return &Logger{
		logger: log.New(lf, "", log.LstdFlags),
		closer: lf,
		debug:  opts.Debug,
		json:   opts.JSON,
	}, nil
}

// NewWriter creates a logger over an arbitrary writer. Used by tests.
func NewWriter(w io.Writer, debug bool) *Logger {
	return &Logger{logger: log.New(w, "", 0), debug: debug}
}

// Discard returns a logger that drops every message.
func Discard() *Logger {
	return &Logger{logger: log.New(io.Discard, "", 0)}
}

// Writer returns the underlying writer, e.g. for gin's access log.
func (l *Logger) Writer() io.Writer {
	if l == nil {
		return io.Discard
	}
	return l.logger.Writer()
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Log logs a general message.
func (l *Logger) Log(message string) {
	l.write("info", message)
}

// Logf logs a formatted general message.
func (l *Logger) Logf(format string, v ...any) {
	l.write("info", fmt.Sprintf(format, v...))
}

// Debugf logs only when debug output is enabled.
func (l *Logger) Debugf(format string, v ...any) {
	if l == nil || !l.debug {
		return
	}
	l.write("debug", fmt.Sprintf(format, v...))
}

// LogError logs an error. Nil errors are ignored.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}
	l.write("error", "Error: "+err.Error())
}

func (l *Logger) write(level, msg string) {
	if l == nil {
		return
	}
	if l.json {
		_ = json.NewEncoder(l.logger.Writer()).Encode(map[string]any{"level": level, "msg": msg})
		return
	}
	if level == "debug" {
		msg = "[debug] " + msg
	}
	l.logger.Print(msg)
}
