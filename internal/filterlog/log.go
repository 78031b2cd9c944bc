// Package filterlog is a small leveled logger over an injectable
// io.Writer, in the shape of grailbio's log package (Level, an
// Outputter, Print/Printf at each level). Used only by cmd/filterctl and
// by the engine's optional trace hooks — never by the pure pipeline
// functions in internal/parser, internal/normalize, or internal/eval,
// which stay free of I/O and logging per §5.
package filterlog

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level defines logging verbosity. Higher levels are more verbose.
type Level int

const (
	OffLevel Level = iota
	ErrorLevel
	InfoLevel
	DebugLevel
)

// Logger publishes messages at or below its Level to an underlying
// *log.Logger. A nil Logger silently drops every message.
type Logger struct {
	out   *log.Logger
	level Level
}

// New builds a Logger writing to w at the given level.
func New(w io.Writer, level Level) *Logger {
	if level == OffLevel {
		return nil
	}
	return &Logger{out: log.New(w, "", log.LstdFlags), level: level}
}

func (l *Logger) log(level Level, s string) {
	if l == nil || l.out == nil || level > l.level {
		return
	}
	_ = l.out.Output(3, s)
}

func (l *Logger) Printf(format string, args ...any) {
	l.log(InfoLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.log(ErrorLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, args ...any) {
	l.log(DebugLevel, fmt.Sprintf(format, args...))
}

// At reports whether level would currently be published.
func (l *Logger) At(level Level) bool {
	return l != nil && level <= l.level
}

// Std is the default logger, writing Info-and-above to stderr.
var Std = New(os.Stderr, InfoLevel)
