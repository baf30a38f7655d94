package logger

import (
	"fmt"
	"io"

	"github.com/mfreiberg/taglog/core"
)

// Logger writes severity-tagged lines to a single sink (immutable)
type Logger struct {
	sink io.Writer
}

// New creates a Logger bound to the given sink. The sink is borrowed:
// the caller owns it and must keep it valid for as long as the Logger
// is used. Construction never fails.
func New(sink io.Writer) *Logger {
	return &Logger{sink: sink}
}

// Log writes one line of the form "[<Label>]<msg>" at the given level
func (l *Logger) Log(level core.Level, msg string) {
	l.write(core.Entry{Level: level, Message: msg})
}

// write serializes an entry and performs exactly one Write on the sink.
// The line is assembled up front so a slow or shared sink never sees a
// partial line. Writes are unbuffered; there is no flush step. A write
// error is not intercepted, the contract is one attempted write per call.
func (l *Logger) write(entry core.Entry) {
	label := entry.Level.String()
	buf := make([]byte, 0, len(label)+len(entry.Message)+3)
	buf = append(buf, '[')
	buf = append(buf, label...)
	buf = append(buf, ']')
	buf = append(buf, entry.Message...)
	buf = append(buf, '\n')
	_, _ = l.sink.Write(buf)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.write(core.Entry{Level: core.InfoLevel, Message: msg})
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	l.write(core.Entry{Level: core.WarnLevel, Message: msg})
}

// Err logs an error message
func (l *Logger) Err(msg string) {
	l.write(core.Entry{Level: core.ErrLevel, Message: msg})
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.write(core.Entry{Level: core.InfoLevel, Message: fmt.Sprintf(format, args...)})
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.write(core.Entry{Level: core.WarnLevel, Message: fmt.Sprintf(format, args...)})
}

// Errf logs an error message with formatting
func (l *Logger) Errf(format string, args ...interface{}) {
	l.write(core.Entry{Level: core.ErrLevel, Message: fmt.Sprintf(format, args...)})
}
