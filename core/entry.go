package core

import "strings"

// Level represents the severity level of a log line
type Level int8

const (
	// InfoLevel for general informational messages
	InfoLevel Level = iota
	// WarnLevel for warning messages
	WarnLevel
	// ErrLevel for error messages
	ErrLevel
)

// String returns the severity label exactly as it appears on the wire
func (l Level) String() string {
	switch l {
	case InfoLevel:
		return "Info"
	case WarnLevel:
		return "Warn"
	case ErrLevel:
		return "Err"
	default:
		return "Unknown"
	}
}

// Entry represents a single log line before serialization
type Entry struct {
	Level   Level
	Message string
}

// ParseLabel splits a tagged line of the form "[<Label>]<message>" into
// its level and message. A trailing newline, if present, is stripped.
// ok is false when the line does not start with a known label.
func ParseLabel(line string) (level Level, msg string, ok bool) {
	line = strings.TrimSuffix(line, "\n")
	for _, l := range []Level{InfoLevel, WarnLevel, ErrLevel} {
		tag := "[" + l.String() + "]"
		if strings.HasPrefix(line, tag) {
			return l, line[len(tag):], true
		}
	}
	return InfoLevel, line, false
}
