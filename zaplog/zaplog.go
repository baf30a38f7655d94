package zaplog

import (
	"bytes"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mfreiberg/taglog/core"
)

// Writer is a sink adapter that forwards tagged lines to a zap.Logger.
// Plugging it into logger.New routes the "[<Label>]<msg>" stream into
// structured logging: the label is parsed off each complete line and
// mapped to the corresponding zap level. Lines without a recognized
// label are logged at Info.
//
// Writer buffers partial lines between Write calls; Sync flushes any
// unterminated remainder. Not safe for concurrent use, matching the
// single-writer assumption of the logger package.
type Writer struct {
	z   *zap.Logger
	buf bytes.Buffer
}

// NewWriter creates a Writer forwarding to z
func NewWriter(z *zap.Logger) *Writer {
	return &Writer{z: z}
}

// Write consumes p, emitting one zap entry per complete line
func (w *Writer) Write(p []byte) (int, error) {
	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Partial line, keep it for the next Write
			w.buf.WriteString(line)
			return len(p), nil
		}
		w.emit(line)
	}
}

// Sync emits any buffered partial line and syncs the underlying logger
func (w *Writer) Sync() error {
	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
	return w.z.Sync()
}

func (w *Writer) emit(line string) {
	level, msg, _ := core.ParseLabel(line)
	if ce := w.z.Check(zapLevel(level), msg); ce != nil {
		ce.Write()
	}
}

// zapLevel maps a core.Level to its zapcore equivalent
func zapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
