package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mfreiberg/taglog/format"
	"github.com/mfreiberg/taglog/greet"
	"github.com/mfreiberg/taglog/logger"
	"github.com/mfreiberg/taglog/zaplog"
)

// writeTranscript emits the demo transcript to out. The sequence is
// fixed: greeting line, three tagged messages, blank line, then the two
// formatted messages. With structured set, the tagged lines go through
// a zap pipeline writing to the same out.
func writeTranscript(out io.Writer, structured bool) {
	fmt.Fprintln(out, "Hello world")

	sink := out
	if structured {
		w := zaplog.NewWriter(newZapLogger(out))
		defer func() { _ = w.Sync() }()
		sink = w
	}
	log := logger.New(sink)

	log.Info("I'm using the logger from the external repo")
	log.Warn("And there were no errors!")
	log.Err("Well, except this one...")

	fmt.Fprintln(out)

	log.Info(format.ToUpperCase("GoEs to UppEr Case"))
	log.Info(format.ToLowerCase("GoEs to LoWER Case"))
}

// writeGreeting prints the greeting for who followed by the local time
func writeGreeting(out io.Writer, who string) error {
	if _, err := fmt.Fprintln(out, greet.Greeting(who)); err != nil {
		return err
	}
	return greet.LocalTime(out)
}

func newZapLogger(out io.Writer) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(out), zapcore.InfoLevel))
}
