package logger_test

import (
	"os"

	"github.com/mfreiberg/taglog/logger"
)

func ExampleNew() {
	log := logger.New(os.Stdout)

	log.Info("service ready")
	log.Warn("disk almost full")
	log.Err("connection refused")
	// Output:
	// [Info]service ready
	// [Warn]disk almost full
	// [Err]connection refused
}
