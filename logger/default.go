package logger

import (
	"os"
	"sync"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = New(os.Stdout)
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Info logs an info message using the default logger
func Info(msg string) {
	Default().Info(msg)
}

// Warn logs a warning message using the default logger
func Warn(msg string) {
	Default().Warn(msg)
}

// Err logs an error message using the default logger
func Err(msg string) {
	Default().Err(msg)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	Default().Warnf(format, args...)
}

// Errf logs a formatted error message using the default logger
func Errf(format string, args ...interface{}) {
	Default().Errf(format, args...)
}
