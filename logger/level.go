package logger

import "github.com/mfreiberg/taglog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	InfoLevel = core.InfoLevel
	WarnLevel = core.WarnLevel
	ErrLevel  = core.ErrLevel
)
