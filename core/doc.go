// Package core defines the shared types used across taglog.
//
// It provides the Level type with its three wire labels (Info, Warn,
// Err), the Entry type that represents one log line before it is
// serialized, and ParseLabel for reading a tagged line back into its
// parts. Bridges such as zaplog use ParseLabel to recover the severity
// of a line produced by the logger package.
package core
