// Package logger is the public API of taglog. Most users only need to
// import this package.
//
// A Logger is immutable after construction — it holds exactly one sink
// reference, set once in New and never modified. The sink is any
// io.Writer the caller supplies; the caller keeps ownership and must
// keep the sink alive for the Logger's lifetime.
//
// Every call to Info, Warn, or Err appends exactly one line to the
// sink:
//
//	[Info]<message>
//	[Warn]<message>
//	[Err]<message>
//
// each terminated by a newline. The line is assembled before the write,
// so a call never splits a line across multiple writes. Writes are
// unbuffered and there is no explicit flush; each call is one Write on
// the sink. The Logger does not intercept sink write errors — whatever
// failure mode the sink has is the caller's concern.
//
// The package initializes a default Logger bound to stdout in init().
// The package-level functions Info, Warn, Err, and their formatted
// variants delegate to this default instance, so simple programs can
// log without any setup:
//
//	logger.Info("ready")
//
// The design assumes a single writer; nothing in Logger itself
// serializes concurrent calls.
package logger
