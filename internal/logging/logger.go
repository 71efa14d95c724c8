// Package logging defines a minimal structured-logging interface used across
// the client. Implementations can wrap zap, slog, zerolog, etc.
package logging

// Logger is a structured logger. The variadic args are interpreted as
// key-value pairs, e.g.:
//
//	log.Info("request finished", "path", path, "status", status)
type Logger interface {
	// Debug logs fine-grained diagnostic detail.
	Debug(msg string, args ...any)

	// Info logs an informational message.
	Info(msg string, args ...any)

	// Warn logs a warning for unusual but non-fatal conditions.
	Warn(msg string, args ...any)

	// Error logs a failure.
	Error(msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}
