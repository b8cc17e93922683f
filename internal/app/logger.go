package app

// Logger is the narrow logging dependency services take; *slog.Logger
// satisfies it.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}
