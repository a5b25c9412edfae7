package i

// Logger is the logging surface used by services.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}
