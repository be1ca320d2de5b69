package core

// Logger interface for renderer and viewer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
