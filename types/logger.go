package types

import (
	"log"
	"os"
)

// Logger is the logging interface used throughout the network, the same
// narrow Printf shape the teacher's own components already call against
// (config.Logger.Printf(...) in utils/js/js_engine.go). Any structured
// logger that exposes a Printf method satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

// stdLogger adapts the standard library's log.Logger to the Logger
// interface.
type stdLogger struct {
	*log.Logger
}

// DefaultLogger returns a Logger backed by the standard library, writing to
// stderr with a microsecond timestamp — the same baseline a Go service
// reaches for before wiring in something heavier.
func DefaultLogger() Logger {
	return &stdLogger{Logger: log.New(os.Stderr, "[rete] ", log.LstdFlags|log.Lmicroseconds)}
}
