package types

import "fmt"

// WiringError represents a programmer fault the compiler that built the
// network should have prevented — per spec §7, the two cases are a
// FeatureTester receiving a token whose data does not have exactly one
// fact, and a Terminal constructed with a non-Rule argument. A WiringError
// is fatal to the add/remove cascade that produced it; it is never a soft
// miss.
type WiringError struct {
	msg string
}

func (e *WiringError) Error() string {
	return "rete: wiring error: " + e.msg
}

// NewWiringError builds a WiringError from a format string, the same
// constructor shape as the teacher's NewEngineError.
func NewWiringError(format string, args ...any) *WiringError {
	return &WiringError{msg: fmt.Sprintf(format, args...)}
}
