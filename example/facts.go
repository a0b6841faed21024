// Package example hand-wires the small networks a compiler would build for
// each rule in spec §8's testable scenarios, since rule-to-network
// compilation is itself out of scope — see the Non-goals carried into
// SPEC_FULL.md.
package example

// Event is a comparable fact shape used across every scenario network:
// comparable fields only, so two Events are == iff every field matches,
// which is the equality spec §3.1 requires of facts.
type Event struct {
	Kind string
	ID   int
	Val  int
}
