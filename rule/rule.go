// Package rule provides a minimal concrete types.Rule implementation used
// by Terminal construction and by hand-wired networks, since compiling a
// rule-authoring surface into Rule values is out of scope (see spec
// Non-goals).
package rule

import (
	"github.com/gofrs/uuid/v5"

	"github.com/bittoy/rete/types"
)

// Definition is a concrete types.Rule: a name plus a generated or supplied
// identifier. It carries no conditions or actions of its own — those are
// expressed by the network the compiler (or, here, the hand-wired example
// networks) builds around its Terminal.
type Definition struct {
	id   string
	name string
}

// New builds a Definition named name with a freshly generated v4 UUID as
// its RuleID, the same id-generation call the teacher's message
// construction falls back to when no id is supplied.
func New(name string) (*Definition, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &Definition{id: id.String(), name: name}, nil
}

// WithID builds a Definition with an explicit, caller-supplied identifier —
// useful in tests that need a stable, predictable RuleID.
func WithID(id, name string) *Definition {
	return &Definition{id: id, name: name}
}

// RuleID implements types.Rule.
func (d *Definition) RuleID() string { return d.id }

// Name returns the rule's human-readable name.
func (d *Definition) Name() string { return d.name }
