package engine

import (
	"context"

	"github.com/bittoy/rete/types"
)

// Terminal is the per-rule sink of a network: a single-input node with no
// children that accumulates the content-identities currently satisfying its
// rule and can report them as Activations on demand.
type Terminal struct {
	rule   types.Rule
	memory []types.Info
}

// NewTerminal builds a Terminal bound to rule. rule is accepted as any,
// mirroring the runtime isinstance(rule, Rule) check the reference
// implementation performs, and must assert to types.Rule — anything else is
// a wiring error per spec §4.7/§7.
func NewTerminal(rule any) (*Terminal, error) {
	r, ok := rule.(types.Rule)
	if !ok || r == nil {
		return nil, types.NewWiringError("terminal constructed with a non-rule argument: %v", rule)
	}
	return &Terminal{rule: r}, nil
}

// Reset empties the activation memory.
func (t *Terminal) Reset() {
	t.memory = nil
}

// Callback appends (VALID) or removes (INVALID) the token's content
// identity. A retraction for an identity not currently in memory is a
// no-op.
func (t *Terminal) Callback(_ context.Context, tok types.Token) error {
	info := tok.ToInfo()
	if tok.IsValid() {
		t.memory = append(t.memory, info)
	} else {
		removeInfo(&t.memory, info)
	}
	return nil
}

// GetActivations snapshots the current memory into one Activation per
// entry. The returned slice and every Activation in it are independent of
// subsequent memory mutation: data is copied into a fresh slice and context
// into a fresh map.
func (t *Terminal) GetActivations() []types.Activation {
	out := make([]types.Activation, 0, len(t.memory))
	for _, info := range t.memory {
		facts := append([]types.Fact(nil), info.Data()...)
		out = append(out, types.Activation{
			Rule:    t.rule,
			Facts:   facts,
			Context: info.Context().Copy(),
		})
	}
	return out
}
