package engine

import (
	"context"

	"github.com/bittoy/rete/types"
)

// Bus is the root of the network. It is never reached by a token — its
// whole role is to turn a working-memory event into the first token of a
// cascade and dispatch it to every child. Exactly one Bus exists per
// Network (see NewNetwork).
type Bus struct {
	base
}

// Add builds a VALID token for fact and dispatches it to every child.
func (b *Bus) Add(ctx context.Context, fact types.Fact) error {
	return b.dispatch(ctx, types.ValidFact(fact))
}

// Remove builds an INVALID token for fact and dispatches it to every
// child.
func (b *Bus) Remove(ctx context.Context, fact types.Fact) error {
	return b.dispatch(ctx, types.InvalidFact(fact))
}
