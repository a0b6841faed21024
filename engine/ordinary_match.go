package engine

import (
	"context"

	"github.com/bittoy/rete/types"
)

// OrdinaryMatch is a two-input positive join. It holds a dual memory — one
// side per port — of every content-identity that has arrived and not yet
// been retracted, and pairs a freshly-arriving token against the opposite
// side's memory to produce combined child tokens.
type OrdinaryMatch struct {
	base
	matcher     types.TwoInputMatcher
	leftMemory  []types.Info
	rightMemory []types.Info
}

// NewOrdinaryMatch builds a join guarded by matcher, which tests
// (leftContext, rightContext) for join-variable agreement.
func NewOrdinaryMatch(matcher types.TwoInputMatcher) *OrdinaryMatch {
	return &OrdinaryMatch{matcher: matcher}
}

// Reset wipes both memories.
func (o *OrdinaryMatch) Reset() {
	o.leftMemory = nil
	o.rightMemory = nil
}

// LeftPort returns the Callbackable bound to this join's left input.
func (o *OrdinaryMatch) LeftPort() Callbackable { return leftPort{o} }

// RightPort returns the Callbackable bound to this join's right input.
func (o *OrdinaryMatch) RightPort() Callbackable { return rightPort{o} }

type leftPort struct{ o *OrdinaryMatch }

func (p leftPort) Callback(ctx context.Context, t types.Token) error {
	return p.o.activateLeft(ctx, t)
}

type rightPort struct{ o *OrdinaryMatch }

func (p rightPort) Callback(ctx context.Context, t types.Token) error {
	return p.o.activateRight(ctx, t)
}

func (o *OrdinaryMatch) activateLeft(ctx context.Context, t types.Token) error {
	return o.activate(ctx, t, &o.leftMemory, o.rightMemory, true)
}

func (o *OrdinaryMatch) activateRight(ctx context.Context, t types.Token) error {
	return o.activate(ctx, t, &o.rightMemory, o.leftMemory, false)
}

// activate implements the symmetric activation spec §4.5 describes: update
// this side's memory first, then iterate a snapshot of the opposite side's
// memory (taken before any further mutation), dispatching one combined
// token per match.
func (o *OrdinaryMatch) activate(ctx context.Context, t types.Token, same *[]types.Info, opposite []types.Info, fromLeft bool) error {
	info := t.ToInfo()
	if t.IsValid() {
		*same = append(*same, info)
	} else {
		removeInfo(same, info)
	}

	// Snapshot: the opposite memory is queried unchanged by this
	// activation, even though *same was just mutated above.
	snapshot := append([]types.Info(nil), opposite...)

	for _, other := range snapshot {
		var matched bool
		var mergedContext types.Context
		if fromLeft {
			matched = o.matcher(info.Context(), other.Context())
		} else {
			matched = o.matcher(other.Context(), info.Context())
		}
		if !matched {
			continue
		}

		if fromLeft {
			mergedContext = info.Context().Merge(other.Context())
			newToken := types.NewToken(t.Tag(), unionData(info.Data(), other.Data()), mergedContext)
			if err := o.dispatch(ctx, newToken); err != nil {
				return err
			}
		} else {
			mergedContext = other.Context().Merge(info.Context())
			newToken := types.NewToken(t.Tag(), unionData(other.Data(), info.Data()), mergedContext)
			if err := o.dispatch(ctx, newToken); err != nil {
				return err
			}
		}
	}
	return nil
}

func unionData(a, b []types.Fact) []types.Fact {
	out := make([]types.Fact, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
