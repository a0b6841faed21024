package engine

import (
	"context"

	"github.com/bittoy/rete/types"
)

// leftCount pairs a left-side content-identity with the number of
// right-memory entries currently matching it. NotNode keeps these in an
// ordered slice rather than a Go map: spec §5 requires right-activation to
// walk left_memory "in the order it walks left_memory", and native map
// iteration order is randomized, which would make that guarantee
// unenforceable.
type leftCount struct {
	info  types.Info
	count int
}

// NotNode implements negation: a left token passes through iff no right
// token in memory currently matches it. It is the mirror image of
// OrdinaryMatch — instead of emitting on a match, it emits on the *absence*
// of one, and tracks "absence" via a per-left-identity match counter rather
// than a simple present/absent memory.
type NotNode struct {
	base
	matcher     types.TwoInputMatcher
	leftMemory  []leftCount
	rightMemory []types.Info
}

// NewNotNode builds a negation node guarded by matcher, which tests
// (leftContext, rightContext) the same way OrdinaryMatch's matcher does.
func NewNotNode(matcher types.TwoInputMatcher) *NotNode {
	return &NotNode{matcher: matcher}
}

// Reset wipes both memories.
func (n *NotNode) Reset() {
	n.leftMemory = nil
	n.rightMemory = nil
}

// LeftPort returns the Callbackable bound to this node's left input.
func (n *NotNode) LeftPort() Callbackable { return notLeftPort{n} }

// RightPort returns the Callbackable bound to this node's right input.
func (n *NotNode) RightPort() Callbackable { return notRightPort{n} }

type notLeftPort struct{ n *NotNode }

func (p notLeftPort) Callback(ctx context.Context, t types.Token) error {
	return p.n.activateLeft(ctx, t)
}

type notRightPort struct{ n *NotNode }

func (p notRightPort) Callback(ctx context.Context, t types.Token) error {
	return p.n.activateRight(ctx, t)
}

// activateLeft counts how many current right-memory entries match t, records
// that count for VALID tokens (INVALID tokens are never recorded — per spec
// §9 design note (b), left_memory entries are never removed on left
// retraction either, only ever overwritten by a later VALID arrival for the
// same identity), and forwards t unchanged to every child iff the count is
// zero.
func (n *NotNode) activateLeft(ctx context.Context, t types.Token) error {
	count := 0
	for _, r := range n.rightMemory {
		if n.matcher(t.Context(), r.Context()) {
			count++
		}
	}

	if t.IsValid() {
		n.recordLeft(t.ToInfo(), count)
	}

	if count != 0 {
		return nil
	}
	return n.dispatch(ctx, t)
}

// activateRight updates right_memory, then walks left_memory in order,
// bumping the counter of every left identity whose context matches r and
// emitting a child token exactly when that counter crosses the 0/1 edge.
func (n *NotNode) activateRight(ctx context.Context, t types.Token) error {
	var delta int
	if t.IsValid() {
		n.rightMemory = append(n.rightMemory, t.ToInfo())
		delta = 1
	} else {
		removeInfo(&n.rightMemory, t.ToInfo())
		delta = -1
	}

	for i := range n.leftMemory {
		left := &n.leftMemory[i]
		if !n.matcher(left.info.Context(), t.Context()) {
			continue
		}
		left.count += delta
		newcount := left.count

		var child *types.Token
		switch {
		case newcount == 0 && delta == -1:
			tok := left.info.ToValidToken()
			child = &tok
		case newcount == 1 && delta == 1:
			tok := left.info.ToInvalidToken()
			child = &tok
		}
		if child == nil {
			continue
		}
		if err := n.dispatch(ctx, *child); err != nil {
			return err
		}
	}
	return nil
}

// recordLeft sets the counter for info, overwriting any existing entry for
// the same content-identity or appending a new one.
func (n *NotNode) recordLeft(info types.Info, count int) {
	for i := range n.leftMemory {
		if n.leftMemory[i].info.Equal(info) {
			n.leftMemory[i].count = count
			return
		}
	}
	n.leftMemory = append(n.leftMemory, leftCount{info: info, count: count})
}
