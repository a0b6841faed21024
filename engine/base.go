/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package engine implements the RETE node taxonomy — Bus, FeatureTester,
// OrdinaryMatch, NotNode, Terminal — and the Network driver that wires them
// together and exposes AddFact/RemoveFact/GetActivations to the rest of the
// application. Compilation of rule conditions into a connected graph of
// these nodes is outside this package; Network only dictates how an
// already-wired graph behaves.
package engine

import (
	"context"

	"github.com/bittoy/rete/types"
)

// Callbackable is implemented by anything that can receive a token on a
// single input port. One-input nodes implement it directly; two-input
// nodes expose one Callbackable per port via LeftPort()/RightPort(), which
// is how AddChild(parent, child, port) from spec §6 is realized in Go.
type Callbackable interface {
	Callback(ctx context.Context, t types.Token) error
}

// Resettable is implemented by any node that owns memory. Reset() restores
// it to the initial empty state; memory-less nodes that embed base inherit
// base's no-op Reset, so every node can be registered uniformly with a
// Network.
type Resettable interface {
	Reset()
}

// base provides child registration and callback dispatch shared by every
// node that can have children: Bus, FeatureTester, OrdinaryMatch, NotNode.
// Terminal is a sink and does not embed it.
type base struct {
	children []Callbackable
}

// AddChild registers a child to receive every token this node forwards.
// Children are notified in registration order, per spec §5.
func (b *base) AddChild(child Callbackable) {
	b.children = append(b.children, child)
}

// dispatch forwards a token to every registered child in order, stopping
// and returning the first error (a WiringError propagating up out of the
// cascade per spec §7).
func (b *base) dispatch(ctx context.Context, t types.Token) error {
	for _, child := range b.children {
		if err := child.Callback(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

// Reset is a no-op for nodes with no memory of their own; the embedding
// type overrides it when it does hold memory.
func (b *base) Reset() {}

// removeInfo removes the first occurrence of target from *memory, by
// content identity. A retraction for an identity not present is a no-op,
// per spec §3.6.
func removeInfo(memory *[]types.Info, target types.Info) {
	for i, v := range *memory {
		if v.Equal(target) {
			*memory = append((*memory)[:i], (*memory)[i+1:]...)
			return
		}
	}
}
