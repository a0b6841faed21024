package engine

import (
	"context"
	"time"

	"github.com/bittoy/rete/types"
)

// Network owns the single Bus, every Resettable node wired beneath it, and
// a Terminal per compiled rule. It is the only thing application code talks
// to — direct node mutation from outside is undefined, per spec §5.
type Network struct {
	config    types.Config
	bus       *Bus
	resets    []Resettable
	terminals map[string]*Terminal
}

// NewNetwork builds an empty network: one Bus and no nodes beneath it. The
// compiler (absent from this package — see spec §6) is responsible for
// constructing nodes and wiring them with AddChild/LeftPort/RightPort, then
// registering them here with Track/TrackTerminal.
func NewNetwork(config types.Config) *Network {
	return &Network{
		config:    config,
		bus:       &Bus{},
		terminals: make(map[string]*Terminal),
	}
}

// Bus returns the network's single root node, for the compiler to wire
// children onto.
func (n *Network) Bus() *Bus { return n.bus }

// Track registers a Resettable node so Reset clears it along with every
// other node in the network. FeatureTester is memory-less and need not be
// tracked; OrdinaryMatch and NotNode should be.
func (n *Network) Track(r Resettable) {
	n.resets = append(n.resets, r)
}

// TrackTerminal registers a rule's Terminal under its rule ID, both so
// Reset clears its memory and so GetActivations/GetAllActivations can find
// it later.
func (n *Network) TrackTerminal(term *Terminal) {
	n.Track(term)
	n.terminals[term.rule.RuleID()] = term
}

// AddFact asserts fact into working memory: it builds a VALID token at the
// Bus and returns only once every reachable node has finished processing
// the induced cascade, per spec §5.
func (n *Network) AddFact(ctx context.Context, fact types.Fact) error {
	return n.dispatchTimed(ctx, types.Valid, func() error {
		return n.bus.Add(ctx, fact)
	})
}

// RemoveFact retracts fact from working memory, symmetrically to AddFact.
func (n *Network) RemoveFact(ctx context.Context, fact types.Fact) error {
	return n.dispatchTimed(ctx, types.Invalid, func() error {
		return n.bus.Remove(ctx, fact)
	})
}

func (n *Network) dispatchTimed(_ context.Context, tag types.Tag, cascade func() error) error {
	start := time.Now()
	err := cascade()

	if n.config.MetricsEnabled {
		factEventsTotal.WithLabelValues(tag.String()).Inc()
		cascadeDuration.WithLabelValues(tag.String()).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		n.config.Logger.Printf("cascade error tag=%s err=%v", tag, err)
	}
	return err
}

// GetActivations returns the current activation snapshot for ruleID, or nil
// if no terminal is registered under that ID.
func (n *Network) GetActivations(ruleID string) []types.Activation {
	term, ok := n.terminals[ruleID]
	if !ok {
		return nil
	}
	activations := term.GetActivations()
	if n.config.MetricsEnabled {
		activationSetSize.WithLabelValues(ruleID).Set(float64(len(activations)))
	}
	return activations
}

// GetAllActivations returns every registered rule's current activation
// snapshot, keyed by rule ID — the shape an agenda would poll across a
// working-memory change to decide what to schedule.
func (n *Network) GetAllActivations() map[string][]types.Activation {
	out := make(map[string][]types.Activation, len(n.terminals))
	for ruleID := range n.terminals {
		out[ruleID] = n.GetActivations(ruleID)
	}
	return out
}

// Reset restores every tracked node (including every Terminal) to its
// initial empty memory state.
func (n *Network) Reset() {
	for _, r := range n.resets {
		r.Reset()
	}
}
