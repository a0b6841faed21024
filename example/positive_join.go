package example

import (
	"github.com/bittoy/rete/engine"
	"github.com/bittoy/rete/matcher"
	"github.com/bittoy/rete/rule"
	"github.com/bittoy/rete/types"
)

// PositiveJoin builds spec §8 scenario 3: two FeatureTesters feed an
// OrdinaryMatch whose matcher asserts left.n == right.m. Asserting
// Event{Kind:"a", ID:3} and Event{Kind:"b", Val:3} yields exactly one
// activation with combined data and context {n:3, m:3}; retracting either
// fact removes it.
func PositiveJoin(config types.Config) (*engine.Network, *rule.Definition, error) {
	net := engine.NewNetwork(config)
	r := rule.WithID("R", "positive-join")

	term, err := engine.NewTerminal(r)
	if err != nil {
		return nil, nil, err
	}

	left := engine.NewFeatureTester(matcher.OneInput(func(fact types.Fact) any {
		e, ok := fact.(Event)
		if !ok || e.Kind != "a" {
			return false
		}
		return types.Context{"n": e.ID}
	}), config.Logger)

	right := engine.NewFeatureTester(matcher.OneInput(func(fact types.Fact) any {
		e, ok := fact.(Event)
		if !ok || e.Kind != "b" {
			return false
		}
		return types.Context{"m": e.Val}
	}), config.Logger)

	join := engine.NewOrdinaryMatch(matcher.FieldEqual("n", "m"))

	net.Bus().AddChild(left)
	net.Bus().AddChild(right)
	left.AddChild(join.LeftPort())
	right.AddChild(join.RightPort())
	join.AddChild(term)

	net.Track(join)
	net.TrackTerminal(term)

	return net, r, nil
}
