package example

import (
	"github.com/bittoy/rete/engine"
	"github.com/bittoy/rete/matcher"
	"github.com/bittoy/rete/rule"
	"github.com/bittoy/rete/types"
)

// Negation builds spec §8 scenarios 4 and 5: a left FeatureTester binding
// {n: f.id} for kind=="left", a right FeatureTester binding {m: f.id} for
// kind=="right", feeding a NotNode whose matcher is n==m, feeding a
// Terminal. The left fact's activation appears while no matching right
// fact exists, disappears once one does, and reappears only once every
// matching right fact has been retracted — scenario 5 asserts two matching
// right facts against the same network to stress the match counter.
func Negation(config types.Config) (*engine.Network, *rule.Definition, error) {
	net := engine.NewNetwork(config)
	r := rule.WithID("R", "negation")

	term, err := engine.NewTerminal(r)
	if err != nil {
		return nil, nil, err
	}

	left := engine.NewFeatureTester(matcher.OneInput(func(fact types.Fact) any {
		e, ok := fact.(Event)
		if !ok || e.Kind != "left" {
			return false
		}
		return types.Context{"n": e.ID}
	}), config.Logger)

	right := engine.NewFeatureTester(matcher.OneInput(func(fact types.Fact) any {
		e, ok := fact.(Event)
		if !ok || e.Kind != "right" {
			return false
		}
		return types.Context{"m": e.ID}
	}), config.Logger)

	not := engine.NewNotNode(matcher.FieldEqual("n", "m"))

	net.Bus().AddChild(left)
	net.Bus().AddChild(right)
	left.AddChild(not.LeftPort())
	right.AddChild(not.RightPort())
	not.AddChild(term)

	net.Track(not)
	net.TrackTerminal(term)

	return net, r, nil
}
