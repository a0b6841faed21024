package example

import (
	"github.com/bittoy/rete/engine"
	"github.com/bittoy/rete/matcher"
	"github.com/bittoy/rete/rule"
	"github.com/bittoy/rete/types"
)

// BindingExtraction builds spec §8 scenario 2: a FeatureTester whose matcher
// returns a binding mapping {n: f.id} when kind=="a". After asserting
// Event{Kind:"a", ID:7}, the terminal's activation carries context {n: 7}.
func BindingExtraction(config types.Config) (*engine.Network, *rule.Definition, error) {
	net := engine.NewNetwork(config)
	r := rule.WithID("R", "binding-extraction")

	term, err := engine.NewTerminal(r)
	if err != nil {
		return nil, nil, err
	}

	tester := engine.NewFeatureTester(matcher.OneInput(func(fact types.Fact) any {
		e, ok := fact.(Event)
		if !ok || e.Kind != "a" {
			return false
		}
		return types.Context{"n": e.ID}
	}), config.Logger)

	net.Bus().AddChild(tester)
	tester.AddChild(term)
	net.TrackTerminal(term)

	return net, r, nil
}
