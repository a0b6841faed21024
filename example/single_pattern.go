package example

import (
	"github.com/bittoy/rete/engine"
	"github.com/bittoy/rete/matcher"
	"github.com/bittoy/rete/rule"
	"github.com/bittoy/rete/types"
)

// SingleRulePattern builds spec §8 scenario 1: Bus → FeatureTester(kind ==
// "a") → Terminal(R). Asserting an Event{Kind:"a"} produces exactly one
// activation holding that event and an empty context; retracting it empties
// the terminal again.
func SingleRulePattern(config types.Config) (*engine.Network, *rule.Definition, error) {
	net := engine.NewNetwork(config)
	r := rule.WithID("R", "single-pattern")

	term, err := engine.NewTerminal(r)
	if err != nil {
		return nil, nil, err
	}

	tester := engine.NewFeatureTester(matcher.OneInput(func(fact types.Fact) any {
		e, ok := fact.(Event)
		return ok && e.Kind == "a"
	}), config.Logger)

	net.Bus().AddChild(tester)
	tester.AddChild(term)
	net.TrackTerminal(term)

	return net, r, nil
}
