package example

import (
	"github.com/bittoy/rete/engine"
	"github.com/bittoy/rete/matcher"
	"github.com/bittoy/rete/rule"
	"github.com/bittoy/rete/types"
)

// VariableConflictFilter builds spec §8 scenario 6: a first FeatureTester
// unconditionally binds {x: 5}, and a second FeatureTester's matcher is
// supplied by the caller so both the conflicting ({x:6}) and agreeing
// ({x:5}) cases can be exercised against the same upstream binding without
// duplicating the network.
func VariableConflictFilter(config types.Config, second types.OneInputMatcher) (*engine.Network, *rule.Definition, error) {
	net := engine.NewNetwork(config)
	r := rule.WithID("R", "variable-conflict")

	term, err := engine.NewTerminal(r)
	if err != nil {
		return nil, nil, err
	}

	first := engine.NewFeatureTester(matcher.OneInput(func(types.Fact) any {
		return types.Context{"x": 5}
	}), config.Logger)

	tester := engine.NewFeatureTester(second, config.Logger)

	net.Bus().AddChild(first)
	first.AddChild(tester)
	tester.AddChild(term)
	net.TrackTerminal(term)

	return net, r, nil
}

// ConflictingSecondMatcher returns {x: 6}, which disagrees with the x:5
// first's FeatureTester already bound — the token must not be forwarded.
func ConflictingSecondMatcher() types.OneInputMatcher {
	return matcher.OneInput(func(types.Fact) any {
		return types.Context{"x": 6}
	})
}

// AgreeingSecondMatcher returns {x: 5}, which agrees with the binding
// already on the token — it must be forwarded unchanged.
func AgreeingSecondMatcher() types.OneInputMatcher {
	return matcher.OneInput(func(types.Fact) any {
		return types.Context{"x": 5}
	})
}
