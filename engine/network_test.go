package engine

import (
	"context"
	"testing"

	"github.com/bittoy/rete/types"
)

func buildSingleRuleNetwork(t *testing.T) (*Network, *fakeRule) {
	t.Helper()
	net := NewNetwork(types.NewConfig())
	r := &fakeRule{id: "R"}

	term, err := NewTerminal(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tester := NewFeatureTester(func(fact types.Fact) any {
		return fact == "a"
	}, nil)

	net.Bus().AddChild(tester)
	tester.AddChild(term)
	net.TrackTerminal(term)

	return net, r
}

func TestNetworkAddAndRemoveFact(t *testing.T) {
	net, r := buildSingleRuleNetwork(t)
	ctx := context.Background()

	if err := net.AddFact(ctx, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := net.GetActivations(r.RuleID()); len(got) != 1 {
		t.Fatalf("expected one activation after add, got %d", len(got))
	}

	if err := net.RemoveFact(ctx, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := net.GetActivations(r.RuleID()); len(got) != 0 {
		t.Fatalf("expected no activations after remove, got %d", len(got))
	}
}

func TestNetworkRetractionSymmetry(t *testing.T) {
	net, r := buildSingleRuleNetwork(t)
	ctx := context.Background()

	_ = net.AddFact(ctx, "a")
	_ = net.RemoveFact(ctx, "a")

	if got := net.GetActivations(r.RuleID()); len(got) != 0 {
		t.Fatalf("expected add-then-remove to be an identity on terminal memory, got %d activations", len(got))
	}
}

func TestNetworkUnknownRuleIDReturnsNil(t *testing.T) {
	net, _ := buildSingleRuleNetwork(t)
	if got := net.GetActivations("nonexistent"); got != nil {
		t.Fatalf("expected nil for an unregistered rule ID, got %v", got)
	}
}

func TestNetworkResetClearsTerminal(t *testing.T) {
	net, r := buildSingleRuleNetwork(t)
	ctx := context.Background()

	_ = net.AddFact(ctx, "a")
	net.Reset()

	if got := net.GetActivations(r.RuleID()); len(got) != 0 {
		t.Fatalf("expected Reset to clear terminal memory, got %d activations", len(got))
	}
}

func TestNetworkGetAllActivations(t *testing.T) {
	net, r := buildSingleRuleNetwork(t)
	_ = net.AddFact(context.Background(), "a")

	all := net.GetAllActivations()
	if len(all[r.RuleID()]) != 1 {
		t.Fatalf("expected GetAllActivations to include rule %s, got %v", r.RuleID(), all)
	}
}
