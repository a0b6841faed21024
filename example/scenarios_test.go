package example

import (
	"context"
	"testing"

	"github.com/bittoy/rete/types"
)

func TestSingleRulePattern(t *testing.T) {
	net, r, err := SingleRulePattern(types.NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()
	fact := Event{Kind: "a", ID: 1}

	if err := net.AddFact(ctx, fact); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	activations := net.GetActivations(r.RuleID())
	if len(activations) != 1 || activations[0].Facts[0] != fact {
		t.Fatalf("expected one activation holding %v, got %v", fact, activations)
	}

	if err := net.RemoveFact(ctx, fact); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(net.GetActivations(r.RuleID())) != 0 {
		t.Fatalf("expected no activations after retraction")
	}
}

func TestBindingExtraction(t *testing.T) {
	net, r, err := BindingExtraction(types.NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	if err := net.AddFact(ctx, Event{Kind: "a", ID: 7}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	activations := net.GetActivations(r.RuleID())
	if len(activations) != 1 || activations[0].Context["n"] != 7 {
		t.Fatalf("expected context {n:7}, got %v", activations)
	}
}

func TestPositiveJoin(t *testing.T) {
	net, r, err := PositiveJoin(types.NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	left := Event{Kind: "a", ID: 3}
	right := Event{Kind: "b", Val: 3}

	_ = net.AddFact(ctx, left)
	_ = net.AddFact(ctx, right)

	activations := net.GetActivations(r.RuleID())
	if len(activations) != 1 {
		t.Fatalf("expected exactly one activation, got %d", len(activations))
	}
	if activations[0].Context["n"] != 3 || activations[0].Context["m"] != 3 {
		t.Fatalf("expected context {n:3, m:3}, got %v", activations[0].Context)
	}
	if len(activations[0].Facts) != 2 {
		t.Fatalf("expected combined facts from both sides, got %v", activations[0].Facts)
	}

	_ = net.RemoveFact(ctx, left)
	if len(net.GetActivations(r.RuleID())) != 0 {
		t.Fatalf("expected retracting either fact to remove the activation")
	}
}

func TestNegationScenario(t *testing.T) {
	net, r, err := Negation(types.NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	left := Event{Kind: "left", ID: 1}
	right := Event{Kind: "right", ID: 1}

	_ = net.AddFact(ctx, left)
	if len(net.GetActivations(r.RuleID())) != 1 {
		t.Fatalf("step 1: expected one activation before any matching right fact")
	}

	_ = net.AddFact(ctx, right)
	if len(net.GetActivations(r.RuleID())) != 0 {
		t.Fatalf("step 2: expected the activation to disappear once the right fact matches")
	}

	_ = net.RemoveFact(ctx, right)
	if len(net.GetActivations(r.RuleID())) != 1 {
		t.Fatalf("step 3: expected the activation to reappear once the right fact is retracted")
	}
}

func TestNegationCounterStress(t *testing.T) {
	net, r, err := Negation(types.NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	left := Event{Kind: "left", ID: 1}
	right1 := Event{Kind: "right", ID: 1, Val: 1}
	right2 := Event{Kind: "right", ID: 1, Val: 2}

	_ = net.AddFact(ctx, left)
	_ = net.AddFact(ctx, right1)
	_ = net.AddFact(ctx, right2)
	if len(net.GetActivations(r.RuleID())) != 0 {
		t.Fatalf("expected no activation while two right facts both match")
	}

	_ = net.RemoveFact(ctx, right1)
	if len(net.GetActivations(r.RuleID())) != 0 {
		t.Fatalf("expected the activation to stay suppressed with one matching right fact left")
	}

	_ = net.RemoveFact(ctx, right2)
	if len(net.GetActivations(r.RuleID())) != 1 {
		t.Fatalf("expected the activation to reappear once both right facts are gone")
	}
}

func TestVariableConflictFilter(t *testing.T) {
	ctx := context.Background()

	conflicting, r1, err := VariableConflictFilter(types.NewConfig(), ConflictingSecondMatcher())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = conflicting.AddFact(ctx, Event{Kind: "a"})
	if len(conflicting.GetActivations(r1.RuleID())) != 0 {
		t.Fatalf("expected a conflicting binding to block forwarding")
	}

	agreeing, r2, err := VariableConflictFilter(types.NewConfig(), AgreeingSecondMatcher())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = agreeing.AddFact(ctx, Event{Kind: "a"})
	if len(agreeing.GetActivations(r2.RuleID())) != 1 {
		t.Fatalf("expected an agreeing binding to forward unchanged")
	}
}
