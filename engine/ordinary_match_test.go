package engine

import (
	"context"
	"testing"

	"github.com/bittoy/rete/types"
)

func equalMatcher(leftKey, rightKey string) types.TwoInputMatcher {
	return func(left, right types.Context) bool {
		return left[leftKey] == right[rightKey]
	}
}

func TestOrdinaryMatchProducesCombinedToken(t *testing.T) {
	join := NewOrdinaryMatch(equalMatcher("n", "m"))
	child := &recordingChild{}
	join.AddChild(child)

	leftTok := types.NewToken(types.Valid, []types.Fact{"factA"}, types.Context{"n": 3})
	rightTok := types.NewToken(types.Valid, []types.Fact{"factB"}, types.Context{"m": 3})

	if err := join.LeftPort().Callback(context.Background(), leftTok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := join.RightPort().Callback(context.Background(), rightTok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(child.received) != 1 {
		t.Fatalf("expected exactly one combined activation, got %d", len(child.received))
	}
	combined := child.received[0]
	if len(combined.Data()) != 2 {
		t.Fatalf("expected combined data from both sides, got %v", combined.Data())
	}
	if combined.Context()["n"] != 3 || combined.Context()["m"] != 3 {
		t.Fatalf("expected combined context {n:3, m:3}, got %v", combined.Context())
	}
}

func TestOrdinaryMatchRetractionRemovesActivation(t *testing.T) {
	join := NewOrdinaryMatch(equalMatcher("n", "m"))
	child := &recordingChild{}
	join.AddChild(child)

	leftTok := types.NewToken(types.Valid, []types.Fact{"factA"}, types.Context{"n": 3})
	rightTok := types.NewToken(types.Valid, []types.Fact{"factB"}, types.Context{"m": 3})

	_ = join.LeftPort().Callback(context.Background(), leftTok)
	_ = join.RightPort().Callback(context.Background(), rightTok)

	invalidLeft := leftTok.WithTag(types.Invalid)
	if err := join.LeftPort().Callback(context.Background(), invalidLeft); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(child.received) != 2 {
		t.Fatalf("expected a second, INVALID combined token, got %d", len(child.received))
	}
	if child.received[1].IsValid() {
		t.Fatalf("expected the retraction to propagate as an INVALID token")
	}
}

func TestOrdinaryMatchNonMatchingContextsProduceNothing(t *testing.T) {
	join := NewOrdinaryMatch(equalMatcher("n", "m"))
	child := &recordingChild{}
	join.AddChild(child)

	_ = join.LeftPort().Callback(context.Background(), types.NewToken(types.Valid, []types.Fact{"a"}, types.Context{"n": 1}))
	_ = join.RightPort().Callback(context.Background(), types.NewToken(types.Valid, []types.Fact{"b"}, types.Context{"m": 2}))

	if len(child.received) != 0 {
		t.Fatalf("expected no activation for disagreeing contexts, got %d", len(child.received))
	}
}

func TestOrdinaryMatchReset(t *testing.T) {
	join := NewOrdinaryMatch(equalMatcher("n", "m"))
	_ = join.LeftPort().Callback(context.Background(), types.NewToken(types.Valid, []types.Fact{"a"}, types.Context{"n": 1}))

	join.Reset()

	child := &recordingChild{}
	join.AddChild(child)
	_ = join.RightPort().Callback(context.Background(), types.NewToken(types.Valid, []types.Fact{"b"}, types.Context{"m": 1}))

	if len(child.received) != 0 {
		t.Fatalf("expected Reset to have cleared left memory, got a match after reset")
	}
}
