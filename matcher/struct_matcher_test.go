package matcher

import (
	"testing"

	"github.com/bittoy/rete/types"
)

type testFact struct {
	ID   int    `structs:"id"`
	Kind string `structs:"kind"`
}

func TestStructFieldsExtractsBindings(t *testing.T) {
	m := StructFields(map[string]string{"n": "ID"})
	result := m(testFact{ID: 7, Kind: "a"})

	ctx, ok := result.(types.Context)
	if !ok {
		t.Fatalf("expected a Context result, got %T", result)
	}
	if ctx["n"] != 7 {
		t.Fatalf("expected n=7, got %v", ctx["n"])
	}
}

func TestStructFieldsFailsOnNonStruct(t *testing.T) {
	m := StructFields(map[string]string{"n": "ID"})
	if result := m("not a struct"); result != false {
		t.Fatalf("expected false for a non-struct fact, got %v", result)
	}
}

func TestStructFieldEquals(t *testing.T) {
	m := StructFieldEquals("Kind", "a")
	if result := m(testFact{Kind: "a"}); result != true {
		t.Fatalf("expected true for matching field, got %v", result)
	}
	if result := m(testFact{Kind: "b"}); result != false {
		t.Fatalf("expected false for non-matching field, got %v", result)
	}
}
