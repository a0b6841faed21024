package matcher

import (
	"github.com/fatih/structs"

	"github.com/bittoy/rete/types"
)

// StructFields builds a one-input matcher for facts that are Go structs
// (or pointers to one). bindAs maps variable name to the struct's Go field
// name; it extracts the named fields into a binding context — the
// variable-extraction half of the one-input matcher union — and fails
// (boolean false) for facts that aren't structs or that are missing any
// requested field, exactly like a constant-feature test that doesn't hold.
//
// Example: a fact `Reading{Kind: "a", ID: 7}` with
// StructFields(map[string]string{"n": "ID"}) yields the context {n: 7}.
func StructFields(bindAs map[string]string) types.OneInputMatcher {
	return func(fact types.Fact) any {
		if !structs.IsStruct(fact) {
			return false
		}
		s := structs.New(fact)
		ctx := make(types.Context, len(bindAs))
		for varName, fieldName := range bindAs {
			f, ok := s.FieldOk(fieldName)
			if !ok {
				return false
			}
			ctx[varName] = f.Value()
		}
		return ctx
	}
}

// StructFieldEquals builds a one-input matcher testing a single struct
// field against a constant value — the constant-feature-test half of the
// union, for facts shaped as structs rather than maps.
func StructFieldEquals(fieldName string, want any) types.OneInputMatcher {
	return func(fact types.Fact) any {
		if !structs.IsStruct(fact) {
			return false
		}
		f, ok := structs.New(fact).FieldOk(fieldName)
		if !ok {
			return false
		}
		return f.Value() == want
	}
}
