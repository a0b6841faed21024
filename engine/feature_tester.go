package engine

import (
	"context"

	"github.com/bittoy/rete/types"
)

// FeatureTester is a one-input, memory-less filter and binding extractor.
// It represents both "test a constant feature" and "extract a variable
// binding" from the original RETE paper: which one it does on a given
// activation depends only on what its matcher returns for the fact at
// hand.
type FeatureTester struct {
	base
	matcher types.OneInputMatcher
	logger  types.Logger
}

// NewFeatureTester builds a FeatureTester guarded by matcher. A nil logger
// falls back to a no-op so the node is usable without a Network.
func NewFeatureTester(matcher types.OneInputMatcher, logger types.Logger) *FeatureTester {
	if logger == nil {
		logger = noopLogger{}
	}
	return &FeatureTester{matcher: matcher, logger: logger}
}

// Callback tests the token's single fact against the matcher and, if it
// passes, forwards the (possibly binding-extended) token — with its
// original tag preserved — to every child. A token whose data is not
// exactly one fact is a wiring error per spec §4.4.
func (f *FeatureTester) Callback(ctx context.Context, t types.Token) error {
	data := t.Data()
	if len(data) != 1 {
		return types.NewWiringError("feature tester received a token with %d facts, want exactly 1", len(data))
	}
	fact := data[0]

	result := f.matcher(fact)
	f.logger.Printf("featureTester matcher=%v fact=%v token=%v result=%v", f.matcher, fact, t, result)

	switch m := result.(type) {
	case bool:
		if !m {
			return nil
		}
	case types.Context:
		if len(m) == 0 {
			return nil
		}
		if !t.Context().Agrees(m) {
			// Binding conflict: the fact matched the constant test but
			// disagrees with a binding already carried by the token.
			return nil
		}
		t = t.WithContext(t.Context().Merge(m))
	default:
		// Anything else (nil included) is treated as a failed test.
		return nil
	}

	return f.dispatch(ctx, t)
}

type noopLogger struct{}

func (noopLogger) Printf(string, ...any) {}
