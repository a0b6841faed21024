package matcher

import "github.com/bittoy/rete/types"

// OneInput wraps a native Go closure as a types.OneInputMatcher. It exists
// so hand-wired networks (see the example package) and tests can supply a
// matcher without going through a compiled expression or script.
func OneInput(fn func(fact types.Fact) any) types.OneInputMatcher {
	return types.OneInputMatcher(fn)
}

// TwoInput wraps a native Go closure as a types.TwoInputMatcher.
func TwoInput(fn func(left, right types.Context) bool) types.TwoInputMatcher {
	return types.TwoInputMatcher(fn)
}

// FieldEqual builds a two-input matcher asserting left[leftKey] ==
// right[rightKey], the shape every join-variable-equality constraint in
// spec §8's scenarios takes (e.g. `left.n == right.m`).
func FieldEqual(leftKey, rightKey string) types.TwoInputMatcher {
	return func(left, right types.Context) bool {
		lv, ok := left[leftKey]
		if !ok {
			return false
		}
		rv, ok := right[rightKey]
		if !ok {
			return false
		}
		return lv == rv
	}
}
