package matcher

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/bittoy/rete/types"
)

// ExprConfig is the configuration shape decoded for an expression-backed
// matcher, mirroring the teacher's per-node Configuration structs
// (ExprFilterNodeConfiguration, ExprAssignNodeConfiguration).
type ExprConfig struct {
	Script string `mapstructure:"script"`
}

// NewExprOneInput compiles an expr-lang one-input matcher. The compiled
// program sees a single variable, fact, and must evaluate to either a bool
// (constant-feature test) or a map (variable-binding extraction) — the same
// union the teacher's ExprFilterNode (bool) and ExprAssignNode (map) handle
// as two separate node types; here one compiled program covers both shapes,
// exactly as spec §6's one-input matcher contract requires.
func NewExprOneInput(script string) (types.OneInputMatcher, error) {
	program, err := expr.Compile(script, expr.AllowUndefinedVariables(), expr.Env(map[string]any{"fact": nil}))
	if err != nil {
		return nil, err
	}
	return func(fact types.Fact) any {
		out, err := vm.Run(program, map[string]any{"fact": fact})
		if err != nil {
			return false
		}
		return exprResultToMatcherValue(out)
	}, nil
}

// NewExprOneInputFromConfig decodes config into an ExprConfig and builds the
// matcher from its Script field, following the teacher's
// Configuration-decode-then-compile component Init sequence.
func NewExprOneInputFromConfig(config types.Configuration) (types.OneInputMatcher, error) {
	var cfg ExprConfig
	if err := decode(config, &cfg); err != nil {
		return nil, err
	}
	return NewExprOneInput(cfg.Script)
}

// NewExprTwoInput compiles an expr-lang two-input join matcher. The
// compiled program sees left and right binding contexts and must evaluate
// to a boolean, the exact shape expr.AsBool() enforces in the teacher's
// ExprFilterNode.
func NewExprTwoInput(script string) (types.TwoInputMatcher, error) {
	program, err := expr.Compile(script, expr.AllowUndefinedVariables(), expr.AsBool(),
		expr.Env(map[string]any{"left": map[string]any{}, "right": map[string]any{}}))
	if err != nil {
		return nil, err
	}
	return func(left, right types.Context) bool {
		out, err := vm.Run(program, map[string]any{"left": map[string]any(left), "right": map[string]any(right)})
		if err != nil {
			return false
		}
		result, _ := out.(bool)
		return result
	}, nil
}

// NewExprTwoInputFromConfig mirrors NewExprOneInputFromConfig for the
// two-input case.
func NewExprTwoInputFromConfig(config types.Configuration) (types.TwoInputMatcher, error) {
	var cfg ExprConfig
	if err := decode(config, &cfg); err != nil {
		return nil, err
	}
	return NewExprTwoInput(cfg.Script)
}

// exprResultToMatcherValue normalizes an expr-lang evaluation result into
// the bool/Context union FeatureTester.Callback type-switches on.
func exprResultToMatcherValue(out any) any {
	switch v := out.(type) {
	case bool:
		return v
	case map[string]any:
		ctx := make(types.Context, len(v))
		for k, val := range v {
			ctx[k] = val
		}
		return ctx
	default:
		return false
	}
}
