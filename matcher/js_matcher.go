package matcher

import (
	"errors"

	"github.com/dop251/goja"

	"github.com/bittoy/rete/types"
)

// JSConfig is the configuration shape decoded for a script-backed matcher.
type JSConfig struct {
	Script   string `mapstructure:"script"`
	FuncName string `mapstructure:"funcName"`
}

// jsRuntime wraps a single goja.Runtime the way the teacher's GojaJsEngine
// does: the script is run once at build time to register its top-level
// function, which is then invoked once per activation.
type jsRuntime struct {
	vm *goja.Runtime
}

func newJSRuntime(script string) (*jsRuntime, error) {
	vm := goja.New()
	if _, err := vm.RunString(script); err != nil {
		return nil, err
	}
	return &jsRuntime{vm: vm}, nil
}

func (r *jsRuntime) call(funcName string, args ...any) (any, error) {
	f, ok := goja.AssertFunction(r.vm.Get(funcName))
	if !ok {
		return nil, errors.New(funcName + " is not a function")
	}
	params := make([]goja.Value, len(args))
	for i, a := range args {
		params[i] = r.vm.ToValue(a)
	}
	res, err := f(goja.Undefined(), params...)
	if err != nil {
		return nil, err
	}
	return res.Export(), nil
}

// NewJSOneInput compiles script and returns a matcher that invokes
// funcName(fact) per activation, exporting the JS return value into the
// bool/Context union FeatureTester expects. A JS function returning a plain
// object is treated as a binding mapping and a boolean is used as-is; any
// other return value (or a call error) is treated as false.
func NewJSOneInput(script, funcName string) (types.OneInputMatcher, error) {
	rt, err := newJSRuntime(script)
	if err != nil {
		return nil, err
	}
	return func(fact types.Fact) any {
		out, err := rt.call(funcName, fact)
		if err != nil {
			return false
		}
		return jsResultToMatcherValue(out)
	}, nil
}

// NewJSOneInputFromConfig decodes config into a JSConfig and builds the
// matcher from its Script/FuncName fields.
func NewJSOneInputFromConfig(config types.Configuration) (types.OneInputMatcher, error) {
	var cfg JSConfig
	if err := decode(config, &cfg); err != nil {
		return nil, err
	}
	return NewJSOneInput(cfg.Script, cfg.FuncName)
}

// NewJSTwoInput compiles script and returns a join matcher that invokes
// funcName(left, right) with both binding contexts exported as plain JS
// objects, expecting a boolean return.
func NewJSTwoInput(script, funcName string) (types.TwoInputMatcher, error) {
	rt, err := newJSRuntime(script)
	if err != nil {
		return nil, err
	}
	return func(left, right types.Context) bool {
		out, err := rt.call(funcName, map[string]any(left), map[string]any(right))
		if err != nil {
			return false
		}
		result, _ := out.(bool)
		return result
	}, nil
}

// NewJSTwoInputFromConfig mirrors NewJSOneInputFromConfig for the
// two-input case.
func NewJSTwoInputFromConfig(config types.Configuration) (types.TwoInputMatcher, error) {
	var cfg JSConfig
	if err := decode(config, &cfg); err != nil {
		return nil, err
	}
	return NewJSTwoInput(cfg.Script, cfg.FuncName)
}

func jsResultToMatcherValue(out any) any {
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
