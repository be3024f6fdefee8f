package observe

import (
	"fmt"

	"github.com/signadot/jsonwatch/debug"
	"github.com/signadot/jsonwatch/value"

	"github.com/expr-lang/expr"
)

// Where wraps h so that it is only called for values satisfying the
// boolean expression. The expression sees
//
//	value   the emitted value, with undefined entries removed
//	kind    the value type name, e.g. "object" or "undefined"
//	defined false when the value is undefined
//
// so for example `defined && kind == "number" && value > 3`.
func Where(expression string, h Handler) (Handler, error) {
	prg, err := expr.Compile(expression, expr.Env(whereEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", expression, err)
	}
	return func(v any) {
		res, err := expr.Run(prg, newWhereEnv(v))
		if err != nil {
			if debug.Emit() {
				debug.Logf("where %q failed: %v\n", expression, err)
			}
			return
		}
		if ok, _ := res.(bool); ok {
			h(v)
		}
	}, nil
}

type whereEnv struct {
	Value   any    `expr:"value"`
	Kind    string `expr:"kind"`
	Defined bool   `expr:"defined"`
}

func newWhereEnv(v any) whereEnv {
	return whereEnv{
		Value:   value.Plain(v),
		Kind:    value.TypeOf(v).String(),
		Defined: !value.IsUndefined(v),
	}
}
