package functions

import (
	"strings"

	"github.com/lyraproj/expression-evaluator/eval"
)

func init() {
	eval.NewGoFunction(`concat`, concat)
	eval.NewGoFunction(`upper`, upper)
	eval.NewGoFunction(`lower`, lower)
	eval.NewGoFunction(`if`, conditional)
}

func concat(c eval.Context, name string, args []eval.Value) eval.Value {
	checkCount(name, args, 1, -1)
	b := strings.Builder{}
	for _, arg := range args {
		b.WriteString(str(arg))
	}
	return b.String()
}

func upper(c eval.Context, name string, args []eval.Value) eval.Value {
	checkCount(name, args, 1, 1)
	return strings.ToUpper(str(args[0]))
}

func lower(c eval.Context, name string, args []eval.Value) eval.Value {
	checkCount(name, args, 1, 1)
	return strings.ToLower(str(args[0]))
}

// conditional returns the second argument when the first is true and the
// third otherwise. All three arguments are evaluated before the call, so
// this is selection, not lazy branching
func conditional(c eval.Context, name string, args []eval.Value) eval.Value {
	checkCount(name, args, 3, 3)
	if truthy(name, 0, args[0]) {
		return args[1]
	}
	return args[2]
}
