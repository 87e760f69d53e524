package functions

import (
	"github.com/lyraproj/expression-evaluator/errors"
	"github.com/lyraproj/expression-evaluator/eval"
)

func init() {
	eval.NewGoFunction(`=`, assign)
}

// assign stores the second argument under the variable name given by the
// first and returns the stored value. The first argument is the string
// an Assignee node evaluates to
func assign(c eval.Context, name string, args []eval.Value) eval.Value {
	checkCount(name, args, 2, 2)
	target, ok := args[0].(string)
	if !ok {
		panic(errors.NewIllegalArgumentType(name, 0, `Assignee`, typeName(args[0])))
	}
	c.SetVariable(target, args[1], eval.None)
	return args[1]
}
