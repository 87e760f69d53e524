package functions

import "github.com/lyraproj/expression-evaluator/eval"

// Truthiness is numeric: a value is true when its decimal form is not
// zero. Arguments arrive already evaluated, so neither operator short
// circuits the evaluation of its operands.

func init() {
	eval.NewGoFunction(`&&`, and)
	eval.NewGoFunction(`||`, or)
	eval.NewGoFunction(`!`, not)
}

func and(c eval.Context, name string, args []eval.Value) eval.Value {
	checkCount(name, args, 2, -1)
	for i, arg := range args {
		if !truthy(name, i, arg) {
			return zero
		}
	}
	return one
}

func or(c eval.Context, name string, args []eval.Value) eval.Value {
	checkCount(name, args, 2, -1)
	for i, arg := range args {
		if truthy(name, i, arg) {
			return one
		}
	}
	return zero
}

func not(c eval.Context, name string, args []eval.Value) eval.Value {
	checkCount(name, args, 1, 1)
	return wrapBool(!truthy(name, 0, args[0]))
}
