package functions

import "github.com/lyraproj/expression-evaluator/eval"

func init() {
	eval.NewGoFunction(`==`, equal)
	eval.NewGoFunction(`eq`, equal)
	eval.NewGoFunction(`!=`, notEqual)
	eval.NewGoFunction(`ne`, notEqual)
	eval.NewGoFunction(`<`, lessThan)
	eval.NewGoFunction(`<=`, lessOrEqual)
	eval.NewGoFunction(`>`, greaterThan)
	eval.NewGoFunction(`>=`, greaterOrEqual)
}

// compare orders the two arguments of a comparison. Two strings compare
// lexicographically; any other combination compares numerically
func compare(name string, args []eval.Value) int {
	checkCount(name, args, 2, 2)
	if isString(args[0]) && isString(args[1]) {
		a := args[0].(string)
		b := args[1].(string)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	return number(name, 0, args[0]).Cmp(number(name, 1, args[1]))
}

func equal(c eval.Context, name string, args []eval.Value) eval.Value {
	return wrapBool(compare(name, args) == 0)
}

func notEqual(c eval.Context, name string, args []eval.Value) eval.Value {
	return wrapBool(compare(name, args) != 0)
}

func lessThan(c eval.Context, name string, args []eval.Value) eval.Value {
	return wrapBool(compare(name, args) < 0)
}

func lessOrEqual(c eval.Context, name string, args []eval.Value) eval.Value {
	return wrapBool(compare(name, args) <= 0)
}

func greaterThan(c eval.Context, name string, args []eval.Value) eval.Value {
	return wrapBool(compare(name, args) > 0)
}

func greaterOrEqual(c eval.Context, name string, args []eval.Value) eval.Value {
	return wrapBool(compare(name, args) >= 0)
}
