package functions

import (
	"strings"

	"github.com/lyraproj/expression-evaluator/errors"
	"github.com/lyraproj/expression-evaluator/eval"
)

func init() {
	eval.NewGoFunction(`+`, add)
	eval.NewGoFunction(`-`, subtract)
	eval.NewGoFunction(`*`, multiply)
	eval.NewGoFunction(`/`, divide)
	eval.NewGoFunction(`^`, power)
}

// add sums its arguments. When any argument is a string the operator
// concatenates the string form of all arguments instead. A single
// argument is returned unchanged (unary plus)
func add(c eval.Context, name string, args []eval.Value) eval.Value {
	checkCount(name, args, 1, -1)
	if len(args) == 1 {
		return number(name, 0, args[0])
	}
	for _, arg := range args {
		if isString(arg) {
			b := strings.Builder{}
			for _, a := range args {
				b.WriteString(str(a))
			}
			return b.String()
		}
	}
	sum := number(name, 0, args[0])
	for i := 1; i < len(args); i++ {
		sum = sum.Add(number(name, i, args[i]))
	}
	return sum
}

// subtract negates a single argument and subtracts the rest from the
// first otherwise. Registered for both the unary and the binary '-'
func subtract(c eval.Context, name string, args []eval.Value) eval.Value {
	checkCount(name, args, 1, -1)
	if len(args) == 1 {
		return number(name, 0, args[0]).Neg()
	}
	result := number(name, 0, args[0])
	for i := 1; i < len(args); i++ {
		result = result.Sub(number(name, i, args[i]))
	}
	return result
}

func multiply(c eval.Context, name string, args []eval.Value) eval.Value {
	checkCount(name, args, 2, -1)
	result := number(name, 0, args[0])
	for i := 1; i < len(args); i++ {
		result = result.Mul(number(name, i, args[i]))
	}
	return result
}

func divide(c eval.Context, name string, args []eval.Value) eval.Value {
	checkCount(name, args, 2, -1)
	result := number(name, 0, args[0])
	for i := 1; i < len(args); i++ {
		d := number(name, i, args[i])
		if d.IsZero() {
			panic(errors.NewArgumentsError(name, `division by zero`))
		}
		result = result.Div(d)
	}
	return result
}

func power(c eval.Context, name string, args []eval.Value) eval.Value {
	checkCount(name, args, 2, 2)
	return number(name, 0, args[0]).Pow(number(name, 1, args[1]))
}
