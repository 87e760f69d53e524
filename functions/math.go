package functions

import (
	"github.com/lyraproj/expression-evaluator/errors"
	"github.com/lyraproj/expression-evaluator/eval"
	"github.com/shopspring/decimal"
)

func init() {
	eval.NewGoFunction(`abs`, abs)
	eval.NewGoFunction(`ceil`, ceil)
	eval.NewGoFunction(`floor`, floor)
	eval.NewGoFunction(`round`, round)
	eval.NewGoFunction(`min`, minimum)
	eval.NewGoFunction(`max`, maximum)
}

func abs(c eval.Context, name string, args []eval.Value) eval.Value {
	checkCount(name, args, 1, 1)
	return number(name, 0, args[0]).Abs()
}

func ceil(c eval.Context, name string, args []eval.Value) eval.Value {
	checkCount(name, args, 1, 1)
	return number(name, 0, args[0]).Ceil()
}

func floor(c eval.Context, name string, args []eval.Value) eval.Value {
	checkCount(name, args, 1, 1)
	return number(name, 0, args[0]).Floor()
}

// round rounds half away from zero. An optional second argument gives
// the number of decimal places, which must be an integer
func round(c eval.Context, name string, args []eval.Value) eval.Value {
	checkCount(name, args, 1, 2)
	places := decimal.Decimal{}
	if len(args) == 2 {
		places = number(name, 1, args[1])
		if !places.Equal(places.Truncate(0)) {
			panic(errors.NewIllegalArgument(name, 1, `places must be an integer`))
		}
	}
	return number(name, 0, args[0]).Round(int32(places.IntPart()))
}

func minimum(c eval.Context, name string, args []eval.Value) eval.Value {
	checkCount(name, args, 1, -1)
	result := number(name, 0, args[0])
	for i := 1; i < len(args); i++ {
		if d := number(name, i, args[i]); d.Cmp(result) < 0 {
			result = d
		}
	}
	return result
}

func maximum(c eval.Context, name string, args []eval.Value) eval.Value {
	checkCount(name, args, 1, -1)
	result := number(name, 0, args[0])
	for i := 1; i < len(args); i++ {
		if d := number(name, i, args[i]); d.Cmp(result) > 0 {
			result = d
		}
	}
	return result
}
