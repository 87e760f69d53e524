package functions

import (
	"fmt"
	"strconv"

	"github.com/lyraproj/expression-evaluator/errors"
	"github.com/lyraproj/expression-evaluator/eval"
	"github.com/shopspring/decimal"
)

var (
	zero = decimal.New(0, 0)
	one  = decimal.New(1, 0)
)

func wrapBool(b bool) decimal.Decimal {
	if b {
		return one
	}
	return zero
}

func typeName(v eval.Value) string {
	switch v.(type) {
	case decimal.Decimal:
		return `Number`
	case string:
		return `String`
	default:
		return fmt.Sprintf(`%T`, v)
	}
}

// number coerces an argument to a decimal. Strings holding a valid
// decimal literal are accepted; anything else is an illegal argument
func number(name string, index int, v eval.Value) decimal.Decimal {
	switch v := v.(type) {
	case decimal.Decimal:
		return v
	case string:
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	panic(errors.NewIllegalArgumentType(name, index, `Number`, typeName(v)))
}

func str(v eval.Value) string {
	switch v := v.(type) {
	case string:
		return v
	case decimal.Decimal:
		return v.String()
	default:
		return fmt.Sprintf(`%v`, v)
	}
}

func isString(v eval.Value) bool {
	_, ok := v.(string)
	return ok
}

func truthy(name string, index int, v eval.Value) bool {
	return !number(name, index, v).IsZero()
}

// checkCount validates the argument count. A negative max means no
// upper bound
func checkCount(name string, args []eval.Value, min, max int) {
	n := len(args)
	if n < min || max >= 0 && n > max {
		expected := strconv.Itoa(min)
		if max < 0 {
			expected = `at least ` + expected
		} else if max != min {
			expected = fmt.Sprintf(`%d to %d`, min, max)
		}
		panic(errors.NewIllegalArgumentCount(name, expected, n))
	}
}
