package errors

import "fmt"

// The types in this package are the panic payloads a Function raises to
// report a bad invocation. The evaluator converts them into reported
// issues at the call boundary, tagged with the name the call was
// dispatched under.

type (
	GenericError string

	ArgumentsError struct {
		funcName string
		error    string
	}

	IllegalArgument struct {
		funcName string
		error    string
		index    int
	}

	IllegalArgumentType struct {
		funcName string
		expected string
		actual   string
		index    int
	}

	IllegalArgumentCount struct {
		funcName string
		expected string
		actual   int
	}
)

func NewArgumentsError(funcName string, error string) *ArgumentsError {
	return &ArgumentsError{funcName, error}
}

func NewIllegalArgument(funcName string, index int, error string) *IllegalArgument {
	return &IllegalArgument{funcName, error, index}
}

func NewIllegalArgumentType(funcName string, index int, expected string, actual string) *IllegalArgumentType {
	return &IllegalArgumentType{funcName, expected, actual, index}
}

func NewIllegalArgumentCount(funcName string, expected string, actual int) *IllegalArgumentCount {
	return &IllegalArgumentCount{funcName, expected, actual}
}

func (e GenericError) Error() string {
	return string(e)
}

func (e *ArgumentsError) FuncName() string {
	return e.funcName
}

func (e *ArgumentsError) Error() string {
	return e.error
}

func (e *IllegalArgument) FuncName() string {
	return e.funcName
}

func (e *IllegalArgument) Error() string {
	return e.error
}

func (e *IllegalArgument) Index() int {
	return e.index
}

func (e *IllegalArgumentType) FuncName() string {
	return e.funcName
}

func (e *IllegalArgumentType) Index() int {
	return e.index
}

func (e *IllegalArgumentType) Expected() string {
	return e.expected
}

func (e *IllegalArgumentType) Actual() string {
	return e.actual
}

func (e *IllegalArgumentType) Error() string {
	return fmt.Sprintf(`%s expected argument %d to be %s, got %s`, e.funcName, e.index+1, e.expected, e.actual)
}

func (e *IllegalArgumentCount) FuncName() string {
	return e.funcName
}

func (e *IllegalArgumentCount) Error() string {
	return fmt.Sprintf(`%s expects argument count to be %s, got %d`, e.funcName, e.expected, e.actual)
}

func (e *IllegalArgumentCount) Expected() string {
	return e.expected
}

func (e *IllegalArgumentCount) Actual() int {
	return e.actual
}
