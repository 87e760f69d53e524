package evaluator_test

import (
	"strings"
	"testing"

	"github.com/lyraproj/expression-evaluator/ast"
	"github.com/lyraproj/expression-evaluator/errors"
	"github.com/lyraproj/expression-evaluator/eval"
	"github.com/lyraproj/expression-evaluator/evaluator"
	"github.com/lyraproj/issue/issue"
	"github.com/shopspring/decimal"
)

// testContext is a spy implementation of eval.Context that counts
// variable fetches
type testContext struct {
	logger    eval.Logger
	functions map[string]eval.Function
	variables map[string]eval.Value
	prompted  map[string]eval.Value
	fetches   int
}

func newTestContext() *testContext {
	return &testContext{
		logger:    eval.NewArrayLogger(),
		functions: map[string]eval.Function{},
		variables: map[string]eval.Value{},
		prompted:  map[string]eval.Value{},
	}
}

func (c *testContext) Logger() eval.Logger {
	return c.logger
}

func (c *testContext) Function(name string) (eval.Function, bool) {
	f, ok := c.functions[name]
	return f, ok
}

func (c *testContext) HasVariable(name string, modifier eval.VariableModifier) bool {
	if modifier == eval.Prompt {
		_, ok := c.prompted[name]
		return ok
	}
	_, ok := c.variables[name]
	return ok
}

func (c *testContext) Variable(name string, modifier eval.VariableModifier) (eval.Value, bool) {
	c.fetches++
	if modifier == eval.Prompt {
		v, ok := c.prompted[name]
		return v, ok
	}
	v, ok := c.variables[name]
	return v, ok
}

func (c *testContext) SetVariable(name string, value eval.Value, modifier eval.VariableModifier) {
	c.variables[name] = value
}

func evaluate(t *testing.T, c eval.Context, node *ast.Node) eval.Value {
	t.Helper()
	result, err := evaluator.NewEvaluator(c.Logger()).Evaluate(c, node)
	if err != nil {
		t.Fatalf(`unexpected evaluation error: %s`, err.Error())
	}
	return result
}

func evaluateError(t *testing.T, c eval.Context, node *ast.Node) issue.Reported {
	t.Helper()
	result, err := evaluator.NewEvaluator(c.Logger()).Evaluate(c, node)
	if err == nil {
		t.Fatalf(`expected evaluation error, got result %v`, result)
	}
	return err
}

func numberValue(t *testing.T, v eval.Value) decimal.Decimal {
	t.Helper()
	d, ok := v.(decimal.Decimal)
	if !ok {
		t.Fatalf(`expected decimal value, got %T`, v)
	}
	return d
}

func TestNumber(t *testing.T) {
	v := evaluate(t, newTestContext(), ast.New(ast.Number, `10.55`))
	if !numberValue(t, v).Equal(decimal.RequireFromString(`10.55`)) {
		t.Errorf(`unexpected value %v`, v)
	}
}

func TestNumberIllegal(t *testing.T) {
	err := evaluateError(t, newTestContext(), ast.New(ast.Number, `1.2.3`))
	if err.Code() != evaluator.EVAL_ILLEGAL_NUMBER {
		t.Errorf(`unexpected issue code %s`, err.Code())
	}
}

func TestHexNumber(t *testing.T) {
	v := evaluate(t, newTestContext(), ast.New(ast.HexNumber, `0x1F`))
	if !numberValue(t, v).Equal(decimal.New(31, 0)) {
		t.Errorf(`unexpected value %v`, v)
	}
}

func TestHexNumberIllegal(t *testing.T) {
	for _, text := range []string{`0xZZ`, `0x`, `0`} {
		err := evaluateError(t, newTestContext(), ast.New(ast.HexNumber, text))
		if err.Code() != evaluator.EVAL_ILLEGAL_HEX_NUMBER {
			t.Errorf(`%s: unexpected issue code %s`, text, err.Code())
		}
	}
}

func TestBooleanLiterals(t *testing.T) {
	v := evaluate(t, newTestContext(), ast.New(ast.True, `true`))
	if !numberValue(t, v).Equal(decimal.New(1, 0)) {
		t.Errorf(`expected true to evaluate to 1, got %v`, v)
	}
	v = evaluate(t, newTestContext(), ast.New(ast.False, `false`))
	if !numberValue(t, v).Equal(decimal.New(0, 0)) {
		t.Errorf(`expected false to evaluate to 0, got %v`, v)
	}
}

func TestAssignee(t *testing.T) {
	v := evaluate(t, newTestContext(), ast.New(ast.Assignee, `x`))
	if v != `x` {
		t.Errorf(`expected assignee name, got %v`, v)
	}
}

func TestStringQuoting(t *testing.T) {
	tests := map[string]string{
		`'hello'`: `hello`,
		`"hello"`: `hello`,
		`hello`:   `hello`,
		`"abc'`:   `abc`,
		`'abc"`:   `'abc"`,
		`''`:      ``,
		`'`:       `'`,
		``:        ``,
		`'a'b'`:   `a'b`,
	}
	for text, expected := range tests {
		v := evaluate(t, newTestContext(), ast.New(ast.String, text))
		if v != expected {
			t.Errorf(`text %q: expected %q, got %v`, text, expected, v)
		}
	}
}

func TestCallNoArgs(t *testing.T) {
	c := newTestContext()
	var received []eval.Value
	c.functions[`f`] = eval.GoFunction(func(c eval.Context, name string, args []eval.Value) eval.Value {
		received = args
		return decimal.New(7, 0)
	})
	v := evaluate(t, c, ast.New(ast.Function, `f`))
	if len(received) != 0 {
		t.Errorf(`expected empty argument list, got %d arguments`, len(received))
	}
	if !numberValue(t, v).Equal(decimal.New(7, 0)) {
		t.Errorf(`unexpected result %v`, v)
	}
}

func TestCallArgumentOrder(t *testing.T) {
	c := newTestContext()
	calls := make([]string, 0, 3)
	record := eval.GoFunction(func(c eval.Context, name string, args []eval.Value) eval.Value {
		calls = append(calls, name)
		return decimal.New(int64(len(calls)), 0)
	})
	c.functions[`a`] = record
	c.functions[`b`] = record

	var received []eval.Value
	c.functions[`f`] = eval.GoFunction(func(c eval.Context, name string, args []eval.Value) eval.Value {
		received = args
		return nil
	})

	evaluate(t, c, ast.New(ast.Function, `f`,
		ast.New(ast.Function, `a`),
		ast.New(ast.Function, `b`)))

	if len(calls) != 2 || calls[0] != `a` || calls[1] != `b` {
		t.Fatalf(`expected children evaluated in order, got %v`, calls)
	}
	if len(received) != 2 {
		t.Fatalf(`expected 2 arguments, got %d`, len(received))
	}
	// The side effect of evaluating the first child is visible to the
	// second
	if !numberValue(t, received[0]).Equal(decimal.New(1, 0)) || !numberValue(t, received[1]).Equal(decimal.New(2, 0)) {
		t.Errorf(`unexpected argument values %v`, received)
	}
}

func TestCallOperatorKind(t *testing.T) {
	c := newTestContext()
	c.functions[`+`] = eval.GoFunction(func(c eval.Context, name string, args []eval.Value) eval.Value {
		return args[0]
	})
	v := evaluate(t, c, ast.New(ast.Operator, `+`, ast.New(ast.Number, `5`)))
	if !numberValue(t, v).Equal(decimal.New(5, 0)) {
		t.Errorf(`unexpected result %v`, v)
	}
}

func TestUndefinedFunction(t *testing.T) {
	c := newTestContext()
	invoked := false
	c.functions[`other`] = eval.GoFunction(func(c eval.Context, name string, args []eval.Value) eval.Value {
		invoked = true
		return nil
	})
	err := evaluateError(t, c, ast.New(ast.Function, `nosuch`))
	if err.Code() != evaluator.EVAL_UNDEFINED_FUNCTION {
		t.Errorf(`unexpected issue code %s`, err.Code())
	}
	if !strings.Contains(err.Error(), `Undefined function: nosuch`) {
		t.Errorf(`unexpected message %s`, err.Error())
	}
	if invoked {
		t.Error(`no callable may be invoked on a failed lookup`)
	}
}

func TestUndefinedUnaryFunction(t *testing.T) {
	err := evaluateError(t, newTestContext(), ast.New(ast.UnaryOperator, `-`))
	if err.Code() != evaluator.EVAL_UNDEFINED_UNARY_FUNCTION {
		t.Errorf(`unexpected issue code %s`, err.Code())
	}
	if !strings.Contains(err.Error(), `Undefined unary function: -`) {
		t.Errorf(`unexpected message %s`, err.Error())
	}
}

func TestArgumentsEvaluatedBeforeLookup(t *testing.T) {
	c := newTestContext()
	evaluated := false
	c.functions[`arg`] = eval.GoFunction(func(c eval.Context, name string, args []eval.Value) eval.Value {
		evaluated = true
		return nil
	})
	evaluateError(t, c, ast.New(ast.Function, `nosuch`, ast.New(ast.Function, `arg`)))
	if !evaluated {
		t.Error(`expected arguments to be evaluated before the lookup`)
	}
}

func TestUndefinedVariable(t *testing.T) {
	c := newTestContext()
	err := evaluateError(t, c, ast.New(ast.Variable, `X`))
	if err.Code() != evaluator.EVAL_UNDEFINED_VARIABLE {
		t.Errorf(`unexpected issue code %s`, err.Code())
	}
	if !strings.Contains(err.Error(), `Undefined variable: X`) {
		t.Errorf(`unexpected message %s`, err.Error())
	}
	if c.fetches != 0 {
		t.Error(`no fetch may be performed for an undefined variable`)
	}
}

func TestVariable(t *testing.T) {
	c := newTestContext()
	c.variables[`X`] = decimal.New(12, 0)
	v := evaluate(t, c, ast.New(ast.Variable, `X`))
	if !numberValue(t, v).Equal(decimal.New(12, 0)) {
		t.Errorf(`unexpected value %v`, v)
	}
}

func TestVariableOpaqueValue(t *testing.T) {
	type box struct{ payload string }
	c := newTestContext()
	b := &box{`anything`}
	c.variables[`X`] = b
	v := evaluate(t, c, ast.New(ast.Variable, `X`))
	if v != b {
		t.Error(`expected opaque value to pass through unmodified`)
	}
}

func TestPromptVariable(t *testing.T) {
	c := newTestContext()
	c.prompted[`X`] = `answer`
	c.variables[`X`] = `stored`

	v := evaluate(t, c, ast.New(ast.PromptVariable, `X`))
	if v != `answer` {
		t.Errorf(`expected prompt modifier resolution, got %v`, v)
	}
	v = evaluate(t, c, ast.New(ast.Variable, `X`))
	if v != `stored` {
		t.Errorf(`expected none modifier resolution, got %v`, v)
	}
}

func TestPromptVariableUndefined(t *testing.T) {
	c := newTestContext()
	c.variables[`X`] = `stored`
	err := evaluateError(t, c, ast.New(ast.PromptVariable, `Y`))
	if err.Code() != evaluator.EVAL_UNDEFINED_VARIABLE {
		t.Errorf(`unexpected issue code %s`, err.Code())
	}
}

func TestPromptVariableDeclined(t *testing.T) {
	c := evaluator.NewBasicContext(eval.NewArrayLogger())
	c.SetPromptResolver(func(name string) (eval.Value, bool) {
		return nil, false
	})
	e := evaluator.NewEvaluator(c.Logger())
	v, err := e.Evaluate(c, ast.New(ast.PromptVariable, `X`))
	if err == nil {
		t.Fatalf(`expected undefined variable error, got result %v`, v)
	}
	if err.Code() != evaluator.EVAL_UNDEFINED_VARIABLE {
		t.Errorf(`unexpected issue code %s`, err.Code())
	}
	if !strings.Contains(err.Error(), `Undefined variable: X`) {
		t.Errorf(`unexpected message %s`, err.Error())
	}
}

func TestUnknownNodeType(t *testing.T) {
	err := evaluateError(t, newTestContext(), ast.New(ast.Other, `bogus`))
	if err.Code() != evaluator.EVAL_UNKNOWN_NODE_TYPE {
		t.Errorf(`unexpected issue code %s`, err.Code())
	}
	err = evaluateError(t, newTestContext(), ast.New(ast.Kind(77), `bogus`, ast.New(ast.Number, `1`)))
	if err.Code() != evaluator.EVAL_UNKNOWN_NODE_TYPE {
		t.Errorf(`unexpected issue code %s`, err.Code())
	}
}

func TestPropagatedReported(t *testing.T) {
	c := newTestContext()
	c.functions[`boom`] = eval.GoFunction(func(c eval.Context, name string, args []eval.Value) eval.Value {
		panic(eval.Error(evaluator.EVAL_FAILURE, issue.H{`message`: `boom`}))
	})
	err := evaluateError(t, c, ast.New(ast.Function, `boom`))
	if err.Code() != evaluator.EVAL_FAILURE {
		t.Errorf(`expected failure to propagate unchanged, got %s`, err.Code())
	}
}

func TestArgumentErrorConversion(t *testing.T) {
	c := newTestContext()
	c.functions[`f`] = eval.GoFunction(func(c eval.Context, name string, args []eval.Value) eval.Value {
		panic(errors.NewIllegalArgumentCount(name, `2`, len(args)))
	})
	err := evaluateError(t, c, ast.New(ast.Function, `f`))
	if err.Code() != evaluator.EVAL_ILLEGAL_ARGUMENT_COUNT {
		t.Errorf(`unexpected issue code %s`, err.Code())
	}
	if !strings.Contains(err.Error(), `'f'`) {
		t.Errorf(`expected message to name the function, got %s`, err.Error())
	}
}

func TestGenericErrorConversion(t *testing.T) {
	c := newTestContext()
	c.functions[`f`] = eval.GoFunction(func(c eval.Context, name string, args []eval.Value) eval.Value {
		panic(errors.GenericError(`something went wrong`))
	})
	err := evaluateError(t, c, ast.New(ast.Function, `f`))
	if err.Code() != evaluator.EVAL_FAILURE {
		t.Errorf(`unexpected issue code %s`, err.Code())
	}
}

func TestLateBinding(t *testing.T) {
	c := newTestContext()
	node := ast.New(ast.Function, `f`)
	e := evaluator.NewEvaluator(c.Logger())

	if _, err := e.Evaluate(c, node); err == nil {
		t.Fatal(`expected undefined function error`)
	}
	c.functions[`f`] = eval.GoFunction(func(c eval.Context, name string, args []eval.Value) eval.Value {
		return `defined late`
	})
	v, err := e.Evaluate(c, node)
	if err != nil {
		t.Fatalf(`unexpected evaluation error: %s`, err.Error())
	}
	if v != `defined late` {
		t.Errorf(`unexpected result %v`, v)
	}
}

// doublingEvaluator specializes dispatch so every number literal
// evaluates to twice its written value
type doublingEvaluator struct {
	eval.Evaluator
}

func (e *doublingEvaluator) Eval(node *ast.Node, c eval.Context) eval.Value {
	v := e.Evaluator.Eval(node, c)
	if node.Kind() == ast.Number {
		d := v.(decimal.Decimal)
		return d.Add(d)
	}
	return v
}

func TestOverriddenEvaluator(t *testing.T) {
	c := newTestContext()
	c.functions[`+`] = eval.GoFunction(func(c eval.Context, name string, args []eval.Value) eval.Value {
		return args[0].(decimal.Decimal).Add(args[1].(decimal.Decimal))
	})
	d := &doublingEvaluator{}
	d.Evaluator = evaluator.NewOverriddenEvaluator(c.Logger(), d)

	// Recursive evaluation dispatches through the specialization, so the
	// argument literals are doubled before the addition sees them
	node := ast.New(ast.Operator, `+`, ast.New(ast.Number, `2`), ast.New(ast.Number, `3`))
	v, err := d.Evaluate(c, node)
	if err != nil {
		t.Fatalf(`unexpected evaluation error: %s`, err.Error())
	}
	if !numberValue(t, v).Equal(decimal.New(10, 0)) {
		t.Errorf(`unexpected value %v`, v)
	}
}

func TestIdempotence(t *testing.T) {
	c := newTestContext()
	c.variables[`X`] = decimal.New(3, 0)
	c.functions[`+`] = eval.GoFunction(func(c eval.Context, name string, args []eval.Value) eval.Value {
		return args[0].(decimal.Decimal).Add(args[1].(decimal.Decimal))
	})
	node := ast.New(ast.Operator, `+`,
		ast.New(ast.Number, `39`),
		ast.New(ast.Variable, `X`))

	e := evaluator.NewEvaluator(c.Logger())
	first, err := e.Evaluate(c, node)
	if err != nil {
		t.Fatalf(`unexpected evaluation error: %s`, err.Error())
	}
	second, err := e.Evaluate(c, node)
	if err != nil {
		t.Fatalf(`unexpected evaluation error: %s`, err.Error())
	}
	if !numberValue(t, first).Equal(numberValue(t, second)) {
		t.Errorf(`expected identical results, got %v and %v`, first, second)
	}
}

func TestNestedEvaluation(t *testing.T) {
	c := newTestContext()
	c.functions[`+`] = eval.GoFunction(func(c eval.Context, name string, args []eval.Value) eval.Value {
		sum := decimal.New(0, 0)
		for _, arg := range args {
			sum = sum.Add(arg.(decimal.Decimal))
		}
		return sum
	})
	// 1 + (0x0A + 2.5)
	node := ast.New(ast.Operator, `+`,
		ast.New(ast.Number, `1`),
		ast.New(ast.Operator, `+`,
			ast.New(ast.HexNumber, `0x0A`),
			ast.New(ast.Number, `2.5`)))
	v := evaluate(t, c, node)
	if !numberValue(t, v).Equal(decimal.RequireFromString(`13.5`)) {
		t.Errorf(`unexpected result %v`, v)
	}
}

func TestDebugTrace(t *testing.T) {
	logger := eval.NewArrayLogger()
	c := newTestContext()
	c.logger = logger
	evaluate(t, c, ast.New(ast.Number, `42`))

	entries := logger.Entries(eval.DEBUG)
	if len(entries) != 1 || !strings.Contains(entries[0], `NUMBER`) {
		t.Errorf(`expected a NUMBER trace, got %v`, entries)
	}
}
