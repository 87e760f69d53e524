package evaluator

import (
	"math/big"

	"github.com/lyraproj/expression-evaluator/ast"
	"github.com/lyraproj/expression-evaluator/errors"
	"github.com/lyraproj/expression-evaluator/eval"
	"github.com/lyraproj/issue/issue"
	"github.com/shopspring/decimal"
)

type evaluator struct {
	self   eval.Evaluator
	logger eval.Logger
}

// hexPrefixLen is the length of the '0x' style marker that precedes the
// digits of a hexadecimal literal
const hexPrefixLen = 2

func init() {
	eval.Error = func(code issue.Code, args issue.H) issue.Reported {
		return issue.NewReported(code, issue.SEVERITY_ERROR, args, nil)
	}
}

func NewEvaluator(logger eval.Logger) eval.Evaluator {
	e := &evaluator{logger: logger}
	e.self = e
	return e
}

// NewOverriddenEvaluator creates an evaluator that dispatches all
// recursive evaluation through the given specialization
func NewOverriddenEvaluator(logger eval.Logger, specialization eval.Evaluator) eval.Evaluator {
	return &evaluator{self: specialization, logger: logger}
}

// Evaluate walks the tree rooted at node and returns its value. The walk
// recurses with the nesting depth of the tree; there is no explicit depth
// cap, so a pathologically deep tree can exhaust the call stack.
//
// The tree is read-only to the evaluator and never retained. Evaluating
// the same tree twice against a context whose observable state is
// unchanged yields the same result both times.
func (e *evaluator) Evaluate(c eval.Context, node *ast.Node) (result eval.Value, err issue.Reported) {
	defer func() {
		if r := recover(); r != nil {
			switch r := r.(type) {
			case issue.Reported:
				result = nil
				err = r
			case errors.GenericError:
				result = nil
				err = evalError(EVAL_FAILURE, issue.H{`message`: r.Error()})
			default:
				panic(r)
			}
		}
	}()

	err = nil
	result = e.eval(node, c)
	return
}

func (e *evaluator) Eval(node *ast.Node, c eval.Context) eval.Value {
	return e.internalEval(node, c)
}

func (e *evaluator) Logger() eval.Logger {
	return e.logger
}

func (e *evaluator) eval(node *ast.Node, c eval.Context) eval.Value {
	return e.self.Eval(node, c)
}

func (e *evaluator) internalEval(node *ast.Node, c eval.Context) eval.Value {
	switch node.Kind() {
	case ast.Assignee:
		// The name of an assignment target. Assignment itself is
		// performed by the function that receives the name
		return node.Text()
	case ast.True:
		return decimal.New(1, 0)
	case ast.False:
		return decimal.New(0, 0)
	case ast.Number:
		return e.evalNumber(node)
	case ast.HexNumber:
		return e.evalHexNumber(node)
	case ast.UnaryOperator:
		return e.evalCall(node, EVAL_UNDEFINED_UNARY_FUNCTION, c)
	case ast.Operator, ast.Function:
		return e.evalCall(node, EVAL_UNDEFINED_FUNCTION, c)
	case ast.Variable:
		return e.evalVariable(node, eval.None, c)
	case ast.PromptVariable:
		return e.evalVariable(node, eval.Prompt, c)
	case ast.String:
		return stripQuotes(node.Text())
	default:
		panic(evalError(EVAL_UNKNOWN_NODE_TYPE, issue.H{`name`: node.Text(), `type`: int(node.Kind())}))
	}
}

func (e *evaluator) evalNumber(node *ast.Node) eval.Value {
	d, err := decimal.NewFromString(node.Text())
	if err != nil {
		panic(evalError(EVAL_ILLEGAL_NUMBER, issue.H{`text`: node.Text(), `detail`: err.Error()}))
	}
	eval.Debug(e.logger, `NUMBER: value=%s`, d)
	return d
}

func (e *evaluator) evalHexNumber(node *ast.Node) eval.Value {
	s := node.Text()
	if len(s) < hexPrefixLen {
		panic(evalError(EVAL_ILLEGAL_HEX_NUMBER, issue.H{`text`: s}))
	}
	i, ok := new(big.Int).SetString(s[hexPrefixLen:], 16)
	if !ok {
		panic(evalError(EVAL_ILLEGAL_HEX_NUMBER, issue.H{`text`: s}))
	}
	d := decimal.NewFromBigInt(i, 0)
	eval.Debug(e.logger, `HEXNUMBER: value=%s`, d)
	return d
}

// evalCall evaluates all children into an ordered argument list, then
// resolves the callable registered under the node's text and invokes it.
// The arguments are evaluated before the lookup, so their side effects
// happen even when the lookup fails.
func (e *evaluator) evalCall(node *ast.Node, missing issue.Code, c eval.Context) (result eval.Value) {
	name := node.Text()

	args := make([]eval.Value, 0, 4)
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		args = append(args, e.eval(child, c))
	}

	f, ok := c.Function(name)
	if !ok {
		panic(evalError(missing, issue.H{`name`: name}))
	}

	eval.Debug(e.logger, `FUNCTION: name=%s type=%d`, name, int(node.Kind()))

	defer func() {
		if err := recover(); err != nil {
			convertCallError(err, name)
		}
	}()
	result = f.Call(c, name, args)
	return
}

func (e *evaluator) evalVariable(node *ast.Node, modifier eval.VariableModifier, c eval.Context) eval.Value {
	name := node.Text()
	if !c.HasVariable(name, modifier) {
		panic(evalError(EVAL_UNDEFINED_VARIABLE, issue.H{`name`: name}))
	}
	value, ok := c.Variable(name, modifier)
	if !ok {
		// The existence check can be optimistic, as it is when a prompt
		// resolver is installed but then declines to produce a value
		panic(evalError(EVAL_UNDEFINED_VARIABLE, issue.H{`name`: name}))
	}
	eval.Debug(e.logger, `VARIABLE: name=%s, value=%v`, name, value)
	return value
}

// convertCallError translates the argument error types raised by a
// callable into reported issues tagged with the invocation name. Reported
// issues and unrecognized panics pass through unchanged.
func convertCallError(err interface{}, name string) {
	switch err := err.(type) {
	case *errors.ArgumentsError:
		panic(evalError(EVAL_ARGUMENTS_ERROR, issue.H{`function`: name, `message`: err.Error()}))
	case *errors.IllegalArgument:
		panic(evalError(EVAL_ILLEGAL_ARGUMENT, issue.H{`function`: name, `number`: err.Index(), `message`: err.Error()}))
	case *errors.IllegalArgumentType:
		panic(evalError(EVAL_ILLEGAL_ARGUMENT_TYPE, issue.H{`function`: name, `number`: err.Index(), `expected`: err.Expected(), `actual`: err.Actual()}))
	case *errors.IllegalArgumentCount:
		panic(evalError(EVAL_ILLEGAL_ARGUMENT_COUNT, issue.H{`function`: name, `expected`: err.Expected(), `actual`: err.Actual()}))
	default:
		panic(err)
	}
}

// stripQuotes removes one layer of surrounding quote characters. A
// leading double quote triggers stripping even without a matching
// closer; single quotes must pair up. Text that does not look quoted is
// returned verbatim.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first := s[0]
		last := s[len(s)-1]
		if (first == last && first == '\'') || first == '"' {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func evalError(code issue.Code, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SEVERITY_ERROR, args, nil)
}
