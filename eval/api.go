package eval

import (
	"github.com/lyraproj/expression-evaluator/ast"
	"github.com/lyraproj/issue/issue"
)

type (
	// Value is the dynamic result of evaluating an expression node. The
	// evaluator itself produces decimal.Decimal and string values but a
	// Context or Function may yield any value, which is passed through
	// unmodified.
	Value interface{}

	// VariableModifier qualifies how a Context resolves a variable.
	VariableModifier int

	// Context resolves functions and variables for an Evaluator. All
	// lookups happen at evaluation time; an Evaluator never caches what
	// a Context returns.
	Context interface {
		// Logger returns the logger of this context
		Logger() Logger

		// Function returns the function registered under the given name,
		// or false when no such function exists
		Function(name string) (Function, bool)

		// HasVariable returns true when the given name can be resolved
		// under the given modifier
		HasVariable(name string, modifier VariableModifier) bool

		// Variable returns the value of the given name under the given
		// modifier, or false when the name cannot be resolved
		Variable(name string, modifier VariableModifier) (Value, bool)

		// SetVariable associates the given name with the given value
		SetVariable(name string, value Value, modifier VariableModifier)
	}

	// Function is a named callable. Call receives the context, the name
	// the call was dispatched under, and the evaluated arguments in
	// left-to-right order. A Function reports failure by panicking with
	// an issue.Reported or with one of the types in the errors package.
	Function interface {
		Call(c Context, name string, args []Value) Value
	}

	// GoFunction adapts an ordinary Go function to the Function interface
	GoFunction func(c Context, name string, args []Value) Value

	// Evaluator walks an expression tree and produces a single Value
	Evaluator interface {
		// Evaluate evaluates the tree rooted at node and returns its
		// value, or an issue.Reported describing the first failure
		Evaluate(c Context, node *ast.Node) (Value, issue.Reported)

		// Eval evaluates a single node. Failures are reported by
		// panicking with an issue.Reported. Used for recursive descent;
		// external callers normally use Evaluate
		Eval(node *ast.Node, c Context) Value

		// Logger returns the logger of this evaluator
		Logger() Logger
	}
)

const (
	// None denotes ordinary variable resolution
	None = VariableModifier(iota)

	// Prompt denotes resolution where the context may interactively
	// solicit a value for a variable that has none
	Prompt
)

func (m VariableModifier) String() string {
	switch m {
	case None:
		return `None`
	case Prompt:
		return `Prompt`
	default:
		return `Invalid`
	}
}

func (f GoFunction) Call(c Context, name string, args []Value) Value {
	return f(c, name, args)
}

// Error creates an issue.Reported for the given issue code. Assigned
// by the evaluator package init.
var Error func(code issue.Code, args issue.H) issue.Reported
