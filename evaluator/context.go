package evaluator

import (
	"github.com/lyraproj/expression-evaluator/eval"
	"github.com/lyraproj/expression-evaluator/hash"
)

type (
	// PromptResolver solicits a value for a variable that has no stored
	// value. It returns false when no value could be obtained
	PromptResolver func(name string) (eval.Value, bool)

	// BasicContext is an in-memory eval.Context. The function table is
	// seeded from the global registry at construction time; variables
	// live in an order preserving store shared by both access modifiers.
	// A variable resolved through a PromptResolver is stored, so it is
	// prompted for at most once.
	//
	// BasicContext is not safe for concurrent use.
	BasicContext struct {
		logger    eval.Logger
		functions *hash.StringHash
		variables *hash.StringHash
		prompter  PromptResolver
	}
)

// The seeded function table is built by replaying the global registry,
// then frozen and copied into each new context. The frozen snapshot is
// shared between contexts; it is rebuilt when the registry has grown
// since it was taken.
var seededFunctions *hash.StringHash
var seededCount = -1

func seededFunctionTable() *hash.StringHash {
	if seededCount != eval.GoFunctionCount() {
		h := hash.NewStringHash(32)
		eval.EachGoFunction(func(name string, f eval.Function) {
			h.Put(name, f)
		})
		h.Freeze()
		seededFunctions = h
		seededCount = eval.GoFunctionCount()
	}
	return seededFunctions
}

func NewBasicContext(logger eval.Logger) *BasicContext {
	return &BasicContext{logger, seededFunctionTable().Copy(), hash.NewStringHash(8), nil}
}

func (c *BasicContext) Logger() eval.Logger {
	return c.logger
}

func (c *BasicContext) Function(name string) (eval.Function, bool) {
	if f, ok := c.functions.Get(name); ok {
		return f.(eval.Function), true
	}
	return nil, false
}

// SetFunction registers or replaces a function in this context. Callables
// are resolved at evaluation time, so a replacement is observed by the
// next dispatch of the name
func (c *BasicContext) SetFunction(name string, f eval.Function) {
	c.functions.Put(name, f)
}

// DeleteFunction removes the function registered under the given name
func (c *BasicContext) DeleteFunction(name string) {
	c.functions.Delete(name)
}

func (c *BasicContext) HasVariable(name string, modifier eval.VariableModifier) bool {
	if c.variables.Includes(name) {
		return true
	}
	return modifier == eval.Prompt && c.prompter != nil
}

func (c *BasicContext) Variable(name string, modifier eval.VariableModifier) (eval.Value, bool) {
	if v, ok := c.variables.Get(name); ok {
		return v, true
	}
	if modifier == eval.Prompt && c.prompter != nil {
		if v, ok := c.prompter(name); ok {
			c.variables.Put(name, v)
			return v, true
		}
	}
	return nil, false
}

func (c *BasicContext) SetVariable(name string, value eval.Value, modifier eval.VariableModifier) {
	c.variables.Put(name, value)
}

// DeleteVariable removes the variable with the given name
func (c *BasicContext) DeleteVariable(name string) {
	c.variables.Delete(name)
}

// Variables returns the names of all set variables in insertion order
func (c *BasicContext) Variables() []string {
	return c.variables.Keys()
}

// SetPromptResolver installs the resolver consulted for Prompt modifier
// lookups of variables that have no stored value
func (c *BasicContext) SetPromptResolver(p PromptResolver) {
	c.prompter = p
}
