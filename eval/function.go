package eval

type namedFunction struct {
	name     string
	function Function
}

var goFunctions []*namedFunction

// NewGoFunction registers a Go function under the given name. Registered
// functions seed the function table of each new context. Registration
// normally happens from init() functions; the registry is not safe for
// concurrent mutation.
func NewGoFunction(name string, f GoFunction) {
	goFunctions = append(goFunctions, &namedFunction{name, f})
}

// GoFunctionCount returns the number of registrations made so far
func GoFunctionCount() int {
	return len(goFunctions)
}

// EachGoFunction calls the given consumer once for every registered
// function, in registration order. A name registered more than once is
// visited more than once; the last registration wins in a table built
// by replaying the registry.
func EachGoFunction(consumer func(name string, f Function)) {
	for _, nf := range goFunctions {
		consumer(nf.name, nf.function)
	}
}
