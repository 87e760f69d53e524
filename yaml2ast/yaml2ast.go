package yaml2ast

import (
	"fmt"
	"strconv"

	"github.com/lyraproj/expression-evaluator/ast"
	"github.com/lyraproj/expression-evaluator/eval"
	"github.com/lyraproj/issue/issue"
	"gopkg.in/yaml.v2"
)

// The YAML form of an expression tree:
//
//   scalars    booleans, numbers and strings become True/False, Number
//              and String nodes
//   {name: v}  a map with one key is a call; the key names the function
//              and the value holds the arguments (a list, a single
//              argument, or null for a zero-arity call)
//   _var       {_var: name} references a variable
//   _prompt    {_prompt: name} references a prompt variable
//   _assign    {_assign: name} is an assignment target
//   _hex       {_hex: '0x1F'} is a hexadecimal literal
//   _unary     {_unary: {name: v}} is a call through a UnaryOperator node
//
// Keys beginning with '_' are reserved for markers.

type transformer struct {
	p []string
}

// YamlToAST transforms the given YAML content into an expression tree.
// It panics with an issue.Reported unless the transformation was
// succesful.
func YamlToAST(filename string, content []byte) *ast.Node {
	var doc interface{}
	if err := yaml.Unmarshal(content, &doc); err != nil {
		panic(eval.Error(EVAL_YAML_PARSE_ERROR, issue.H{`file`: filename, `detail`: err.Error()}))
	}
	yp := &transformer{[]string{filename}}
	return yp.transform(doc)
}

// EvaluateYaml transforms the given YAML content into an expression tree
// which is then evaluated against the given context. The result of the
// evaluation is returned.
func EvaluateYaml(e eval.Evaluator, c eval.Context, filename string, content []byte) (result eval.Value, err issue.Reported) {
	defer func() {
		if r := recover(); r != nil {
			if ri, ok := r.(issue.Reported); ok {
				result = nil
				err = ri
				return
			}
			panic(r)
		}
	}()
	return e.Evaluate(c, YamlToAST(filename, content))
}

func (yp *transformer) transform(v interface{}) *ast.Node {
	switch v := v.(type) {
	case bool:
		if v {
			return ast.New(ast.True, `true`)
		}
		return ast.New(ast.False, `false`)
	case int:
		return ast.New(ast.Number, strconv.Itoa(v))
	case int64:
		return ast.New(ast.Number, strconv.FormatInt(v, 10))
	case float64:
		return ast.New(ast.Number, strconv.FormatFloat(v, 'g', -1, 64))
	case string:
		return ast.New(ast.String, v)
	case map[interface{}]interface{}:
		return yp.transformCall(v, ast.Function)
	default:
		panic(yp.illegalType(`scalar or call map`, v))
	}
}

func (yp *transformer) transformCall(m map[interface{}]interface{}, kind ast.Kind) *ast.Node {
	key, value, ok := singleEntry(m)
	if !ok {
		panic(eval.Error(EVAL_YAML_ILLEGAL_CALL, issue.H{`path`: yp.path()}))
	}
	yp.push(key)
	defer yp.pop()

	switch key {
	case `_var`:
		return ast.New(ast.Variable, yp.name(value))
	case `_prompt`:
		return ast.New(ast.PromptVariable, yp.name(value))
	case `_assign`:
		return ast.New(ast.Assignee, yp.name(value))
	case `_hex`:
		return ast.New(ast.HexNumber, yp.name(value))
	case `_unary`:
		inner, ok := value.(map[interface{}]interface{})
		if !ok {
			panic(yp.illegalType(`call map`, value))
		}
		return yp.transformCall(inner, ast.UnaryOperator)
	default:
		node := ast.New(kind, key)
		switch args := value.(type) {
		case nil:
		case []interface{}:
			for _, arg := range args {
				node.AddChild(yp.transform(arg))
			}
		default:
			node.AddChild(yp.transform(args))
		}
		return node
	}
}

// name extracts the string payload of a marker entry
func (yp *transformer) name(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	panic(yp.illegalType(`String`, v))
}

func (yp *transformer) illegalType(expected string, actual interface{}) issue.Reported {
	return eval.Error(EVAL_YAML_ILLEGAL_TYPE, issue.H{`path`: yp.path(), `expected`: expected, `actual`: label(actual)})
}

func (yp *transformer) push(key string) {
	yp.p = append(yp.p, key)
}

func (yp *transformer) pop() {
	yp.p = yp.p[:len(yp.p)-1]
}

func (yp *transformer) path() []string {
	p := make([]string, len(yp.p))
	copy(p, yp.p)
	return p
}

// singleEntry returns the sole key/value pair of a call map. The key
// must be a string
func singleEntry(m map[interface{}]interface{}) (string, interface{}, bool) {
	if len(m) != 1 {
		return ``, nil, false
	}
	for k, v := range m {
		if s, ok := k.(string); ok {
			return s, v, true
		}
	}
	return ``, nil, false
}

func label(v interface{}) string {
	switch v.(type) {
	case nil:
		return `Null`
	case bool:
		return `Boolean`
	case int, int64, float64:
		return `Number`
	case string:
		return `String`
	case []interface{}:
		return `List`
	case map[interface{}]interface{}:
		return `Map`
	default:
		return fmt.Sprintf(`%T`, v)
	}
}
