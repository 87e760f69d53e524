package evaluator

import "github.com/lyraproj/issue/issue"

const (
	EVAL_ARGUMENTS_ERROR          = `EVAL_ARGUMENTS_ERROR`
	EVAL_FAILURE                  = `EVAL_FAILURE`
	EVAL_ILLEGAL_ARGUMENT         = `EVAL_ILLEGAL_ARGUMENT`
	EVAL_ILLEGAL_ARGUMENT_COUNT   = `EVAL_ILLEGAL_ARGUMENT_COUNT`
	EVAL_ILLEGAL_ARGUMENT_TYPE    = `EVAL_ILLEGAL_ARGUMENT_TYPE`
	EVAL_ILLEGAL_HEX_NUMBER       = `EVAL_ILLEGAL_HEX_NUMBER`
	EVAL_ILLEGAL_NUMBER           = `EVAL_ILLEGAL_NUMBER`
	EVAL_UNDEFINED_FUNCTION       = `EVAL_UNDEFINED_FUNCTION`
	EVAL_UNDEFINED_UNARY_FUNCTION = `EVAL_UNDEFINED_UNARY_FUNCTION`
	EVAL_UNDEFINED_VARIABLE       = `EVAL_UNDEFINED_VARIABLE`
	EVAL_UNKNOWN_NODE_TYPE        = `EVAL_UNKNOWN_NODE_TYPE`
)

func init() {
	issue.Hard(EVAL_ARGUMENTS_ERROR, `Error when evaluating '%{function}': %{message}`)

	issue.Hard(EVAL_FAILURE, `%{message}`)

	issue.Hard(EVAL_ILLEGAL_ARGUMENT, `Error when evaluating '%{function}', argument %{number}: %{message}`)

	issue.Hard(EVAL_ILLEGAL_ARGUMENT_COUNT, `Error when evaluating '%{function}': Expected %{expected} arguments, got %{actual}`)

	issue.Hard(EVAL_ILLEGAL_ARGUMENT_TYPE, `Error when evaluating '%{function}': Expected argument %{number} to be %{expected}, got %{actual}`)

	issue.Hard(EVAL_ILLEGAL_HEX_NUMBER, `Illegal hexadecimal literal '%{text}'`)

	issue.Hard(EVAL_ILLEGAL_NUMBER, `Illegal decimal literal '%{text}': %{detail}`)

	issue.Hard(EVAL_UNDEFINED_FUNCTION, `Undefined function: %{name}`)

	issue.Hard(EVAL_UNDEFINED_UNARY_FUNCTION, `Undefined unary function: %{name}`)

	issue.Hard(EVAL_UNDEFINED_VARIABLE, `Undefined variable: %{name}`)

	issue.Hard(EVAL_UNKNOWN_NODE_TYPE, `Unknown node type: name=%{name}, type=%{type}`)
}
