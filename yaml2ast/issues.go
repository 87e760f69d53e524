package yaml2ast

import (
	"strings"

	"github.com/lyraproj/issue/issue"
)

const (
	EVAL_YAML_PARSE_ERROR  = `EVAL_YAML_PARSE_ERROR`
	EVAL_YAML_ILLEGAL_TYPE = `EVAL_YAML_ILLEGAL_TYPE`
	EVAL_YAML_ILLEGAL_CALL = `EVAL_YAML_ILLEGAL_CALL`
)

func joinPath(path interface{}) string {
	return strings.Join(path.([]string), `/`)
}

func init() {
	issue.Hard(EVAL_YAML_PARSE_ERROR, `unable to parse YAML from '%{file}': %{detail}`)

	issue.Hard2(EVAL_YAML_ILLEGAL_TYPE, `the value must be %{expected}. Got %{actual}. Path %{path}`,
		issue.HF{`path`: joinPath, `expected`: issue.A_an, `actual`: issue.A_an})

	issue.Hard2(EVAL_YAML_ILLEGAL_CALL, `a call must be a map with exactly one key. Path %{path}`,
		issue.HF{`path`: joinPath})
}
