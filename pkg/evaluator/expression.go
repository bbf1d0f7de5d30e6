package evaluator

import (
	"fmt"

	"github.com/antonmedv/expr"
	"github.com/antonmedv/expr/vm"
)

// Expression is a side-effect free expression over a set of named
// variables. Only the variables passed in and the language builtins are
// reachable from it.
type Expression string

func (e Expression) String() string {
	return string(e)
}

func (e Expression) compile(params map[string]interface{}) (*vm.Program, error) {
	program, err := expr.Compile(e.String(), expr.Env(params), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compiling expression %q: %w", e, err)
	}
	return program, nil
}

// EvaluateWithVars evaluates the expression with params bound as variables.
func (e Expression) EvaluateWithVars(params map[string]interface{}) (interface{}, error) {
	if params == nil {
		params = map[string]interface{}{}
	}
	program, err := e.compile(params)
	if err != nil {
		return nil, err
	}

	result, err := expr.Run(program, params)
	if err != nil {
		return nil, fmt.Errorf("evaluating expression %q: %w", e, err)
	}
	return result, nil
}

// Validate reports whether the expression compiles against params.
func (e Expression) Validate(params map[string]interface{}) error {
	_, err := e.compile(params)
	return err
}
