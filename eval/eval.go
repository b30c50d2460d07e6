package eval

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/signadot/structext/debug"
	"github.com/signadot/structext/ir"
)

type Env map[string]any

// Query evaluates src against doc and returns the result as a node.
// Mappings built by the expression have their keys sorted.
func Query(doc *ir.Node, src string, env Env) (*ir.Node, error) {
	res, err := run(doc, src, env)
	if err != nil {
		return nil, err
	}
	node, err := ir.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("query result: %w", err)
	}
	return node, nil
}

// Test evaluates src against doc and reports whether the result is
// truthy in the sense of ir.Truth.
func Test(doc *ir.Node, src string, env Env) (bool, error) {
	node, err := Query(doc, src, env)
	if err != nil {
		return false, err
	}
	return ir.Truth(node), nil
}

func run(doc *ir.Node, src string, env Env) (any, error) {
	vars := Env{}
	for k, v := range env {
		vars[k] = v
	}
	vars["doc"] = ir.ToAny(doc)
	if debug.Convert() {
		debug.Logf("query %q", src)
	}
	opts := append(exprOpts(doc), expr.Env(map[string]any(vars)))
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, err
	}
	return expr.Run(prg, map[string]any(vars))
}

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := GetPath(doc, path)
			if err != nil {
				return nil, err
			}
			return ir.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			_, err := GetPath(doc, params[0].(string))
			return err == nil, nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
