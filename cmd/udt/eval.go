package main

import (
	"fmt"
	"maps"
	"strings"

	"github.com/Ssajaia/universal-data-translator/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	conv := cfg.converter(cc.Out)
	allTrue := true
	for _, path := range inputs(args[1:]) {
		text, err := readInput(cc, path)
		if err != nil {
			return err
		}
		doc, _, err := conv.Parse(text, cfg.inFormat(path))
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", path, err)
		}
		res, err := evalExpr(src, doc, cfg.Env)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", path, err)
		}
		if cfg.Test {
			allTrue = allTrue && ir.Truth(res)
			continue
		}
		out, err := conv.Encode(res, cfg.outFormat())
		if err != nil {
			return err
		}
		if err := writeLine(cc.Out, out); err != nil {
			return err
		}
	}
	if !allTrue {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// evalExpr runs src with the document bound as doc. A document that is a
// mapping also has its top level keys bound directly; env entries take
// precedence over both.
func evalExpr(src string, doc *ir.Node, env map[string]any) (*ir.Node, error) {
	vars := map[string]any{}
	native := ir.ToAny(doc)
	if m, ok := native.(map[string]any); ok {
		maps.Copy(vars, m)
	}
	vars["doc"] = native
	maps.Copy(vars, env)

	program, err := expr.Compile(src, expr.Env(vars))
	if err != nil {
		return nil, err
	}
	val, err := vm.Run(program, vars)
	if err != nil {
		return nil, err
	}
	return ir.FromAny(val)
}

func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
