// Package starlarkcalc exposes expression evaluation to Starlark scripts as
// the calc module.
package starlarkcalc

import (
	"fmt"
	"maps"

	starlarkMath "go.starlark.net/lib/math"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"

	"github.com/zephyrtronium/floatexpr"
)

// Namespace is the name scripts use for the calc module.
const Namespace = "calc"

// Module is the calc module using the default functions.
//
//	calc.eval(expr, lax=False) evaluates expr and returns a float.
//	calc.tree(expr, lax=False) returns the parse tree of expr as a string.
//	calc.funcs(expr) returns the sorted names of functions expr calls.
//
// lax ignores input following a complete expression.
var Module = New(floatexpr.NewContext())

// New creates a calc module that evaluates with ctx. Parse options apply to
// every expression the module parses.
func New(ctx *floatexpr.Context, opts ...floatexpr.ParseOption) *starlarkstruct.Module {
	c := &calc{ctx: ctx, opts: opts}
	return &starlarkstruct.Module{
		Name: Namespace,
		Members: starlark.StringDict{
			"eval":  starlark.NewBuiltin(Namespace+".eval", c.eval),
			"tree":  starlark.NewBuiltin(Namespace+".tree", c.tree),
			"funcs": starlark.NewBuiltin(Namespace+".funcs", c.funcs),
		},
	}
}

// Predeclared returns a copy of the Starlark universe with the calc module
// and the standard math module added.
func Predeclared(mod *starlarkstruct.Module) starlark.StringDict {
	if mod == nil {
		mod = Module
	}
	universe := maps.Clone(starlark.Universe)
	universe[Namespace] = mod
	universe["math"] = starlarkMath.Module
	return universe
}

type calc struct {
	ctx  *floatexpr.Context
	opts []floatexpr.ParseOption
}

func (c *calc) parse(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (*floatexpr.Expr, error) {
	var (
		src string
		lax bool
	)
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "expr", &src, "lax?", &lax); err != nil {
		return nil, err
	}
	opts := c.opts
	if lax {
		opts = append(opts[:len(opts):len(opts)], floatexpr.AllowTrailing())
	}
	e, err := floatexpr.Parse(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}
	return e, nil
}

func (c *calc) eval(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	e, err := c.parse(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	r, err := c.ctx.Eval(e)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}
	return starlark.Float(r), nil
}

func (c *calc) tree(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	e, err := c.parse(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	return starlark.String(e.String()), nil
}

func (c *calc) funcs(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	e, err := c.parse(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	names := e.Funcs()
	l := make([]starlark.Value, len(names))
	for i, name := range names {
		l[i] = starlark.String(name)
	}
	return starlark.NewList(l), nil
}
