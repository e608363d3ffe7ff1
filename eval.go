package floatexpr

import (
	"io"
	"log/slog"
	"math"
)

// Context is a context for evaluating expressions. A Context is not modified
// by evaluation, so it is safe to use concurrently. The zero Context can call
// no functions.
type Context struct {
	funcs  map[string]Func
	logger *slog.Logger
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	funcopt struct {
		name string
		fn   Func
	}
	funcsopt   map[string]Func
	loggeropt  struct{ l *slog.Logger }
	handleropt struct{ h slog.Handler }
)

func (funcopt) ctxOption()    {}
func (funcsopt) ctxOption()   {}
func (loggeropt) ctxOption()  {}
func (handleropt) ctxOption() {}

// SetFunc sets a function that expressions can call. To remove a function,
// pass nil for fn.
func SetFunc(name string, fn Func) ContextOption {
	return funcopt{name, fn}
}

// SetFuncs sets any number of functions. Nil values remove functions.
func SetFuncs(fns map[string]Func) ContextOption {
	return funcsopt(fns)
}

// WithLogger sets the logger which receives debug records of evaluations.
// A nil logger leaves the current one in place.
func WithLogger(logger *slog.Logger) ContextOption {
	return loggeropt{logger}
}

// WithLogHandler sets the handler for debug records of evaluations. Records
// are grouped under "floatexpr". A nil handler leaves the current logger in
// place.
func WithLogHandler(handler slog.Handler) ContextOption {
	return handleropt{handler}
}

var discard = slog.New(slog.DiscardHandler)

// NewContext creates a new evaluation context which can call the default
// functions, sin and cos, plus any set by options.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{funcs: globalfuncs, logger: discard}
	return ctx.Clone(opts...)
}

var defaultContext = NewContext()

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		funcs:  make(map[string]Func, len(ctx.funcs)),
		logger: ctx.logger,
	}
	for name, fn := range ctx.funcs {
		n.funcs[name] = fn
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case funcopt:
			n.setFunc(opt.name, opt.fn)
		case funcsopt:
			for k, v := range opt {
				n.setFunc(k, v)
			}
		case loggeropt:
			if opt.l != nil {
				n.logger = opt.l
			}
		case handleropt:
			if opt.h != nil {
				n.logger = slog.New(opt.h.WithGroup("floatexpr"))
			}
		default:
			panic("floatexpr: unknown option type")
		}
	}
	return &n
}

func (ctx *Context) setFunc(name string, fn Func) {
	if fn == nil {
		delete(ctx.funcs, name)
		return
	}
	ctx.funcs[name] = fn
}

// Func returns the function that calls to name use, or nil if there is none.
func (ctx *Context) Func(name string) Func {
	return ctx.funcs[name]
}

// Eval evaluates an expression and returns the result. Calling a function
// the context does not have is a *NameError. Arithmetic never fails; division
// by zero and powers outside the real domain produce infinities and NaN.
func (ctx *Context) Eval(e *Expr) (float64, error) {
	logger := ctx.logger
	if logger == nil {
		logger = discard
	}
	r, err := e.n.eval(ctx)
	if err != nil {
		logger.Debug("evaluation failed", "expr", e, "error", err)
		return 0, err
	}
	logger.Debug("evaluated", "expr", e, "result", r)
	return r, nil
}

// Eval evaluates the expression using the default functions.
func (e *Expr) Eval() (float64, error) {
	return defaultContext.Eval(e)
}

// eval computes the node's value. Children evaluate left to right.
func (n *node) eval(ctx *Context) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeCall:
		x, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		fn := ctx.funcs[n.name]
		if fn == nil {
			return 0, &NameError{Name: n.name}
		}
		return fn(x), nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow, nodeMod:
		l, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval(ctx)
		if err != nil {
			return 0, err
		}
		return arith(n.kind, l, r), nil
	default:
		panic("floatexpr: invalid AST node " + n.kind.String())
	}
}

// arith applies a binary operator with IEEE 754 semantics.
func arith(op nodeKind, l, r float64) float64 {
	switch op {
	case nodeAdd:
		return l + r
	case nodeSub:
		return l - r
	case nodeMul:
		return l * r
	case nodeDiv:
		return l / r
	case nodePow:
		return math.Pow(l, r)
	case nodeMod:
		// math.Mod takes the sign of l, like C fmod.
		return math.Mod(l, r)
	default:
		panic("floatexpr: not a binary operator: " + op.String())
	}
}

// Eval is a shortcut to parse an expression and return its result using the
// default parsing options.
func Eval(src io.Reader, opts ...ContextOption) (float64, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return 0, err
	}
	return EvalString(string(b), opts...)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	ctx := defaultContext
	if len(opts) > 0 {
		ctx = NewContext(opts...)
	}
	return ctx.Eval(a)
}
