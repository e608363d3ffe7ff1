package floatexpr

import "strconv"

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	trailingopt struct{}
	depthopt    int
	rulesopt    []Rule
)

// parsectx holds general data for parsing.
type parsectx struct {
	// lexer splits source text for Parse. ParseTokens ignores it.
	lexer *Lexer
	// trailing allows tokens after a complete expression.
	trailing bool
	// maxdepth is the limit on nested groups and calls, or 0 for no limit.
	maxdepth int
	// depthset indicates that an option chose maxdepth.
	depthset bool
}

// DefaultMaxDepth is the nesting limit when no MaxDepth option is given.
const DefaultMaxDepth = 1000

// AllowTrailing tells the parser to stop after one complete expression and
// ignore any remaining tokens. By default, leftover tokens are a *TokenError.
func AllowTrailing() ParseOption {
	return trailingopt{}
}

func (trailingopt) parseOption(p parsectx) parsectx {
	p.trailing = true
	return p
}

// MaxDepth limits how deeply parenthesized groups and function calls may
// nest. Exceeding the limit is a *DepthError. Zero removes the limit, leaving
// only the goroutine stack to stop pathological input.
func MaxDepth(n int) ParseOption {
	if n < 0 {
		panic("floatexpr: negative max depth " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	p.depthset = true
	return p
}

// WithRules tells Parse to lex its input with the given rules instead of the
// default ones.
func WithRules(rules ...Rule) ParseOption {
	return rulesopt(rules)
}

func (o rulesopt) parseOption(p parsectx) parsectx {
	p.lexer = NewLexer(o...)
	return p
}

func newParsectx(opts []ParseOption) parsectx {
	var p parsectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	if p.lexer == nil {
		p.lexer = defaultLexer
	}
	if !p.depthset {
		p.maxdepth = DefaultMaxDepth
	}
	return p
}
