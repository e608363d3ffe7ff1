package floatexpr

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Expr = Term { ('+' | '-') Term }
// Term = Factor { ('*' | '/' | '**' | '%') Factor }
// Factor = num | name '(' Expr ')' | '(' Expr ')'
//
// All four Term operators share one precedence and associate left, so
// 2 ** 10 / 16 is (2 ** 10) / 16.

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// funcs is the list of function names called in the expression.
	funcs []string
}

// Parse lexes and parses an expression so it can be evaluated with a
// context. The given options are applied in order.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	p := newParsectx(opts)
	return parse(p.lexer.Lex(src), &p)
}

// ParseTokens parses an expression from tokens produced by a Lexer. Options
// which affect lexing have no effect.
func ParseTokens(toks []Token, opts ...ParseOption) (*Expr, error) {
	p := newParsectx(opts)
	return parse(toks, &p)
}

func parse(toks []Token, ctx *parsectx) (*Expr, error) {
	p := parser{toks: toks, ctx: ctx}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if tok := p.curr(); tok.Kind != TokenEOF && !ctx.trailing {
		return nil, &TokenError{Col: tok.Pos, Want: TokenEOF, Got: tok}
	}
	names := make(map[string]bool)
	n.calls(names)
	ex := Expr{
		n:     n,
		funcs: make([]string, 0, len(names)),
	}
	for k := range names {
		ex.funcs = append(ex.funcs, k)
	}
	slices.Sort(ex.funcs)
	return &ex, nil
}

// parser is a recursive descent parser over a token slice with one token of
// lookahead.
type parser struct {
	toks []Token
	// cur is the index of the lookahead token.
	cur int
	// depth is the current nesting of groups and calls.
	depth int
	ctx   *parsectx
}

// curr returns the lookahead token. Past the last token, the result is an EOF
// token positioned just after it.
func (p *parser) curr() Token {
	if p.cur < len(p.toks) {
		return p.toks[p.cur]
	}
	pos := 1
	if len(p.toks) > 0 {
		last := p.toks[len(p.toks)-1]
		pos = last.Pos + utf8.RuneCountInString(last.Text)
	}
	return Token{Kind: TokenEOF, Pos: pos}
}

// eat advances past the lookahead token if it has the given kind. Otherwise,
// it returns a *TokenError and does not advance.
func (p *parser) eat(kind TokenKind) error {
	tok := p.curr()
	if tok.Kind != kind {
		return &TokenError{Col: tok.Pos, Want: kind, Got: tok}
	}
	p.cur++
	return nil
}

// enter records one more level of nesting at tok.
func (p *parser) enter(tok Token) error {
	p.depth++
	if p.ctx.maxdepth > 0 && p.depth > p.ctx.maxdepth {
		return &DepthError{Col: tok.Pos, Max: p.ctx.maxdepth}
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// expr parses a sum of terms.
func (p *parser) expr() (*node, error) {
	n, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.curr()
		if tok.Kind != TokenPlus && tok.Kind != TokenMinus {
			return n, nil
		}
		if err := p.eat(tok.Kind); err != nil {
			return nil, err
		}
		op, err := binop(tok)
		if err != nil {
			return nil, err
		}
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		n = &node{kind: op, pos: tok.Pos, left: n, right: rhs}
	}
}

// term parses a product of factors.
func (p *parser) term() (*node, error) {
	n, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.curr()
		switch tok.Kind {
		case TokenStar, TokenSlash, TokenStarStar, TokenPercent:
		default:
			return n, nil
		}
		if err := p.eat(tok.Kind); err != nil {
			return nil, err
		}
		op, err := binop(tok)
		if err != nil {
			return nil, err
		}
		rhs, err := p.factor()
		if err != nil {
			return nil, err
		}
		n = &node{kind: op, pos: tok.Pos, left: n, right: rhs}
	}
}

// factor parses a number, a call, or a parenthesized expression.
func (p *parser) factor() (*node, error) {
	tok := p.curr()
	switch tok.Kind {
	case TokenNumber:
		v, err := strconv.ParseFloat(tok.Text, 64)
		// Out of range numbers are infinities, like any other float overflow.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &NumberError{Col: tok.Pos, Text: tok.Text, Err: err}
		}
		if err := p.eat(TokenNumber); err != nil {
			return nil, err
		}
		return &node{kind: nodeNum, num: v, name: tok.Text, pos: tok.Pos}, nil
	case TokenIdent:
		if err := p.eat(TokenIdent); err != nil {
			return nil, err
		}
		arg, err := p.group(tok)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeCall, name: tok.Text, pos: tok.Pos, left: arg}, nil
	case TokenOpenParen:
		return p.group(tok)
	default:
		return nil, &TokenError{Col: tok.Pos, Want: TokenNumber, Got: tok}
	}
}

// group parses '(' Expr ')'. at is the token that began the group, either the
// open paren itself or the name of a called function.
func (p *parser) group(at Token) (*node, error) {
	if err := p.enter(at); err != nil {
		return nil, err
	}
	defer p.leave()
	if err := p.eat(TokenOpenParen); err != nil {
		return nil, err
	}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.eat(TokenCloseParen); err != nil {
		return nil, err
	}
	return n, nil
}

// binop gets the binary operator node kind for an operator token.
func binop(tok Token) (nodeKind, error) {
	switch tok.Kind {
	case TokenPlus:
		return nodeAdd, nil
	case TokenMinus:
		return nodeSub, nil
	case TokenStar:
		return nodeMul, nil
	case TokenSlash:
		return nodeDiv, nil
	case TokenStarStar:
		return nodePow, nil
	case TokenPercent:
		return nodeMod, nil
	default:
		return nodeNone, &OperatorError{Col: tok.Pos, Kind: tok.Kind}
	}
}

// Funcs returns the names of functions called by the expression, sorted.
func (e *Expr) Funcs() []string {
	return append(([]string)(nil), e.funcs...)
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, false)
	return b.String()
}
