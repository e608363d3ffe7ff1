package floatexpr

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Token is a lexeme recognized by a Lexer.
type Token struct {
	// Text is the exact substring of the source that the token's rule matched.
	Text string
	// Kind is the kind of the rule that matched.
	Kind TokenKind
	// Pos is the 1-based rune column of the start of the token.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the category of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenEOF indicates the end of the input. Lexers never produce it; the
	// parser uses it as the lookahead past the last token.
	TokenEOF
	// TokenNumber is a decimal number, possibly signed.
	TokenNumber
	// TokenIdent is a function name.
	TokenIdent

	TokenPlus
	TokenMinus
	TokenStar
	TokenStarStar
	TokenSlash
	TokenPercent

	TokenOpenParen
	TokenCloseParen
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token

// describe names a token kind the way it appears in input, for error messages.
func (k TokenKind) describe() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenNumber:
		return "number"
	case TokenIdent:
		return "name"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "*"
	case TokenStarStar:
		return "**"
	case TokenSlash:
		return "/"
	case TokenPercent:
		return "%"
	case TokenOpenParen:
		return "("
	case TokenCloseParen:
		return ")"
	default:
		return k.String()
	}
}

// Rule recognizes one kind of token. A rule has exactly one of a pattern or a
// keyword.
type Rule struct {
	kind    TokenKind
	re      *regexp.Regexp
	keyword string
}

// KeywordRule creates a rule that recognizes the literal text kw.
func KeywordRule(kind TokenKind, kw string) Rule {
	if kw == "" {
		panic("floatexpr: empty keyword for " + kind.String())
	}
	return Rule{kind: kind, keyword: kw}
}

// PatternRule creates a rule that recognizes text matching a regular
// expression. The pattern only matches at the lexer's current position, as if
// it began with \A.
func PatternRule(kind TokenKind, pattern string) (Rule, error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return Rule{}, err
	}
	return Rule{kind: kind, re: re}, nil
}

// MustPatternRule is like PatternRule but panics if the pattern does not
// compile.
func MustPatternRule(kind TokenKind, pattern string) Rule {
	r, err := PatternRule(kind, pattern)
	if err != nil {
		panic("floatexpr: " + err.Error())
	}
	return r
}

// Kind returns the kind of token the rule produces.
func (r Rule) Kind() TokenKind {
	return r.kind
}

// match returns the length in bytes of the rule's match at the start of s,
// or 0 if it does not match.
func (r Rule) match(s string) int {
	if r.re != nil {
		loc := r.re.FindStringIndex(s)
		if loc == nil {
			return 0
		}
		return loc[1]
	}
	if strings.HasPrefix(s, r.keyword) {
		return len(r.keyword)
	}
	return 0
}

// NumberPattern is the pattern for numbers in the default rules: an optional
// minus sign, digits, and an optional fraction. A trailing point with no
// fractional digits is accepted, so "5." is a number.
const NumberPattern = `-?[0-9]+\.?[0-9]*`

// IdentPattern is the pattern for function names in the default rules.
const IdentPattern = `[a-zA-Z_]+[a-zA-Z0-9_]*`

var defaultRules = []Rule{
	MustPatternRule(TokenNumber, NumberPattern),
	MustPatternRule(TokenIdent, IdentPattern),
	KeywordRule(TokenPlus, "+"),
	KeywordRule(TokenMinus, "-"),
	KeywordRule(TokenStarStar, "**"),
	KeywordRule(TokenStar, "*"),
	KeywordRule(TokenSlash, "/"),
	KeywordRule(TokenPercent, "%"),
	KeywordRule(TokenOpenParen, "("),
	KeywordRule(TokenCloseParen, ")"),
}

// DefaultRules returns a copy of the rules used by Lex and Parse.
func DefaultRules() []Rule {
	return append([]Rule(nil), defaultRules...)
}

// Lexer splits source text into tokens using an ordered list of rules.
type Lexer struct {
	rules []Rule
}

// NewLexer creates a lexer which tries rules in the given order. Rules whose
// text overlaps, like ** and *, must list the longer one first.
func NewLexer(rules ...Rule) *Lexer {
	return &Lexer{rules: append([]Rule(nil), rules...)}
}

var defaultLexer = &Lexer{rules: defaultRules}

// Lex splits src into tokens using the default rules.
func Lex(src string) []Token {
	return defaultLexer.Lex(src)
}

// Lex splits src into tokens. At each position, the first rule that matches
// produces a token. Characters that no rule matches, including whitespace, are
// skipped one at a time.
func (l *Lexer) Lex(src string) []Token {
	var toks []Token
	col := 1
	for cur := 0; cur < len(src); {
		rest := src[cur:]
		n := 0
		var kind TokenKind
		for _, r := range l.rules {
			// Zero-length matches would never advance.
			if n = r.match(rest); n > 0 {
				kind = r.kind
				break
			}
		}
		if n == 0 {
			_, sz := utf8.DecodeRuneInString(rest)
			cur += sz
			col++
			continue
		}
		toks = append(toks, Token{Text: rest[:n], Kind: kind, Pos: col})
		cur += n
		col += utf8.RuneCountInString(rest[:n])
	}
	return toks
}
