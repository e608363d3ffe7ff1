package floatexpr

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []Token
	}{
		// spaces
		{"", nil},
		{" \t \r\n ", nil},
		// numbers
		{"0", []Token{{Text: "0", Kind: TokenNumber, Pos: 1}}},
		{"9876543210", []Token{{Text: "9876543210", Kind: TokenNumber, Pos: 1}}},
		{"1 0", []Token{{Text: "1", Kind: TokenNumber, Pos: 1}, {Text: "0", Kind: TokenNumber, Pos: 3}}},
		{"1.0", []Token{{Text: "1.0", Kind: TokenNumber, Pos: 1}}},
		{"5.", []Token{{Text: "5.", Kind: TokenNumber, Pos: 1}}},
		{"-1", []Token{{Text: "-1", Kind: TokenNumber, Pos: 1}}},
		{"-1.5", []Token{{Text: "-1.5", Kind: TokenNumber, Pos: 1}}},
		{".5", []Token{{Text: "5", Kind: TokenNumber, Pos: 2}}},
		{"1.1.1", []Token{{Text: "1.1", Kind: TokenNumber, Pos: 1}, {Text: "1", Kind: TokenNumber, Pos: 5}}},
		{"1-1", []Token{{Text: "1", Kind: TokenNumber, Pos: 1}, {Text: "-1", Kind: TokenNumber, Pos: 2}}},
		{"1 - 1", []Token{{Text: "1", Kind: TokenNumber, Pos: 1}, {Text: "-", Kind: TokenMinus, Pos: 3}, {Text: "1", Kind: TokenNumber, Pos: 5}}},
		// identifiers
		{"cos", []Token{{Text: "cos", Kind: TokenIdent, Pos: 1}}},
		{"_x1", []Token{{Text: "_x1", Kind: TokenIdent, Pos: 1}}},
		{"cos(", []Token{{Text: "cos", Kind: TokenIdent, Pos: 1}, {Text: "(", Kind: TokenOpenParen, Pos: 4}}},
		{"2x", []Token{{Text: "2", Kind: TokenNumber, Pos: 1}, {Text: "x", Kind: TokenIdent, Pos: 2}}},
		// operators
		{"+", []Token{{Text: "+", Kind: TokenPlus, Pos: 1}}},
		{"-", []Token{{Text: "-", Kind: TokenMinus, Pos: 1}}},
		{"*", []Token{{Text: "*", Kind: TokenStar, Pos: 1}}},
		{"**", []Token{{Text: "**", Kind: TokenStarStar, Pos: 1}}},
		{"***", []Token{{Text: "**", Kind: TokenStarStar, Pos: 1}, {Text: "*", Kind: TokenStar, Pos: 3}}},
		{"* *", []Token{{Text: "*", Kind: TokenStar, Pos: 1}, {Text: "*", Kind: TokenStar, Pos: 3}}},
		{"/", []Token{{Text: "/", Kind: TokenSlash, Pos: 1}}},
		{"%", []Token{{Text: "%", Kind: TokenPercent, Pos: 1}}},
		{"()", []Token{{Text: "(", Kind: TokenOpenParen, Pos: 1}, {Text: ")", Kind: TokenCloseParen, Pos: 2}}},
		// skipped characters
		{"$", nil},
		{"1$", []Token{{Text: "1", Kind: TokenNumber, Pos: 1}}},
		{"$1", []Token{{Text: "1", Kind: TokenNumber, Pos: 2}}},
		{"[1]", []Token{{Text: "1", Kind: TokenNumber, Pos: 2}}},
		{"π+1", []Token{{Text: "+", Kind: TokenPlus, Pos: 2}, {Text: "1", Kind: TokenNumber, Pos: 3}}},
		{"ππ1", []Token{{Text: "1", Kind: TokenNumber, Pos: 3}}},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			assert.Equal(t, c.tokens, Lex(c.src))
		})
	}
}

func TestLexIgnoresWhitespace(t *testing.T) {
	want := []TokenKind{TokenNumber, TokenPlus, TokenNumber}
	for _, src := range []string{"1+1", "1 + 1", "1\t+\t1", "\n1\r\n+  1  "} {
		toks := Lex(src)
		kinds := make([]TokenKind, len(toks))
		for i, tok := range toks {
			kinds[i] = tok.Kind
		}
		assert.Equal(t, want, kinds, "lexing %q", src)
		require.Len(t, toks, 3)
		assert.Equal(t, "1", toks[0].Text)
		assert.Equal(t, "+", toks[1].Text)
		assert.Equal(t, "1", toks[2].Text)
	}
}

func TestLexPowerBeforeStar(t *testing.T) {
	toks := Lex("2**3")
	assert.Equal(t, []Token{
		{Text: "2", Kind: TokenNumber, Pos: 1},
		{Text: "**", Kind: TokenStarStar, Pos: 2},
		{Text: "3", Kind: TokenNumber, Pos: 4},
	}, toks)
}

func TestLexRuleOrder(t *testing.T) {
	// With * first, ** can never match.
	l := NewLexer(
		MustPatternRule(TokenNumber, NumberPattern),
		KeywordRule(TokenStar, "*"),
		KeywordRule(TokenStarStar, "**"),
	)
	toks := l.Lex("2**3")
	kinds := make([]TokenKind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokenKind{TokenNumber, TokenStar, TokenStar, TokenNumber}, kinds)
}

func TestLexPatternAnchored(t *testing.T) {
	// The pattern matches later in the input but must not match here.
	l := NewLexer(MustPatternRule(TokenNumber, `[0-9]+`), KeywordRule(TokenPlus, "+"))
	assert.Equal(t, []Token{
		{Text: "+", Kind: TokenPlus, Pos: 1},
		{Text: "12", Kind: TokenNumber, Pos: 2},
	}, l.Lex("+12"))
}

func TestLexEmptyMatch(t *testing.T) {
	l := NewLexer(MustPatternRule(TokenNumber, `[0-9]*`))
	assert.Equal(t, []Token{{Text: "7", Kind: TokenNumber, Pos: 3}}, l.Lex("ab7"))
}

func TestLexSharesSource(t *testing.T) {
	src := "123 + 456"
	toks := Lex(src)
	require.Len(t, toks, 3)
	assert.Equal(t, "456", toks[2].Text)
	assert.Same(t, unsafe.StringData(src[6:]), unsafe.StringData(toks[2].Text))
}

func TestPatternRuleError(t *testing.T) {
	_, err := PatternRule(TokenNumber, `[0-9`)
	require.Error(t, err)
	assert.Panics(t, func() { MustPatternRule(TokenNumber, `(`) })
	assert.Panics(t, func() { KeywordRule(TokenPlus, "") })
}

func TestDefaultRulesCopy(t *testing.T) {
	r := DefaultRules()
	require.Len(t, r, len(defaultRules))
	r[0] = KeywordRule(TokenPlus, "+")
	assert.Equal(t, TokenNumber, DefaultRules()[0].Kind())
}

func TestTokenKindString(t *testing.T) {
	assert.Equal(t, "StarStar", TokenStarStar.String())
	assert.Equal(t, "EOF", TokenEOF.String())
	assert.Equal(t, "TokenKind(100)", TokenKind(100).String())
	assert.Equal(t, "**", TokenStarStar.describe())
	assert.Equal(t, "end of input", TokenEOF.describe())
}
