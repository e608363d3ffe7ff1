package floatexpr

import "strconv"

// NumberError is an error indicating a number token whose text is not a valid
// number. It implements InputError.
type NumberError struct {
	// Col is the position of the number.
	Col int
	// Text is the token's text.
	Text string
	// Err is the error from converting the text.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

func (err *NumberError) Pos() int {
	return err.Col
}

// TokenError is an error indicating that the parser found a token other than
// the one the grammar requires. A missing operand, a missing close paren, and
// input after a complete expression are all token errors. It implements
// InputError.
type TokenError struct {
	// Col is the position of the unexpected token.
	Col int
	// Want is the kind of token the parser expected. For tokens following a
	// complete expression, Want is TokenEOF. Where any term could appear,
	// Want is TokenNumber.
	Want TokenKind
	// Got is the token the parser found. At the end of input, Got.Kind is
	// TokenEOF.
	Got Token
}

func (err *TokenError) Error() string {
	got := err.Got.Kind.describe()
	switch err.Got.Kind {
	case TokenNumber, TokenIdent:
		got += " " + strconv.Quote(err.Got.Text)
	}
	if err.Want == TokenEOF {
		return errpos(err.Col, "unexpected "+got+" after end of expression")
	}
	return errpos(err.Col, "expected "+err.Want.describe()+" but found "+got)
}

func (err *TokenError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating a token that was used as a binary
// operator but has no binary operator meaning. It implements InputError.
type OperatorError struct {
	// Col is the position of the token.
	Col int
	// Kind is the token kind that was not understood.
	Kind TokenKind
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown binary operator "+err.Kind.describe())
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// DepthError is an error indicating that groups or calls were nested more
// deeply than the parser allows. It implements InputError.
type DepthError struct {
	// Col is the position of the token that exceeded the limit.
	Col int
	// Max is the nesting limit.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression nested deeper than "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input during parsing implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the rune column of the start
	// of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*DepthError)(nil)
)
