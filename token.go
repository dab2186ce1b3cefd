package devcalc

// TokenKind selects which variant a Token holds.
type TokenKind int

const (
	// TokenNumber holds a Number.
	TokenNumber TokenKind = iota
	// TokenOperator holds an Operator.
	TokenOperator
)

// Token is either a Number or an Operator, with its position in the source.
type Token struct {
	Lit  string    // Literal text as written (including base prefix)
	Num  Number    // Value when Kind is TokenNumber
	Op   Operator  // Operator when Kind is TokenOperator
	Kind TokenKind // Variant tag
	Col  int       // 1-based column of the first byte
}

// NumberToken returns a number token.
func NumberToken(n Number, lit string, col int) Token {
	return Token{Kind: TokenNumber, Num: n, Lit: lit, Col: col}
}

// OperatorToken returns an operator token.
func OperatorToken(op Operator, col int) Token {
	return Token{Kind: TokenOperator, Op: op, Lit: op.String(), Col: col}
}

// IsNumber reports whether t holds a Number.
func (t Token) IsNumber() bool { return t.Kind == TokenNumber }

// IsOperator reports whether t holds an Operator.
func (t Token) IsOperator() bool { return t.Kind == TokenOperator }

// String returns the token text as written, falling back to the operator
// symbol or the decimal value for tokens built without a literal.
func (t Token) String() string {
	if t.Lit != "" {
		return t.Lit
	}
	if t.Kind == TokenOperator {
		return t.Op.String()
	}

	return t.Num.Text(Dec, false)
}
