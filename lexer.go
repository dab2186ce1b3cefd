package devcalc

import (
	"fmt"
	"io"
)

// nbsp is the UTF-8 encoding of U+00A0 NO-BREAK SPACE.
const nbsp0, nbsp1 = 0xC2, 0xA0

// lexer splits an expression into number and operator tokens.
type lexer struct {
	src []byte       // Input bytes
	opt ParseOptions // Options for the lexer
	pos int          // Index of the next unread byte
}

// newLexer creates a new lexer over src.
func newLexer(src []byte, opt ParseOptions) *lexer {
	return &lexer{src: src, opt: opt}
}

// next returns the next token, or io.EOF once the input is exhausted.
func (l *lexer) next() (Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return Token{}, io.EOF
	}

	if isDecDigit(l.src[l.pos]) {
		return l.readNumber()
	}

	// Identifiers and function calls are not part of the grammar, so
	// everything else must be an operator or a parenthesis.
	start := l.pos
	op, width, ok := lexOperator(l.src[start:])
	if !ok {
		return Token{}, l.errorf(ErrLex, start+1, "Invalid operator")
	}
	l.pos += width

	return OperatorToken(op, start+1), nil
}

// skipWhitespace skips ASCII spaces and, unless disabled, no-break spaces.
func (l *lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		switch {
		case l.src[l.pos] == ' ':
			l.pos++
		case !l.opt.DisableNBSP && l.src[l.pos] == nbsp0 && l.pos+1 < len(l.src) && l.src[l.pos+1] == nbsp1:
			l.pos += 2
		default:
			return
		}
	}
}

// readNumber reads a literal starting at an ASCII digit. A leading 0
// followed by b, o or x (any case) selects the base; the prefix is not part
// of the digits.
func (l *lexer) readNumber() (Token, error) {
	start := l.pos
	end := start + 1
	base := Dec
	if l.src[start] == '0' && end < len(l.src) {
		if b, ok := basePrefix(l.src[end]); ok {
			base = b
			end++
		}
	}
	digits := start
	if base != Dec {
		digits = start + 2
	}

	for end < len(l.src) {
		ch := l.src[end]
		if base.isDigit(ch) {
			end++
			continue
		}
		if isHexDigit(ch) {
			// Column points at the offending digit.
			l.pos = end + 1
			return Token{}, l.errorf(ErrLex, end+1, "Invalid %s number", base)
		}
		break
	}
	l.pos = end

	if end == digits {
		// Bare prefix such as "0x"; point at the base letter.
		return Token{}, l.errorf(ErrLex, end, "Invalid %s number", base)
	}

	num := mustParseNumber(l.src[digits:end], base)
	return NumberToken(num, string(l.src[start:end]), start+1), nil
}

// errorf formats an error message and returns a *SyntaxError.
func (l *lexer) errorf(kind error, col int, format string, args ...any) error {
	return &SyntaxError{
		Kind:   kind,
		Msg:    fmt.Sprintf(format, args...),
		Source: string(l.src),
		Col:    col,
	}
}
