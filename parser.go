package devcalc

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
)

// Expression is a parsed expression in postfix (Reverse Polish) order.
type Expression struct {
	Source string  // Original input
	Tokens []Token // Postfix token sequence, free of parentheses
}

// Parse parses an infix expression from bytes. It rejects lexical errors and
// unbalanced parentheses; operand and operator adjacency is left to Evaluate,
// so a sequence already in postfix order ("1 2 +") is evaluated as written.
func Parse(data []byte, opt *ParseOptions) (*Expression, error) {
	popt := opt.normalize()
	p := newParser(data, popt)
	return p.parseExpression()
}

// ParseString parses an infix expression from a string.
func ParseString(s string, opt *ParseOptions) (*Expression, error) {
	return Parse([]byte(s), opt)
}

// Decode parses an expression read from r. A single trailing line break is
// ignored so that piped input works.
func Decode(r io.Reader, opt *ParseOptions) (*Expression, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	b = bytes.TrimSuffix(b, []byte("\n"))
	b = bytes.TrimSuffix(b, []byte("\r"))
	return Parse(b, opt)
}

// DecodeFile parses an expression stored in a file.
func DecodeFile(path string, opt *ParseOptions) (*Expression, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return Decode(f, opt)
}

// Single returns the number when the expression is a lone literal.
func (e *Expression) Single() (Number, bool) {
	if e == nil || len(e.Tokens) != 1 || !e.Tokens[0].IsNumber() {
		return Number{}, false
	}

	return e.Tokens[0].Num, true
}

// Postfix returns the postfix token sequence as space separated text.
func (e *Expression) Postfix() string {
	if e == nil {
		return ""
	}

	parts := make([]string, len(e.Tokens))
	for i, tok := range e.Tokens {
		parts[i] = tok.String()
	}

	return strings.Join(parts, " ")
}

// parser converts infix tokens to postfix using the shunting-yard algorithm.
type parser struct {
	l   *lexer  // Lexer for the expression
	out []Token // Output queue
	ops []Token // Operator stack, top is the last element
}

// newParser creates a new parser for src.
func newParser(src []byte, opt ParseOptions) *parser {
	return &parser{l: newLexer(src, opt)}
}

// parseExpression consumes the whole input. Operand adjacency is not
// checked here: "1 2" parses and is rejected by Evaluate, while postfix-looking
// input such as "0b1 0b1 +" is accepted and reduces to 0b10.
func (p *parser) parseExpression() (*Expression, error) {
	for {
		tok, err := p.l.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if tok.IsNumber() {
			p.out = append(p.out, tok)
			continue
		}

		switch tok.Op {
		case OpLParen:
			p.ops = append(p.ops, tok)
		case OpRParen:
			if err := p.closeParen(tok); err != nil {
				return nil, err
			}
		default:
			p.pushOperator(tok)
		}
	}

	// Drain the stack; any parenthesis left here was never closed.
	for len(p.ops) > 0 {
		top := p.pop()
		if top.Op.IsParen() {
			return nil, p.l.errorf(ErrParse, top.Col, "mismatched parenthesis")
		}
		p.out = append(p.out, top)
	}

	return &Expression{Source: string(p.l.src), Tokens: p.out}, nil
}

// pushOperator moves higher-precedence operators (and equal-precedence ones
// when tok is left-associative) to the output, then pushes tok.
func (p *parser) pushOperator(tok Token) {
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1].Op
		if top == OpLParen {
			break
		}
		if top.Precedence() > tok.Op.Precedence() ||
			(top.Precedence() == tok.Op.Precedence() && tok.Op.LeftAssociative()) {
			p.out = append(p.out, p.pop())
			continue
		}
		break
	}

	p.ops = append(p.ops, tok)
}

// closeParen pops operators up to the matching '(' which is discarded.
func (p *parser) closeParen(tok Token) error {
	for len(p.ops) > 0 {
		top := p.pop()
		if top.Op == OpLParen {
			return nil
		}
		p.out = append(p.out, top)
	}

	return p.l.errorf(ErrParse, tok.Col, "mismatched parenthesis")
}

// pop removes the top of the operator stack.
func (p *parser) pop() Token {
	top := p.ops[len(p.ops)-1]
	p.ops = p.ops[:len(p.ops)-1]
	return top
}
