package devcalc

import "fmt"

// Operator is one of the binary operators or a parenthesis.
type Operator int

// Operators. Parentheses are structural and never applied.
const (
	OpSum    Operator = iota // +
	OpSub                    // -
	OpAnd                    // &
	OpXor                    // ^
	OpOr                     // |
	OpShiftL                 // <<
	OpShiftR                 // >>
	OpLParen                 // (
	OpRParen                 // )
)

var operatorText = [...]string{
	OpSum:    "+",
	OpSub:    "-",
	OpAnd:    "&",
	OpXor:    "^",
	OpOr:     "|",
	OpShiftL: "<<",
	OpShiftR: ">>",
	OpLParen: "(",
	OpRParen: ")",
}

// lexOperator matches the operator at the start of b and returns it with
// the number of bytes it occupies.
func lexOperator(b []byte) (Operator, int, bool) {
	if len(b) == 0 {
		return 0, 0, false
	}

	switch b[0] {
	case '+':
		return OpSum, 1, true
	case '-':
		return OpSub, 1, true
	case '&':
		return OpAnd, 1, true
	case '^':
		return OpXor, 1, true
	case '|':
		return OpOr, 1, true
	case '(':
		return OpLParen, 1, true
	case ')':
		return OpRParen, 1, true
	case '<', '>':
		if len(b) < 2 || b[1] != b[0] {
			return 0, 0, false
		}
		if b[0] == '<' {
			return OpShiftL, 2, true
		}
		return OpShiftR, 2, true
	}

	return 0, 0, false
}

// String returns the operator as written in expressions.
func (op Operator) String() string {
	if op < 0 || int(op) >= len(operatorText) {
		return fmt.Sprintf("Operator(%d)", int(op))
	}

	return operatorText[op]
}

// Precedence returns the binding strength; higher binds tighter.
func (op Operator) Precedence() int {
	switch op {
	case OpSum, OpSub:
		return 9
	case OpShiftL, OpShiftR:
		return 8
	case OpAnd:
		return 7
	case OpXor:
		return 6
	case OpOr:
		return 5
	}

	return 0
}

// LeftAssociative reports whether equal-precedence chains group to the left.
// Parentheses have no associativity.
func (op Operator) LeftAssociative() bool {
	return !op.IsParen()
}

// IsParen reports whether op is a parenthesis.
func (op Operator) IsParen() bool {
	return op == OpLParen || op == OpRParen
}

// Apply computes a op b. The result keeps a's display base.
func (op Operator) Apply(a, b Number) (Number, error) {
	switch op {
	case OpSum:
		return a.Add(b), nil
	case OpSub:
		return a.Sub(b), nil
	case OpAnd:
		return a.And(b), nil
	case OpXor:
		return a.Xor(b), nil
	case OpOr:
		return a.Or(b), nil
	case OpShiftL:
		return a.Lsh(b)
	case OpShiftR:
		return a.Rsh(b)
	}

	return Number{}, fmt.Errorf("%w: %s", ErrNotApplicable, op)
}
