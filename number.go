package devcalc

import (
	"fmt"
	"math/big"
	"strings"
)

// MaxShift is the largest left shift count accepted by <<.
const MaxShift = 1 << 24

// Number is an arbitrary-precision signed integer tagged with the base used
// to display it. Numbers are immutable: every operation returns a new value.
// The zero Number is 0 in base 10.
type Number struct {
	value *big.Int   // Never mutated after construction, nil means zero
	base  NumberBase // Display base
}

// NewNumber returns a Number holding a copy of v displayed in base.
func NewNumber(v *big.Int, base NumberBase) Number {
	n := Number{base: base}
	if v != nil {
		n.value = new(big.Int).Set(v)
	}

	return n
}

// NumberFromInt64 returns a Number holding v displayed in base.
func NumberFromInt64(v int64, base NumberBase) Number {
	return Number{value: big.NewInt(v), base: base}
}

// ParseNumber parses digits (without any base prefix) in the given base.
func ParseNumber(digits []byte, base NumberBase) (Number, error) {
	if !base.Valid() {
		return Number{}, fmt.Errorf("%w: invalid number base %d", ErrLex, int(base))
	}
	if len(digits) == 0 {
		return Number{}, fmt.Errorf("%w: empty %s number", ErrLex, base)
	}

	v, ok := new(big.Int).SetString(string(digits), int(base))
	if !ok || v.Sign() < 0 {
		return Number{}, fmt.Errorf("%w: invalid %s number %q", ErrLex, base, digits)
	}

	return Number{value: v, base: base}, nil
}

// mustParseNumber parses a digit run already validated by the lexer.
func mustParseNumber(digits []byte, base NumberBase) Number {
	n, err := ParseNumber(digits, base)
	if err != nil {
		panic("devcalc: validated literal failed to parse: " + err.Error())
	}

	return n
}

// Base returns the display base.
func (n Number) Base() NumberBase {
	if !n.base.Valid() {
		return Dec
	}

	return n.base
}

// WithBase returns the same value displayed in base.
func (n Number) WithBase(base NumberBase) Number {
	n.base = base
	return n
}

// Int returns a copy of the underlying integer.
func (n Number) Int() *big.Int {
	return new(big.Int).Set(n.int())
}

// Sign returns -1, 0 or +1.
func (n Number) Sign() int {
	return n.int().Sign()
}

// Cmp compares the values of n and m, ignoring the display base.
func (n Number) Cmp(m Number) int {
	return n.int().Cmp(m.int())
}

// BitLen returns the bit length of the absolute value.
func (n Number) BitLen() int {
	return n.int().BitLen()
}

// Add returns n + m.
func (n Number) Add(m Number) Number {
	return n.derive(new(big.Int).Add(n.int(), m.int()))
}

// Sub returns n - m. The result may be negative.
func (n Number) Sub(m Number) Number {
	return n.derive(new(big.Int).Sub(n.int(), m.int()))
}

// And returns n & m (two's complement semantics for negative values).
func (n Number) And(m Number) Number {
	return n.derive(new(big.Int).And(n.int(), m.int()))
}

// Xor returns n ^ m.
func (n Number) Xor(m Number) Number {
	return n.derive(new(big.Int).Xor(n.int(), m.int()))
}

// Or returns n | m.
func (n Number) Or(m Number) Number {
	return n.derive(new(big.Int).Or(n.int(), m.int()))
}

// Lsh returns n << m. It fails when m is negative or larger than MaxShift.
func (n Number) Lsh(m Number) (Number, error) {
	s, err := m.shiftCount()
	if err != nil {
		return Number{}, err
	}

	return n.derive(new(big.Int).Lsh(n.int(), s)), nil
}

// Rsh returns n >> m (arithmetic shift). It fails only when m is negative;
// shifting by BitLen or more yields 0, or -1 for negative n.
func (n Number) Rsh(m Number) (Number, error) {
	c := m.int()
	if c.Sign() < 0 {
		return Number{}, fmt.Errorf("%w: %s", ErrShiftRange, c.String())
	}
	if c.Cmp(big.NewInt(int64(n.BitLen()))) >= 0 {
		if n.Sign() < 0 {
			return n.derive(big.NewInt(-1)), nil
		}
		return n.derive(new(big.Int)), nil
	}

	return n.derive(new(big.Int).Rsh(n.int(), uint(c.Uint64()))), nil
}

// Text renders the value in base, with the 0b/0o/0x prefix when prefix is set.
func (n Number) Text(base NumberBase, prefix bool) string {
	return Render(n.int(), base, prefix)
}

// String renders the value in its own base without prefix.
func (n Number) String() string {
	return n.Text(n.Base(), false)
}

// Render formats v in base. Hexadecimal digits are upper-case. With prefix,
// non-decimal bases get their literal prefix after the sign (-0b101, 0x2A).
func Render(v *big.Int, base NumberBase, prefix bool) string {
	if v == nil {
		v = new(big.Int)
	}

	var digits string
	switch base {
	case Bin:
		digits = new(big.Int).Abs(v).Text(2)
	case Oct:
		digits = new(big.Int).Abs(v).Text(8)
	case Hex:
		digits = strings.ToUpper(new(big.Int).Abs(v).Text(16))
	default:
		return v.Text(10)
	}

	var b strings.Builder
	if v.Sign() < 0 {
		b.WriteByte('-')
	}
	if prefix {
		b.WriteString(base.Prefix())
	}
	b.WriteString(digits)

	return b.String()
}

// derive wraps a freshly computed value, keeping the receiver's base.
func (n Number) derive(v *big.Int) Number {
	return Number{value: v, base: n.base}
}

func (n Number) int() *big.Int {
	if n.value == nil {
		return new(big.Int)
	}

	return n.value
}

// shiftCount bounds a left shift count to [0, MaxShift].
func (n Number) shiftCount() (uint, error) {
	v := n.int()
	if v.Sign() < 0 || v.Cmp(big.NewInt(MaxShift)) > 0 {
		return 0, fmt.Errorf("%w: %s", ErrShiftRange, v.String())
	}

	return uint(v.Uint64()), nil
}
