package devcalc

import (
	"fmt"
	"strings"
)

// NumberBase is the radix used to read or display a number.
type NumberBase int

// Supported bases.
const (
	Bin NumberBase = 2  // Binary
	Oct NumberBase = 8  // Octal
	Dec NumberBase = 10 // Decimal
	Hex NumberBase = 16 // Hexadecimal
)

// ParseNumberBase parses a base name as accepted on the command line:
// bin|2, oct|8, dec|10 or hex|16.
func ParseNumberBase(s string) (NumberBase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bin", "2":
		return Bin, nil
	case "oct", "8":
		return Oct, nil
	case "dec", "10":
		return Dec, nil
	case "hex", "16":
		return Hex, nil
	}

	return 0, fmt.Errorf("unknown number base %q (want bin|2|oct|8|dec|10|hex|16)", s)
}

// Valid reports whether b is one of the supported bases.
func (b NumberBase) Valid() bool {
	switch b {
	case Bin, Oct, Dec, Hex:
		return true
	}

	return false
}

// String returns the display label (BIN, OCT, DEC or HEX).
func (b NumberBase) String() string {
	switch b {
	case Bin:
		return "BIN"
	case Oct:
		return "OCT"
	case Dec:
		return "DEC"
	case Hex:
		return "HEX"
	}

	return fmt.Sprintf("NumberBase(%d)", int(b))
}

// Name returns the short lower-case name accepted by ParseNumberBase.
func (b NumberBase) Name() string {
	return strings.ToLower(b.String())
}

// Prefix returns the literal prefix for the base (empty for decimal).
func (b NumberBase) Prefix() string {
	switch b {
	case Bin:
		return "0b"
	case Oct:
		return "0o"
	case Hex:
		return "0x"
	}

	return ""
}

// MarshalText implements encoding.TextMarshaler.
func (b NumberBase) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("invalid number base %d", int(b))
	}

	return []byte(b.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *NumberBase) UnmarshalText(text []byte) error {
	v, err := ParseNumberBase(string(text))
	if err != nil {
		return err
	}

	*b = v
	return nil
}

// isDigit reports whether ch is a valid digit in base b.
func (b NumberBase) isDigit(ch byte) bool {
	switch b {
	case Bin:
		return ch == '0' || ch == '1'
	case Oct:
		return ch >= '0' && ch <= '7'
	case Dec:
		return isDecDigit(ch)
	case Hex:
		return isHexDigit(ch)
	}

	return false
}

// basePrefix maps the letter following a leading zero to its base.
func basePrefix(ch byte) (NumberBase, bool) {
	switch ch {
	case 'b', 'B':
		return Bin, true
	case 'o', 'O':
		return Oct, true
	case 'x', 'X':
		return Hex, true
	}

	return Dec, false
}

func isDecDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDecDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
