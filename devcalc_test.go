package devcalc

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/woozymasta/lintkit/lint"
)

func TestParseNumberBase(t *testing.T) {
	tests := []struct {
		in   string
		want NumberBase
	}{
		{"bin", Bin}, {"2", Bin},
		{"oct", Oct}, {"8", Oct},
		{"dec", Dec}, {"10", Dec},
		{"hex", Hex}, {"16", Hex},
		{"HEX", Hex},
	}
	for _, tt := range tests {
		got, err := ParseNumberBase(tt.in)
		if err != nil {
			t.Fatalf("ParseNumberBase(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseNumberBase(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseNumberBase("3"); err == nil {
		t.Fatalf("expected error for base 3")
	}

	var b NumberBase
	if err := b.UnmarshalText([]byte("oct")); err != nil || b != Oct {
		t.Fatalf("UnmarshalText: %v, %v", b, err)
	}
	if txt, err := Hex.MarshalText(); err != nil || string(txt) != "hex" {
		t.Fatalf("MarshalText: %q, %v", txt, err)
	}
}

func TestNumberRoundTrip(t *testing.T) {
	tests := []struct {
		digits string
		base   NumberBase
		want   string
	}{
		{"0", Dec, "0"},
		{"1234567890123456789012345678901234567890", Dec, "1234567890123456789012345678901234567890"},
		{"101101", Bin, "101101"},
		{"755", Oct, "755"},
		{"DEADBEEF", Hex, "DEADBEEF"},
		{"deadbeef", Hex, "DEADBEEF"},
	}
	for _, tt := range tests {
		n, err := ParseNumber([]byte(tt.digits), tt.base)
		if err != nil {
			t.Fatalf("ParseNumber(%q, %v): %v", tt.digits, tt.base, err)
		}
		if got := n.Text(tt.base, false); got != tt.want {
			t.Fatalf("round trip %q in %v = %q, want %q", tt.digits, tt.base, got, tt.want)
		}
	}

	if _, err := ParseNumber(nil, Hex); !errors.Is(err, ErrLex) {
		t.Fatalf("expected ErrLex for empty digits, got %v", err)
	}
	if _, err := ParseNumber([]byte("12"), Bin); !errors.Is(err, ErrLex) {
		t.Fatalf("expected ErrLex for invalid digits, got %v", err)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		v      int64
		base   NumberBase
		prefix bool
		want   string
	}{
		{42, Hex, false, "2A"},
		{42, Hex, true, "0x2A"},
		{5, Bin, true, "0b101"},
		{-5, Bin, true, "-0b101"},
		{8, Oct, true, "0o10"},
		{-42, Dec, true, "-42"},
		{0, Bin, true, "0b0"},
	}
	for _, tt := range tests {
		if got := Render(big.NewInt(tt.v), tt.base, tt.prefix); got != tt.want {
			t.Fatalf("Render(%d, %v, %v) = %q, want %q", tt.v, tt.base, tt.prefix, got, tt.want)
		}
	}
}

func TestNumberImmutable(t *testing.T) {
	var zero Number
	if zero.String() != "0" || zero.Base() != Dec {
		t.Fatalf("zero Number = %q in %v", zero.String(), zero.Base())
	}

	a := NumberFromInt64(10, Hex)
	b := a.WithBase(Bin)
	if a.Base() != Hex || b.Base() != Bin {
		t.Fatalf("WithBase mutated receiver: %v %v", a.Base(), b.Base())
	}

	sum := a.Add(NumberFromInt64(1, Dec))
	if a.Cmp(NumberFromInt64(10, Dec)) != 0 {
		t.Fatalf("Add mutated receiver: %s", a)
	}
	if sum.Base() != Hex || sum.String() != "B" {
		t.Fatalf("sum = %s in %v, want B in HEX", sum, sum.Base())
	}

	v := a.Int()
	v.SetInt64(99)
	if a.Cmp(NumberFromInt64(10, Dec)) != 0 {
		t.Fatalf("Int leaked internal value")
	}
}

func TestShiftRange(t *testing.T) {
	one := NumberFromInt64(1, Dec)
	if _, err := one.Lsh(NumberFromInt64(-1, Dec)); !errors.Is(err, ErrShiftRange) {
		t.Fatalf("expected ErrShiftRange for negative shift, got %v", err)
	}
	if _, err := one.Lsh(NumberFromInt64(MaxShift+1, Dec)); !errors.Is(err, ErrShiftRange) {
		t.Fatalf("expected ErrShiftRange for huge left shift, got %v", err)
	}
	if _, err := one.Rsh(NumberFromInt64(-1, Dec)); !errors.Is(err, ErrShiftRange) {
		t.Fatalf("expected ErrShiftRange for negative right shift, got %v", err)
	}
	got, err := one.Lsh(NumberFromInt64(MaxShift, Dec))
	if err != nil {
		t.Fatalf("shift by MaxShift: %v", err)
	}
	if got.BitLen() != MaxShift+1 {
		t.Fatalf("bit length = %d, want %d", got.BitLen(), MaxShift+1)
	}

	huge := mustParseNumber([]byte("1FFFFFFFFFFFFFFFF"), Hex)
	tests := []struct {
		n    Number
		m    Number
		want string
	}{
		{NumberFromInt64(1, Dec), NumberFromInt64(MaxShift+1, Dec), "0"},
		{NumberFromInt64(-1, Dec), NumberFromInt64(2*MaxShift, Dec), "-1"},
		{NumberFromInt64(-5, Dec), huge, "-1"},
		{NumberFromInt64(5, Dec), huge, "0"},
		{NumberFromInt64(-5, Dec), NumberFromInt64(1, Dec), "-3"},
	}
	for _, tt := range tests {
		got, err := tt.n.Rsh(tt.m)
		if err != nil {
			t.Fatalf("%s >> %s: %v", tt.n, tt.m, err)
		}
		if got.String() != tt.want {
			t.Fatalf("%s >> %s = %s, want %s", tt.n, tt.m, got, tt.want)
		}
	}
	if _, err := OpLParen.Apply(one, one); !errors.Is(err, ErrNotApplicable) {
		t.Fatalf("expected ErrNotApplicable, got %v", err)
	}
}

func TestLexOperator(t *testing.T) {
	tests := []struct {
		in    string
		op    Operator
		width int
		ok    bool
	}{
		{"+", OpSum, 1, true},
		{"-1", OpSub, 1, true},
		{"&", OpAnd, 1, true},
		{"^", OpXor, 1, true},
		{"|", OpOr, 1, true},
		{"<<2", OpShiftL, 2, true},
		{">>", OpShiftR, 2, true},
		{"(", OpLParen, 1, true},
		{")", OpRParen, 1, true},
		{"<", 0, 0, false},
		{"<>", 0, 0, false},
		{"*", 0, 0, false},
	}
	for _, tt := range tests {
		op, width, ok := lexOperator([]byte(tt.in))
		if ok != tt.ok || (ok && (op != tt.op || width != tt.width)) {
			t.Fatalf("lexOperator(%q) = %v, %d, %v", tt.in, op, width, ok)
		}
	}
}

func TestPostfix(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"2 + 3 << 1", []string{"2", "3", "+", "1", "<<"}},
		{"(2 + 3) << 1", []string{"2", "3", "+", "1", "<<"}},
		{"2 + (3 << 1)", []string{"2", "3", "1", "<<", "+"}},
		{"10 - 3 - 2", []string{"10", "3", "-", "2", "-"}},
		{"1 | 2 ^ 3 & 4", []string{"1", "2", "3", "4", "&", "^", "|"}},
		{"0xFF+0b1", []string{"0xFF", "0b1", "+"}},
		{"((7))", []string{"7"}},
	}
	for _, tt := range tests {
		e, err := ParseString(tt.in, nil)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.in, err)
		}
		got := make([]string, len(e.Tokens))
		for i, tok := range e.Tokens {
			got[i] = tok.String()
		}
		if diff := pretty.Diff(got, tt.want); len(diff) != 0 {
			t.Fatalf("postfix of %q: %v", tt.in, diff)
		}
		if e.Postfix() != strings.Join(tt.want, " ") {
			t.Fatalf("Postfix() = %q", e.Postfix())
		}
	}
}

func TestTokenColumns(t *testing.T) {
	e, err := ParseString("0x1F + 2", nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []Token{
		NumberToken(NumberFromInt64(31, Hex), "0x1F", 1),
		NumberToken(NumberFromInt64(2, Dec), "2", 8),
		OperatorToken(OpSum, 6),
	}
	if len(e.Tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(e.Tokens), len(want))
	}
	for i, tok := range e.Tokens {
		w := want[i]
		if tok.Kind != w.Kind || tok.Lit != w.Lit || tok.Col != w.Col || tok.Op != w.Op ||
			tok.Num.Cmp(w.Num) != 0 || tok.Num.Base() != w.Num.Base() {
			t.Fatalf("token %d: %# v, want %# v", i, pretty.Formatter(tok), pretty.Formatter(w))
		}
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		in   string
		base NumberBase
		want string
	}{
		{"2 + 3 << 1", Dec, "10"},
		{"10 - 3 - 2", Dec, "5"},
		{"(2 + 3) << 1", Dec, "10"},
		{"2 + (3 << 1)", Dec, "8"},
		{"0xFF + 1", Dec, "256"},
		{"0b101 & 0b110", Dec, "4"},
		{"0o17 | 0b1", Dec, "15"},
		{"0xF0 ^ 0xFF", Dec, "15"},
		{"1 << 64", Dec, "18446744073709551616"},
		{"0x100 >> 4", Dec, "16"},
		{"1 - 2", Dec, "-1"},
		{"5 - 8 & 0xFF", Dec, "253"},
		{"(1 - 2) >> 1", Dec, "-1"},
		{"255 + 0", Hex, "FF"},
		{"0b1010 | 0", Bin, "1010"},
		{"4 + 4", Oct, "10"},
		{"1 + 2", Dec, "3"},
		{"1 >> 0x1000001", Dec, "0"},
		{"(0 - 1) >> 0x2000000", Dec, "-1"},
		{"(0 - 8) >> 0xFFFFFFFFFFFFFFFFFF", Dec, "-1"},
		{"0b1 0b1 +", Bin, "10"},
	}
	for _, tt := range tests {
		r, err := Calculate(tt.in, &Options{Eval: EvalOptions{OutputBase: tt.base}})
		if err != nil {
			t.Fatalf("calculate %q: %v", tt.in, err)
		}
		if got := r.Value.Text(tt.base, false); got != tt.want {
			t.Fatalf("%q = %s, want %s", tt.in, got, tt.want)
		}
		if r.Value.Base() != tt.base {
			t.Fatalf("%q result base %v, want %v", tt.in, r.Value.Base(), tt.base)
		}
		if r.Single || len(r.Steps) == 0 {
			t.Fatalf("%q: expected reduction steps", tt.in)
		}
	}
}

func TestEvaluateSteps(t *testing.T) {
	r, err := Calculate("0x10 + 1 - 2", &Options{Eval: EvalOptions{OutputBase: Bin}})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if len(r.Steps) != 2 {
		t.Fatalf("got %d steps, want 2", len(r.Steps))
	}

	first := r.Steps[0]
	if first.Op != OpSum || first.A.Base() != Hex || first.B.Base() != Dec {
		t.Fatalf("first step: %s", FormatStep(first, nil))
	}
	if first.Result.Base() != Bin {
		t.Fatalf("step result base %v, want BIN", first.Result.Base())
	}
	// The left operand of the second step is the first result, which keeps
	// the base of its own left operand.
	second := r.Steps[1]
	if second.A.Base() != Hex || second.A.Cmp(NumberFromInt64(17, Dec)) != 0 {
		t.Fatalf("second step: %s", FormatStep(second, nil))
	}
	if r.Value.Cmp(NumberFromInt64(15, Dec)) != 0 {
		t.Fatalf("value = %s, want 15", r.Value.Text(Dec, false))
	}
}

func TestSingleLiteral(t *testing.T) {
	r, err := Calculate("42", &Options{Eval: EvalOptions{OutputBase: Hex}})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if !r.Single || len(r.Steps) != 0 {
		t.Fatalf("expected single literal result, got %d steps", len(r.Steps))
	}
	if got := r.Value.String(); got != "2A" {
		t.Fatalf("value = %q, want 2A", got)
	}

	out, err := Format(r, nil)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if string(out) != "Result: 0x2A\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		in   string
		kind error
		col  int
		msg  string
	}{
		{"0b12", ErrLex, 4, "Invalid BIN number"},
		{"0o78", ErrLex, 4, "Invalid OCT number"},
		{"12a", ErrLex, 3, "Invalid DEC number"},
		{"0d5", ErrLex, 2, "Invalid DEC number"},
		{"0x", ErrLex, 2, "Invalid HEX number"},
		{"0b + 1", ErrLex, 2, "Invalid BIN number"},
		{"1 $ 2", ErrLex, 3, "Invalid operator"},
		{"1 < 2", ErrLex, 3, "Invalid operator"},
		{"1 <> 2", ErrLex, 3, "Invalid operator"},
		{"0b1g", ErrLex, 4, "Invalid operator"},
		{"1 + x", ErrLex, 5, "Invalid operator"},
		{"1\t+ 2", ErrLex, 2, "Invalid operator"},
		{"(1 + 2", ErrParse, 1, "mismatched parenthesis"},
		{"1 + 2)", ErrParse, 6, "mismatched parenthesis"},
		{"((1)", ErrParse, 1, "mismatched parenthesis"},
		{")(", ErrParse, 1, "mismatched parenthesis"},
	}
	for _, tt := range tests {
		_, err := ParseString(tt.in, nil)
		if !errors.Is(err, tt.kind) {
			t.Fatalf("%q: expected %v, got %v", tt.in, tt.kind, err)
		}
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Fatalf("%q: expected *SyntaxError, got %T", tt.in, err)
		}
		if se.Col != tt.col || se.Msg != tt.msg {
			t.Fatalf("%q: got col %d %q, want col %d %q", tt.in, se.Col, se.Msg, tt.col, tt.msg)
		}
		if se.Source != tt.in {
			t.Fatalf("%q: source %q", tt.in, se.Source)
		}
	}
}

func TestSyntaxErrorPointer(t *testing.T) {
	_, err := ParseString("0b12", nil)
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	want := "0b12\n   ^\n   Error here"
	if got := se.Pointer(); got != want {
		t.Fatalf("pointer = %q, want %q", got, want)
	}
	if se.Error() != "lex error at column 4: Invalid BIN number" {
		t.Fatalf("error = %q", se.Error())
	}
}

func TestNBSP(t *testing.T) {
	in := "1\u00a0+\u00a02"
	r, err := Calculate(in, nil)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if r.Value.String() != "3" {
		t.Fatalf("value = %s, want 3", r.Value)
	}

	_, err = ParseString(in, &ParseOptions{DisableNBSP: true})
	var se *SyntaxError
	if !errors.As(err, &se) || se.Col != 2 || !errors.Is(err, ErrLex) {
		t.Fatalf("expected lex error at column 2, got %v", err)
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		in    string
		cause error
	}{
		{"+ 1", nil},
		{"1 +", nil},
		{"1 2", nil},
		{"", nil},
		{"   ", nil},
		{"()", nil},
		{"1 << 0x1000001", ErrShiftRange},
	}
	for _, tt := range tests {
		_, err := Calculate(tt.in, nil)
		if !errors.Is(err, ErrEval) {
			t.Fatalf("%q: expected ErrEval, got %v", tt.in, err)
		}
		var ee *EvalError
		if !errors.As(err, &ee) {
			t.Fatalf("%q: expected *EvalError, got %T", tt.in, err)
		}
		if tt.cause != nil {
			if !errors.Is(err, tt.cause) {
				t.Fatalf("%q: expected %v, got %v", tt.in, tt.cause, err)
			}
			if ee.Step == nil || ee.Step.Op != OpShiftL {
				t.Fatalf("%q: failed step not recorded", tt.in)
			}
		}
	}
}

func TestFormat(t *testing.T) {
	r, err := Calculate("0xFF + 1", &Options{Eval: EvalOptions{OutputBase: Hex}})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	out, err := Format(r, nil)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	want := "Executing: 0xFF + 1\n\n" +
		"0b11111111 + 0b1 = 0b100000000 (0xFF + 0x1 = 0x100)\n\n" +
		"Result: 0x100\n"
	if string(out) != want {
		t.Fatalf("format mismatch:\n%s\nwant:\n%s", out, want)
	}

	out, err = Format(r, &FormatOptions{DisableSteps: true, DisablePrefix: true})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if string(out) != "Result: 100\n" {
		t.Fatalf("quiet format = %q", out)
	}
}

func TestFormatSteps(t *testing.T) {
	r, err := Calculate("2 + 3 << 1", nil)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	got := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		got[i] = FormatStep(s, nil)
	}
	want := []string{
		"0b10 + 0b11 = 0b101 (2 + 3 = 5)",
		"0b101 << 0b1 = 0b1010 (5 << 1 = 10)",
	}
	if diff := pretty.Diff(got, want); len(diff) != 0 {
		t.Fatalf("steps: %v", diff)
	}
}

func TestDecode(t *testing.T) {
	e, err := Decode(strings.NewReader("1 + 2\r\n"), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if e.Source != "1 + 2" {
		t.Fatalf("source = %q", e.Source)
	}
	r, err := Evaluate(e, nil)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if r.Value.String() != "3" {
		t.Fatalf("value = %s", r.Value)
	}
}

func TestValidate(t *testing.T) {
	e, err := ParseString("010 + 0x1 << 0x1000001", nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	issues := Validate(e, nil)
	var codes []string
	for _, i := range issues {
		codes = append(codes, i.Code)
	}
	want := []string{"DEVCALC1001", "DEVCALC1003", "DEVCALC2001"}
	if diff := pretty.Diff(codes, want); len(diff) != 0 {
		t.Fatalf("issues: %v", diff)
	}
	if !HasErrors(issues) {
		t.Fatalf("expected error-level issue")
	}
	if issues[0].Col != 1 || issues[1].Col != 7 {
		t.Fatalf("unexpected columns: %v", issues)
	}
}

func TestLintCatalog(t *testing.T) {
	c := LintCatalog()
	tests := []struct {
		code  lint.Code
		pub   string
		sev   lint.Severity
		level IssueLevel
	}{
		{CodeLeadingZero, "DEVCALC1001", lint.SeverityWarning, IssueWarning},
		{CodeWideLiteral, "DEVCALC1002", lint.SeverityWarning, IssueWarning},
		{CodeMixedBases, "DEVCALC1003", lint.SeverityWarning, IssueWarning},
		{CodeShiftRange, "DEVCALC2001", lint.SeverityError, IssueError},
	}
	if n := len(c.CodeSpecs()); n != len(tests) {
		t.Fatalf("catalog has %d codes, want %d", n, len(tests))
	}
	for _, tt := range tests {
		spec, ok := c.ByCode(tt.code)
		if !ok {
			t.Fatalf("code %d missing from catalog", tt.code)
		}
		if spec.Severity != tt.sev {
			t.Fatalf("code %d severity = %s, want %s", tt.code, spec.Severity, tt.sev)
		}
		if got := c.PublicCode(tt.code); got != tt.pub {
			t.Fatalf("public code = %s, want %s", got, tt.pub)
		}
		if _, err := c.RuleID(tt.code); err != nil {
			t.Fatalf("rule id %d: %v", tt.code, err)
		}
		if got := newIssue(tt.code, Token{Lit: "1", Col: 3}, "msg"); got.Level != tt.level || got.Code != tt.pub {
			t.Fatalf("issue = %+v", got)
		}
	}
}

func TestValidateTable(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opt  *ValidateOptions
		want int
	}{
		{name: "clean", in: "1 + 2 << 3", want: 0},
		{name: "mixed disabled", in: "1 + 0x2", opt: &ValidateOptions{DisableMixedBaseCheck: true}, want: 0},
		{name: "leading zero disabled", in: "007", opt: &ValidateOptions{DisableLeadingZeroCheck: true}, want: 0},
		{name: "zero is fine", in: "0 + 1", want: 0},
		{name: "wide literal", in: "0x100000000000000000", want: 1},
		{name: "wide literal custom", in: "0x1FF", opt: &ValidateOptions{MaxLiteralBits: 8}, want: 1},
		{name: "shift at limit", in: "0x1 << 0x1000000", want: 0},
		{name: "shift at limit mixed", in: "1 << 0x1000000", opt: &ValidateOptions{DisableMixedBaseCheck: true}, want: 0},
		{name: "shift over limit", in: "0x1 << 0x1000001", want: 1},
		{name: "right shift over limit", in: "0x1 >> 0x1000001", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := ParseString(tt.in, nil)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			issues := Validate(e, tt.opt)
			if len(issues) != tt.want {
				t.Fatalf("got %d issues, want %d: %v", len(issues), tt.want, issues)
			}
		})
	}
}
