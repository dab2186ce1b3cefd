package devcalc

import (
	"strings"
	"testing"
)

func benchExpression() string {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		if i > 0 {
			b.WriteString(" ^ ")
		}
		b.WriteString("(0xDEADBEEF + 0b1011 << 3 & 0o777 | 12345)")
	}

	return b.String()
}

func BenchmarkParse(b *testing.B) {
	src := []byte(benchExpression())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(src, nil); err != nil {
			b.Fatalf("parse: %v", err)
		}
	}
}

func BenchmarkCalculate(b *testing.B) {
	src := benchExpression()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := Calculate(src, nil)
		if err != nil {
			b.Fatalf("calculate: %v", err)
		}
		if _, err := Format(r, nil); err != nil {
			b.Fatalf("format: %v", err)
		}
	}
}
