package devcalc

import (
	"fmt"

	"github.com/woozymasta/lintkit/lint"
)

// IssueLevel represents severity of validation issue.
type IssueLevel string

const (
	// IssueError indicates an expression that will fail to evaluate.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a suspicious but valid expression.
	IssueWarning IssueLevel = "warning"
)

// Lint codes reported by Validate. Exported as DEVCALC<code>.
const (
	CodeLeadingZero lint.Code = 1001
	CodeWideLiteral lint.Code = 1002
	CodeMixedBases  lint.Code = 1003
	CodeShiftRange  lint.Code = 2001
)

const (
	stageLiteral lint.Stage = "literal"
	stageEval    lint.Stage = "eval"
)

var lintCatalog = mustCodeCatalog(lint.CodeCatalogConfig{
	Module:     "devcalc",
	CodePrefix: "DEVCALC",
	ModuleName: "Developer calculator",
	ScopeDescriptions: map[lint.Stage]string{
		stageLiteral: "Suspicious number literals.",
		stageEval:    "Expressions that fail to evaluate.",
	},
}, []lint.CodeSpec{
	lint.WarningCodeSpec(CodeLeadingZero, stageLiteral, "leading zero"),
	lint.WarningCodeSpec(CodeWideLiteral, stageLiteral, "wide literal"),
	lint.WarningCodeSpec(CodeMixedBases, stageLiteral, "mixed bases"),
	lint.ErrorCodeSpec(CodeShiftRange, stageEval, "shift range"),
})

// LintCatalog returns the catalog of codes Validate can report.
func LintCatalog() lint.CodeCatalog {
	return lintCatalog
}

func mustCodeCatalog(cfg lint.CodeCatalogConfig, specs []lint.CodeSpec) lint.CodeCatalog {
	c, err := lint.NewCodeCatalog(cfg, specs)
	if err != nil {
		panic("devcalc: invalid lint catalog: " + err.Error())
	}

	return c
}

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Public lint code, e.g. DEVCALC1001
	Message string     `json:"message" yaml:"message"`               // Issue message
	Lit     string     `json:"lit,omitempty" yaml:"lit,omitempty"`   // Offending literal
	Col     int        `json:"col,omitempty" yaml:"col,omitempty"`   // 1-based column
}

// String formats the issue as "col N: level: message (lit)".
func (i Issue) String() string {
	s := fmt.Sprintf("col %d: %s: %s", i.Col, i.Level, i.Message)
	if i.Lit != "" {
		s += " (" + i.Lit + ")"
	}

	return s
}

// Validate lints a parsed expression and returns issues. It never evaluates.
func Validate(e *Expression, opt *ValidateOptions) []Issue {
	if e == nil {
		return nil
	}

	vopt := opt.normalize()
	var out []Issue

	var firstBase NumberBase
	mixedReported := false
	for i, tok := range e.Tokens {
		if tok.IsOperator() {
			if i > 0 && e.Tokens[i-1].IsNumber() {
				out = append(out, validateShift(tok.Op, e.Tokens[i-1])...)
			}
			continue
		}

		base := tok.Num.Base()
		if !vopt.DisableLeadingZeroCheck && base == Dec && len(tok.Lit) > 1 && tok.Lit[0] == '0' {
			out = append(out, newIssue(CodeLeadingZero, tok,
				"decimal literal with leading zero, use 0o for octal"))
		}

		if tok.Num.BitLen() > vopt.MaxLiteralBits {
			out = append(out, newIssue(CodeWideLiteral, tok,
				fmt.Sprintf("literal is wider than %d bits", vopt.MaxLiteralBits)))
		}

		if firstBase == 0 {
			firstBase = base
		} else if !vopt.DisableMixedBaseCheck && !mixedReported && base != firstBase {
			out = append(out, newIssue(CodeMixedBases, tok,
				fmt.Sprintf("%s literal mixed with %s literals", base, firstBase)))
			mixedReported = true
		}
	}

	return out
}

// HasErrors reports whether any issue has error level.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Level == IssueError {
			return true
		}
	}

	return false
}

// validateShift checks a shift whose right operand is the literal rhs. Only
// left shifts are bounded; a literal count is never negative.
func validateShift(op Operator, rhs Token) []Issue {
	if op != OpShiftL {
		return nil
	}
	if _, err := rhs.Num.shiftCount(); err != nil {
		return []Issue{newIssue(CodeShiftRange, rhs,
			fmt.Sprintf("shift count exceeds %d", MaxShift))}
	}

	return nil
}

// newIssue builds an issue for tok with level and public code from the catalog.
func newIssue(code lint.Code, tok Token, msg string) Issue {
	level := IssueWarning
	spec, ok := lintCatalog.ByCode(code)
	if ok && spec.Severity == lint.SeverityError {
		level = IssueError
	}

	return Issue{
		Level:   level,
		Code:    lintCatalog.PublicCode(code),
		Message: msg,
		Lit:     tok.Lit,
		Col:     tok.Col,
	}
}
