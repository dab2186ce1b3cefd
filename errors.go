package devcalc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLex indicates a lexer failure (invalid digit or operator).
	ErrLex = errors.New("lex error")

	// ErrParse indicates a structural failure (mismatched parenthesis).
	ErrParse = errors.New("parse error")

	// ErrEval indicates an evaluation failure.
	ErrEval = errors.New("eval error")

	// ErrShiftRange indicates a negative shift count or a left shift beyond MaxShift.
	ErrShiftRange = errors.New("shift count out of range")

	// ErrNotApplicable indicates an attempt to apply a structural operator.
	ErrNotApplicable = errors.New("operator is not applicable")
)

// SyntaxError describes a lexical or structural error found while scanning
// an expression.
type SyntaxError struct {
	Kind   error  // ErrLex or ErrParse
	Msg    string // Human readable message
	Source string // Original input
	Col    int    // 1-based byte column, 0 when unknown
}

func (e *SyntaxError) Error() string {
	if e.Col <= 0 {
		return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
	}

	return fmt.Sprintf("%v at column %d: %s", e.Kind, e.Col, e.Msg)
}

// Unwrap returns the error kind.
func (e *SyntaxError) Unwrap() error {
	return e.Kind
}

// Pointer renders the source line followed by a caret under the error column.
func (e *SyntaxError) Pointer() string {
	if e.Col <= 0 {
		return e.Source
	}

	pad := strings.Repeat(" ", e.Col-1)
	return e.Source + "\n" + pad + "^\n" + pad + "Error here"
}

// EvalError describes a failure while reducing a postfix expression.
type EvalError struct {
	Err  error // Underlying cause, if any
	Msg  string // Failure description
	Step *Step // Operation that failed, nil for stack errors
}

func (e *EvalError) Error() string {
	msg := ErrEval.Error() + ": " + e.Msg
	if e.Step != nil {
		msg += ": " + e.Step.A.Text(Bin, true) + " (" + e.Step.A.Text(e.Step.A.Base(), true) + ") " +
			e.Step.Op.String() + " " + e.Step.B.Text(Bin, true) + " (" + e.Step.B.Text(e.Step.B.Base(), true) + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns ErrEval and the underlying cause.
func (e *EvalError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrEval}
	}

	return []error{ErrEval, e.Err}
}
