package devcalc

// Step is one operator application recorded during evaluation.
type Step struct {
	A      Number   // Left operand
	B      Number   // Right operand
	Result Number   // A Op B
	Op     Operator // Applied operator
}

// Result is the outcome of evaluating an expression.
type Result struct {
	Source string // Original input
	Steps  []Step // Reduction trace in evaluation order
	Value  Number // Final value in the output base
	Single bool   // Expression was a lone literal, Steps is empty
}

// Evaluate reduces a postfix expression. The final value and every step
// result are displayed in the output base; operands keep the base they were
// written or computed in.
func Evaluate(e *Expression, opt *EvalOptions) (*Result, error) {
	eopt := opt.normalize()
	if e == nil || len(e.Tokens) == 0 {
		return nil, &EvalError{Msg: "empty expression"}
	}

	if n, ok := e.Single(); ok {
		return &Result{Source: e.Source, Value: n.WithBase(eopt.OutputBase), Single: true}, nil
	}

	steps, err := reduce(e.Tokens)
	if err != nil {
		return nil, err
	}

	for i := range steps {
		steps[i].Result = steps[i].Result.WithBase(eopt.OutputBase)
	}

	return &Result{
		Source: e.Source,
		Steps:  steps,
		Value:  steps[len(steps)-1].Result,
	}, nil
}

// Calculate parses and evaluates src in one call.
func Calculate(src string, opt *Options) (*Result, error) {
	var popt *ParseOptions
	var eopt *EvalOptions
	if opt != nil {
		popt, eopt = &opt.Parse, &opt.Eval
	}

	e, err := ParseString(src, popt)
	if err != nil {
		return nil, err
	}

	return Evaluate(e, eopt)
}

// reduce runs the value stack over a postfix sequence.
func reduce(tokens []Token) ([]Step, error) {
	stack := make([]Number, 0, len(tokens))
	var steps []Step

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNumber:
			stack = append(stack, tok.Num)
		case TokenOperator:
			if len(stack) < 2 {
				return nil, &EvalError{Msg: "malformed expression"}
			}
			a, b := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]

			r, err := tok.Op.Apply(a, b)
			if err != nil {
				return nil, &EvalError{Err: err, Msg: "cannot evaluate", Step: &Step{A: a, Op: tok.Op, B: b}}
			}
			stack = append(stack, r)
			steps = append(steps, Step{A: a, Op: tok.Op, B: b, Result: r})
		}
	}

	// Operands without an operator joining them, e.g. "1 2".
	if len(stack) != 1 || len(steps) == 0 {
		return nil, &EvalError{Msg: "malformed expression"}
	}

	return steps, nil
}
