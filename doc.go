/*
Package devcalc implements a step-by-step developer's calculator.

Expressions are written in infix notation over arbitrary-precision integers.
Literals may be binary (0b101), octal (0o17), decimal (42) or hexadecimal
(0xFF, case-insensitive). Supported operators, from the tightest binding:

	+ -      addition, subtraction
	<< >>    shifts
	&        bitwise and
	^        bitwise xor
	|        bitwise or

All operators are left-associative and parentheses group as usual.
Subtraction is signed: 1 - 2 is -1.

The pipeline is Parse (shunting-yard, infix to postfix), Evaluate (postfix
reduction recording every step) and Format (report rendering).

Reader example:

	e, err := devcalc.ParseString("(0xFF + 1) << 2", nil)
	if err != nil {
		var se *devcalc.SyntaxError
		if errors.As(err, &se) {
			fmt.Println(se.Pointer())
		}
		// handle error
	}

Evaluator example:

	r, err := devcalc.Evaluate(e, &devcalc.EvalOptions{OutputBase: devcalc.Hex})
	if err != nil {
		// handle error
	}
	fmt.Println(r.Value.Text(devcalc.Hex, true)) // 0x400

Writer example:

	out, err := devcalc.Format(r, nil)
	if err != nil {
		// handle error
	}

Validator example:

	issues := devcalc.Validate(e, nil)
	if len(issues) != 0 {
		// handle validation issues
	}
*/
package devcalc
