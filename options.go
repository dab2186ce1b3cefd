package devcalc

// ParseOptions controls lexing and parsing.
type ParseOptions struct {
	// DisableNBSP stops treating UTF-8 no-break spaces (U+00A0) as whitespace.
	DisableNBSP bool `json:"disableNbsp,omitempty" yaml:"disable_nbsp,omitempty"`
}

// EvalOptions controls evaluation.
type EvalOptions struct {
	// OutputBase is the base results are displayed in (default is decimal).
	OutputBase NumberBase `json:"outputBase,omitempty" yaml:"output_base,omitempty"`
}

// FormatOptions controls the report writer.
type FormatOptions struct {
	// DisableSteps prints only the result line.
	DisableSteps bool `json:"disableSteps,omitempty" yaml:"disable_steps,omitempty"`
	// DisablePrefix renders values without 0b/0o/0x prefixes.
	DisablePrefix bool `json:"disablePrefix,omitempty" yaml:"disable_prefix,omitempty"`
	// DisableHeader omits the "Executing:" line.
	DisableHeader bool `json:"disableHeader,omitempty" yaml:"disable_header,omitempty"`
}

// ValidateOptions controls linting rules.
type ValidateOptions struct {
	// MaxLiteralBits is the widest literal accepted without a warning
	// (default is 64).
	MaxLiteralBits int `json:"maxLiteralBits,omitempty" yaml:"max_literal_bits,omitempty"`
	// DisableMixedBaseCheck disables the warning for literals written in
	// different bases within one expression.
	DisableMixedBaseCheck bool `json:"disableMixedBaseCheck,omitempty" yaml:"disable_mixed_base_check,omitempty"`
	// DisableLeadingZeroCheck disables the warning for decimal literals with
	// leading zeros.
	DisableLeadingZeroCheck bool `json:"disableLeadingZeroCheck,omitempty" yaml:"disable_leading_zero_check,omitempty"`
}

// Options bundles parse and eval options for Calculate.
type Options struct {
	Parse ParseOptions `json:"parse,omitempty" yaml:"parse,omitempty"`
	Eval  EvalOptions  `json:"eval,omitempty" yaml:"eval,omitempty"`
}

// normalize normalizes the ParseOptions.
func (o *ParseOptions) normalize() ParseOptions {
	if o == nil {
		return ParseOptions{}
	}

	return *o
}

// normalize normalizes the EvalOptions.
func (o *EvalOptions) normalize() EvalOptions {
	if o == nil {
		return EvalOptions{OutputBase: Dec}
	}

	out := *o
	if !out.OutputBase.Valid() {
		out.OutputBase = Dec
	}

	return out
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{}
	}

	return *o
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{MaxLiteralBits: 64}
	}

	out := *o
	if out.MaxLiteralBits <= 0 {
		out.MaxLiteralBits = 64
	}

	return out
}
