package devcalc

import (
	"bufio"
	"bytes"
	"io"
)

// Encode writes the step-by-step report of a Result to w.
func Encode(w io.Writer, r *Result, opt *FormatOptions) error {
	fopt := opt.normalize()
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, prefix: !fopt.DisablePrefix}
	if err := wr.writeResult(r, fopt); err != nil {
		return err
	}

	return bw.Flush()
}

// Format renders the report of a Result to bytes.
func Format(r *Result, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, r, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// FormatStep renders one step as
// "<a> <op> <b> = <r> (<a> <op> <b> = <r>)", binary first, then the base of
// the step result.
func FormatStep(s Step, opt *FormatOptions) string {
	fopt := opt.normalize()
	var buf bytes.Buffer
	wr := &writer{w: &buf, prefix: !fopt.DisablePrefix}
	_ = wr.writeStep(s)
	return buf.String()
}

// writer writes a Result report.
type writer struct {
	w      io.Writer // Writer to write to
	prefix bool      // Render 0b/0o/0x prefixes
}

// writeResult writes the header, the steps and the result line.
func (w *writer) writeResult(r *Result, opt FormatOptions) error {
	if r == nil {
		return nil
	}

	if !r.Single && !opt.DisableSteps {
		if !opt.DisableHeader {
			if err := w.writeLine("Executing: " + r.Source + "\n"); err != nil {
				return err
			}
		}
		for _, s := range r.Steps {
			if err := w.writeStep(s); err != nil {
				return err
			}
			if err := w.writeString("\n"); err != nil {
				return err
			}
		}
		if err := w.writeString("\n"); err != nil {
			return err
		}
	}

	return w.writeLine("Result: " + r.Value.Text(r.Value.Base(), w.prefix))
}

// writeStep writes a single reduction step without a line break.
func (w *writer) writeStep(s Step) error {
	out := s.Result.Base()
	line := w.triple(s, Bin) + " (" + w.triple(s, out) + ")"
	return w.writeString(line)
}

// triple renders "a op b = r" in base.
func (w *writer) triple(s Step, base NumberBase) string {
	return s.A.Text(base, w.prefix) + " " + s.Op.String() + " " +
		s.B.Text(base, w.prefix) + " = " + s.Result.Text(base, w.prefix)
}

// writeLine writes s followed by a line break.
func (w *writer) writeLine(s string) error {
	return w.writeString(s + "\n")
}

// writeString writes a string to the writer.
func (w *writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}
