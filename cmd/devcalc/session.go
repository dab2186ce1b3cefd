package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/woozymasta/devcalc"
	"github.com/woozymasta/devcalc/internal/config"
)

// session evaluates expressions and prints reports or diagnostics.
type session struct {
	cfg    config.Config
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
}

func newSession(cfg config.Config, stdout, stderr io.Writer, logger *log.Logger) *session {
	return &session{cfg: cfg, stdout: stdout, stderr: stderr, logger: logger}
}

// eval parses and evaluates src.
func (s *session) eval(src string) error {
	e, err := devcalc.ParseString(src, s.cfg.ParseOptions())
	return s.report(e, err)
}

// report evaluates a parsed expression and prints the result. Diagnostics
// go to stderr and nothing reaches stdout when any stage fails.
func (s *session) report(e *devcalc.Expression, err error) error {
	if err != nil {
		s.diagnose(err)
		return err
	}
	s.logger.Printf("postfix: %s", e.Postfix())

	if s.cfg.Lint {
		for _, issue := range devcalc.Validate(e, nil) {
			fmt.Fprintf(s.stderr, "%s %s\n", issue.Code, issue)
		}
	}

	r, err := devcalc.Evaluate(e, s.cfg.EvalOptions())
	if err != nil {
		s.diagnose(err)
		return err
	}
	s.logger.Printf("%d steps", len(r.Steps))

	out, err := devcalc.Format(r, s.cfg.FormatOptions())
	if err != nil {
		return err
	}
	_, err = s.stdout.Write(out)
	return err
}

// diagnose prints an error with a caret pointer when a column is known.
func (s *session) diagnose(err error) {
	var se *devcalc.SyntaxError
	if errors.As(err, &se) {
		if se.Col > 0 {
			fmt.Fprintf(s.stderr, "Error parsing in column %d: %s\n%s\n", se.Col, se.Msg, se.Pointer())
			return
		}
		fmt.Fprintf(s.stderr, "Error %s\n", se.Msg)
		return
	}

	var ee *devcalc.EvalError
	if errors.As(err, &ee) {
		fmt.Fprintf(s.stderr, "Error evaluating expression: %s\n", strings.TrimPrefix(ee.Error(), devcalc.ErrEval.Error()+": "))
		return
	}

	fmt.Fprintf(s.stderr, "Error: %v\n", err)
}

const replHelp = `Enter an expression to evaluate it. Commands:
  :base bin|oct|dec|hex   set the output base
  :steps on|off           show or hide reduction steps
  :help                   show this help
  :quit, :q               leave the session
`

// handle processes one REPL line and reports whether the session goes on.
func (s *session) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	if !strings.HasPrefix(line, ":") {
		_ = s.eval(line)
		return true
	}

	cmd, arg, _ := strings.Cut(line[1:], " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "q", "quit":
		return false
	case "help":
		fmt.Fprint(s.stdout, replHelp)
	case "base":
		if arg == "" {
			fmt.Fprintf(s.stdout, "base %s\n", s.cfg.Base.Name())
			break
		}
		b, err := devcalc.ParseNumberBase(arg)
		if err != nil {
			fmt.Fprintf(s.stderr, "Error: %v\n", err)
			break
		}
		s.cfg.Base = b
		s.logger.Printf("output base %s", b)
	case "steps":
		switch arg {
		case "on":
			on := true
			s.cfg.Steps = &on
		case "off":
			off := false
			s.cfg.Steps = &off
		default:
			fmt.Fprintln(s.stderr, "Error: want :steps on|off")
		}
	default:
		fmt.Fprintf(s.stderr, "Error: unknown command %q, try :help\n", ":"+cmd)
	}

	return true
}
