package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// runREPL reads expressions line by line until :quit, EOF or Ctrl-C on an
// empty line.
func runREPL(s *session) int {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.cfg.Prompt,
		HistoryFile:     s.cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          s.stdout,
		Stderr:          s.stderr,
	})
	if err != nil {
		fmt.Fprintf(s.stderr, "devcalc: %v\n", err)
		return exitError
	}
	defer func() { _ = rl.Close() }()

	s.stdout, s.stderr = rl.Stdout(), rl.Stderr()
	fmt.Fprintf(s.stdout, "%s %s, :help for commands\n", appName, version)
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return exitOK
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return exitOK
		}
		if err != nil {
			fmt.Fprintf(s.stderr, "devcalc: %v\n", err)
			return exitError
		}

		if !s.handle(line) {
			return exitOK
		}
	}
}
