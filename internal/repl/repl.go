// Package repl implements the interactive shell of spec.md §6.1:
// prompt "user> ", read one line, evaluate, print result, loop forever;
// EOF terminates. Grounded directly on the teacher's scm/prompt.go Repl.
package repl

import (
	"fmt"
	"io"

	"jaratkaru/internal/interp"

	"github.com/chzyer/readline"
	"github.com/dc0d/onexit"
)

const (
	newPrompt  = "user> "
	contPrompt = "    > "
)

// Run starts the REPL against env, blocking until EOF (^D) or ^C on an
// empty line. historyFile is passed straight to readline, matching the
// teacher's ".memcp-history.tmp" convention.
func Run(env *interp.Env, historyFile string) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	onexit.Register(func() { l.Close() })
	defer l.Close()
	l.CaptureExitSignal()

	oldline := ""
	for {
		line, err := l.Readline()
		line = oldline + line
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			oldline = ""
			l.SetPrompt(newPrompt)
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		if line == "" {
			continue
		}

		result, needsMore := evalLine(line, env)
		if needsMore {
			oldline = line + "\n"
			l.SetPrompt(contPrompt)
			continue
		}
		oldline = ""
		l.SetPrompt(newPrompt)
		if result != "" {
			fmt.Println(result)
		}
	}
	return nil
}

// evalLine reads and evaluates one REPL line. needsMore is true when the
// line contains an unbalanced '(' — the caller should keep buffering
// input across subsequent lines before re-attempting the read, mirroring
// the teacher's "expecting matching )" continuation behaviour.
func evalLine(line string, env *interp.Env) (printed string, needsMore bool) {
	var forest []interp.Value
	readErr := interp.Guard(func() {
		tokens, err := interp.Lex([]string{line})
		if err != nil {
			panic(err)
		}
		forest = interp.Read(tokens)
	})
	if readErr != nil {
		if readErr.Kind == interp.ErrParse && containsUnbalancedOpen(readErr) {
			return "", true
		}
		return readErr.Render(), false
	}
	if len(forest) == 0 {
		return "", false
	}
	// Only the last top-level form's result is printed per REPL line
	// (spec.md §6.3).
	last, firstErr := interp.EvalTopLevel(forest, env)
	if firstErr != nil {
		return firstErr.Render(), false
	}
	return interp.Print(last), false
}

func containsUnbalancedOpen(e *interp.InterpError) bool {
	return e.Message == "unbalanced open paren"
}
