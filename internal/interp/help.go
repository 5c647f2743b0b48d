package interp

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

// displayWidth approximates the terminal column width of s, counting
// east-asian wide/fullwidth runes as two columns. Used to column-align
// the `help` builtin's function listing — the teacher's scm/declare.go
// Help() prints an unaligned list; JK upgrades it with the corpus's own
// golang.org/x/text dependency instead of hand-rolled ASCII padding
// (SPEC_FULL.md §B).
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}

func pad(s string, to int) string {
	w := displayWidth(s)
	if w >= to {
		return s
	}
	return s + strings.Repeat(" ", to-w)
}

// registerHelp installs `help`, the teacher's scm/declare.go Help
// reimagined as a Lisp builtin instead of a Go-level debug function.
func registerHelp(env *Env) {
	Declare(env, &Builtin{
		Name: "help", Desc: "lists every built-in function, or describes one by name", MinParameter: 0, MaxParameter: 1,
		Params: []BuiltinParam{{"name", "string", "optional function name"}},
		Fn: func(args []Value) (Value, error) {
			if len(args) == 0 {
				nameWidth := 0
				for _, name := range order {
					if w := displayWidth(name); w > nameWidth {
						nameWidth = w
					}
				}
				var b strings.Builder
				b.WriteString("Available jk functions:\n\n")
				for _, name := range order {
					def := registry[name]
					firstLine := strings.SplitN(def.Desc, "\n", 2)[0]
					b.WriteString("  " + pad(name, nameWidth+2) + firstLine + "\n")
				}
				return NewString(b.String()), nil
			}
			name := args[0].S
			def, ok := registry[name]
			if !ok {
				return Value{}, fmt.Errorf("help: function not found: %s", name)
			}
			var b strings.Builder
			fmt.Fprintf(&b, "Help for: %s\n===\n\n%s\n\n", def.Name, def.Desc)
			fmt.Fprintf(&b, "Allowed number of parameters: %d-%d\n\n", def.MinParameter, def.MaxParameter)
			for _, p := range def.Params {
				b.WriteString(" - " + p.Name + " (" + p.Type + "): " + p.Desc + "\n")
			}
			return NewString(b.String()), nil
		},
	})
}
