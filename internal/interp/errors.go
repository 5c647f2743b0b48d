package interp

import (
	"fmt"
	"strings"
)

// ErrKind enumerates the error kinds of spec.md §7.
type ErrKind string

const (
	ErrParse         ErrKind = "parse-error"
	ErrUnboundSymbol ErrKind = "unbound-symbol"
	ErrMalformedLet  ErrKind = "malformed-let"
	ErrMalformedExpr ErrKind = "malformed-expression"
	ErrTypeNotImpl   ErrKind = "type-not-implemented"
	ErrIncorrectArg  ErrKind = "incorrect-argument"
)

// InterpError is what every JK failure unwinds as. It is panicked, not
// returned, matching the teacher's scm/parser.go and scm/scm.go, which
// panic with a formatted string rather than threading an error return
// through every recursive Eval call.
type InterpError struct {
	Kind    ErrKind
	Message string
	Tok     *Token // nil when the erring node was synthesised at runtime
}

func (e *InterpError) Error() string {
	if e.Tok == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Tok.String())
}

// Render produces the full diagnostic: the message followed by the
// offending source line with a caret under the bad column. Location is
// suppressed when the node was synthesised at runtime (nil Tok), per
// spec.md §7.
func (e *InterpError) Render() string {
	var b strings.Builder
	b.WriteString(e.Error())
	if e.Tok != nil && e.Tok.Txt != "" {
		b.WriteByte('\n')
		b.WriteString(e.Tok.Txt)
		b.WriteByte('\n')
		col := e.Tok.Pos - 1
		if col < 0 {
			col = 0
		}
		b.WriteString(strings.Repeat(" ", col))
		b.WriteByte('^')
	}
	return b.String()
}

func throw(kind ErrKind, tok *Token, format string, a ...any) {
	panic(&InterpError{Kind: kind, Message: fmt.Sprintf(format, a...), Tok: tok})
}
