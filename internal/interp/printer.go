package interp

import (
	"strconv"
	"strings"
)

// Print renders a Value for REPL output (spec.md §6.3): strings get
// their quotes reinstated, other atoms use host-default textual form,
// symbols print their bareword, and lists recurse with single-space
// separators.
func Print(v Value) string {
	switch v.Kind {
	case KindAtom:
		switch v.AtomKind {
		case AtomNil:
			return "nil"
		case AtomBool:
			if v.B {
				return "true"
			}
			return "false"
		case AtomInt:
			return strconv.FormatInt(v.I, 10)
		case AtomFloat:
			return strconv.FormatFloat(v.F, 'g', -1, 64)
		case AtomString:
			return `"` + v.S + `"`
		}
		return "nil"
	case KindSymbol:
		return v.S
	case KindList:
		parts := make([]string, len(v.List))
		for i, item := range v.List {
			parts[i] = Print(item)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case KindProc:
		if v.IsMacro {
			return "[macro]"
		}
		return "[procedure]"
	case KindBuiltin:
		return "[native " + v.Name + "]"
	case KindOpaque:
		return "[" + v.OpaqueTag + "]"
	}
	return ""
}
