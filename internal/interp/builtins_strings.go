package interp

import (
	"bytes"
	"fmt"
	"strings"
)

// stringOf renders v the way `concat` expects a "stringable" argument
// to render: strings pass through verbatim, every
// other value falls back to Print (spec.md §6.3), matching the teacher's
// scm/strings.go `String(a[0])` coercion.
func stringOf(v Value) string {
	if v.Kind == KindAtom && v.AtomKind == AtomString {
		return v.S
	}
	return Print(v)
}

func requireString(v Value, who string) (string, error) {
	if v.Kind != KindAtom || v.AtomKind != AtomString {
		return "", fmt.Errorf("%s: expected a string, got %s", who, Print(v))
	}
	return v.S, nil
}

// registerStrings installs string builtins grounded on the teacher's
// scm/strings.go init_strings: `concat`, `strlen`, `str-upper`,
// `str-lower`, `split` (SPEC_FULL.md §C.7).
func registerStrings(env *Env) {
	Declare(env, &Builtin{
		Name: "concat", Desc: "concatenates stringable values and returns a string", MinParameter: 0, MaxParameter: -1,
		Params: []BuiltinParam{{"vals", "any", "values to concatenate"}},
		Fn: func(args []Value) (Value, error) {
			var b bytes.Buffer
			for _, a := range args {
				b.WriteString(stringOf(a))
			}
			return NewString(b.String()), nil
		},
	})
	Declare(env, &Builtin{
		Name: "strlen", Desc: "returns the length of a string", MinParameter: 1, MaxParameter: 1,
		Params: []BuiltinParam{{"value", "string", "input string"}},
		Fn: func(args []Value) (Value, error) {
			s, err := requireString(args[0], "strlen")
			if err != nil {
				return Value{}, err
			}
			return NewInt(int64(len(s))), nil
		},
	})
	Declare(env, &Builtin{
		Name: "str-upper", Desc: "turns a string into upper case", MinParameter: 1, MaxParameter: 1,
		Params: []BuiltinParam{{"value", "string", "input string"}},
		Fn: func(args []Value) (Value, error) {
			s, err := requireString(args[0], "str-upper")
			if err != nil {
				return Value{}, err
			}
			return NewString(strings.ToUpper(s)), nil
		},
	})
	Declare(env, &Builtin{
		Name: "str-lower", Desc: "turns a string into lower case", MinParameter: 1, MaxParameter: 1,
		Params: []BuiltinParam{{"value", "string", "input string"}},
		Fn: func(args []Value) (Value, error) {
			s, err := requireString(args[0], "str-lower")
			if err != nil {
				return Value{}, err
			}
			return NewString(strings.ToLower(s)), nil
		},
	})
	Declare(env, &Builtin{
		Name: "split", Desc: "splits a string by a separator (defaults to a single space) into a list of strings", MinParameter: 1, MaxParameter: 2,
		Params: []BuiltinParam{
			{"value", "string", "input string"},
			{"separator", "string", "optional separator, defaults to \" \""},
		},
		Fn: func(args []Value) (Value, error) {
			s, err := requireString(args[0], "split")
			if err != nil {
				return Value{}, err
			}
			sep := " "
			if len(args) > 1 {
				sep, err = requireString(args[1], "split")
				if err != nil {
					return Value{}, err
				}
			}
			parts := strings.Split(s, sep)
			out := make([]Value, len(parts))
			for i, p := range parts {
				out[i] = NewString(p)
			}
			return NewList(out), nil
		},
	})
}
