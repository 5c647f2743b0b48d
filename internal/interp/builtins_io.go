package interp

import "fmt"

// registerIO installs the print/error/symbol builtins of spec.md §2's
// "Built-ins" row, grounded on the teacher's scm/scm.go `"print"`/`"error"`
// entries (variadic print, error panics with its argument).
func registerIO(env *Env) {
	Declare(env, &Builtin{
		Name: "print", Desc: "prints all arguments separated by a space, followed by a newline", MinParameter: 0, MaxParameter: -1,
		Params: []BuiltinParam{{"vals", "any", "values to print"}},
		Fn: func(args []Value) (Value, error) {
			for i, a := range args {
				if i > 0 {
					fmt.Print(" ")
				}
				if a.Kind == KindAtom && a.AtomKind == AtomString {
					fmt.Print(a.S)
				} else {
					fmt.Print(Print(a))
				}
			}
			fmt.Println()
			return NewNil(), nil
		},
	})
	Declare(env, &Builtin{
		Name: "error", Desc: "raises its argument as a runtime error", MinParameter: 1, MaxParameter: 1,
		Params: []BuiltinParam{{"val", "any", "error payload"}},
		Fn: func(args []Value) (Value, error) {
			return Value{}, &InterpError{Kind: ErrIncorrectArg, Message: Print(args[0])}
		},
	})
	Declare(env, &Builtin{
		Name: "symbol", Desc: "converts a string into a symbol", MinParameter: 1, MaxParameter: 1,
		Params: []BuiltinParam{{"str", "string", "symbol name"}},
		Fn: func(args []Value) (Value, error) {
			if args[0].Kind != KindAtom || args[0].AtomKind != AtomString {
				return Value{}, fmt.Errorf("symbol: expected a string")
			}
			return NewSymbol(args[0].S), nil
		},
	})
}
