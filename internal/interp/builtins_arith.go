package interp

import "fmt"

func requireNumber(v Value, who string) (float64, bool, error) {
	if v.Kind != KindAtom || (v.AtomKind != AtomInt && v.AtomKind != AtomFloat) {
		return 0, false, fmt.Errorf("%s: expected a number, got %s", who, Print(v))
	}
	if v.AtomKind == AtomInt {
		return float64(v.I), true, nil
	}
	return v.F, false, nil
}

// numericOp folds args with op, tracking whether every operand was an
// integer so the result can stay an Atom-int the way spec.md's "machine
// integers and floats" numeric tower implies (§1).
func numericOp(name string, args []Value, op func(a, b float64) float64) (Value, error) {
	acc, allInt, err := requireNumber(args[0], name)
	if err != nil {
		return Value{}, err
	}
	for _, a := range args[1:] {
		v, isInt, err := requireNumber(a, name)
		if err != nil {
			return Value{}, err
		}
		allInt = allInt && isInt
		acc = op(acc, v)
	}
	if allInt {
		return NewInt(int64(acc)), nil
	}
	return NewFloat(acc), nil
}

func comparisonChain(name string, args []Value, ok func(a, b float64) bool) (Value, error) {
	for i := 0; i+1 < len(args); i++ {
		a, _, err := requireNumber(args[i], name)
		if err != nil {
			return Value{}, err
		}
		b, _, err := requireNumber(args[i+1], name)
		if err != nil {
			return Value{}, err
		}
		if !ok(a, b) {
			return NewBool(false), nil
		}
	}
	return NewBool(true), nil
}

func registerArith(env *Env) {
	Declare(env, &Builtin{
		Name: "+", Desc: "sum of all arguments", MinParameter: 1, MaxParameter: -1,
		Params: []BuiltinParam{{"nums", "number", "numbers to add"}},
		Fn: func(args []Value) (Value, error) {
			return numericOp("+", args, func(a, b float64) float64 { return a + b })
		},
	})
	Declare(env, &Builtin{
		Name: "-", Desc: "subtracts all following arguments from the first", MinParameter: 1, MaxParameter: -1,
		Params: []BuiltinParam{{"nums", "number", "numbers to subtract"}},
		Fn: func(args []Value) (Value, error) {
			if len(args) == 1 {
				return numericOp("-", []Value{NewInt(0), args[0]}, func(a, b float64) float64 { return a - b })
			}
			return numericOp("-", args, func(a, b float64) float64 { return a - b })
		},
	})
	Declare(env, &Builtin{
		Name: "*", Desc: "product of all arguments", MinParameter: 1, MaxParameter: -1,
		Params: []BuiltinParam{{"nums", "number", "numbers to multiply"}},
		Fn: func(args []Value) (Value, error) {
			return numericOp("*", args, func(a, b float64) float64 { return a * b })
		},
	})
	Declare(env, &Builtin{
		Name: "/", Desc: "divides the first argument by all following arguments", MinParameter: 1, MaxParameter: -1,
		Params: []BuiltinParam{{"nums", "number", "numbers to divide"}},
		Fn: func(args []Value) (Value, error) {
			return numericOp("/", args, func(a, b float64) float64 { return a / b })
		},
	})
	Declare(env, &Builtin{
		Name: "<", Desc: "true if arguments are strictly increasing", MinParameter: 2, MaxParameter: -1,
		Params: []BuiltinParam{{"nums", "number", "numbers to compare"}},
		Fn: func(args []Value) (Value, error) {
			return comparisonChain("<", args, func(a, b float64) bool { return a < b })
		},
	})
	Declare(env, &Builtin{
		Name: "<=", Desc: "true if arguments are non-decreasing", MinParameter: 2, MaxParameter: -1,
		Params: []BuiltinParam{{"nums", "number", "numbers to compare"}},
		Fn: func(args []Value) (Value, error) {
			return comparisonChain("<=", args, func(a, b float64) bool { return a <= b })
		},
	})
	Declare(env, &Builtin{
		Name: ">", Desc: "true if arguments are strictly decreasing", MinParameter: 2, MaxParameter: -1,
		Params: []BuiltinParam{{"nums", "number", "numbers to compare"}},
		Fn: func(args []Value) (Value, error) {
			return comparisonChain(">", args, func(a, b float64) bool { return a > b })
		},
	})
	Declare(env, &Builtin{
		Name: ">=", Desc: "true if arguments are non-increasing", MinParameter: 2, MaxParameter: -1,
		Params: []BuiltinParam{{"nums", "number", "numbers to compare"}},
		Fn: func(args []Value) (Value, error) {
			return comparisonChain(">=", args, func(a, b float64) bool { return a >= b })
		},
	})
	Declare(env, &Builtin{
		Name: "=", Desc: "true if all arguments are equal", MinParameter: 2, MaxParameter: -1,
		Params: []BuiltinParam{{"vals", "any", "values to compare"}},
		Fn: func(args []Value) (Value, error) {
			for i := 0; i+1 < len(args); i++ {
				if !Equal(args[i], args[i+1]) {
					return NewBool(false), nil
				}
			}
			return NewBool(true), nil
		},
	})
}

// Equal is a structural equality test over Value, used by `=` and
// `equal?`-style builtins. Grounded on the teacher's scm/compare.go
// Equal, which switches on the packed tag; here it switches on Kind.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindAtom:
		if a.AtomKind != b.AtomKind {
			// allow cross int/float comparison since both are numeric atoms
			aIsNum := a.AtomKind == AtomInt || a.AtomKind == AtomFloat
			bIsNum := b.AtomKind == AtomInt || b.AtomKind == AtomFloat
			if aIsNum && bIsNum {
				av, _, _ := requireNumber(a, "=")
				bv, _, _ := requireNumber(b, "=")
				return av == bv
			}
			return false
		}
		switch a.AtomKind {
		case AtomNil:
			return true
		case AtomBool:
			return a.B == b.B
		case AtomInt:
			return a.I == b.I
		case AtomFloat:
			return a.F == b.F
		case AtomString:
			return a.S == b.S
		}
		return false
	case KindSymbol:
		return a.S == b.S
	case KindList:
		if len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !Equal(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
