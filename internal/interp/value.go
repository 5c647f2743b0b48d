package interp

// Kind tags the three S-expression shapes of spec.md §3.2, plus the two
// callable shapes (Proc, Builtin) needed to make procedures first-class
// values of the same kind the evaluator already returns.
type Kind uint8

const (
	KindAtom Kind = iota
	KindSymbol
	KindList
	KindProc
	KindBuiltin
	// KindOpaque carries a native handle (e.g. the btree-backed dict of
	// orderedmap.go) that is a value of the interpreter's "same kind" per
	// spec.md §3.2 without being expressible as Atom/Symbol/List.
	KindOpaque
)

// AtomKind tags the sum-over-literals inside an Atom (spec.md §9).
type AtomKind uint8

const (
	AtomNil AtomKind = iota
	AtomInt
	AtomFloat
	AtomString
	AtomBool
)

// Value is a Jaratkaru S-expression: an Atom, a Symbol, a List, a
// user-defined Proc, a native Builtin, or an Opaque native handle. All
// six are "values of the same kind" per spec.md §3.2 — the evaluator
// returns Value, and every built-in consumes and produces Value.
//
// Every Value produced by the Reader carries a non-nil Tok; Values
// produced at runtime (evaluation results, builtin return values)
// may carry a nil Tok, and callers must not assume location information
// is present (spec.md §3.2 invariant).
type Value struct {
	Kind Kind
	Tok  *Token

	// Atom
	AtomKind AtomKind
	I        int64
	F        float64
	S        string // Atom string value, or the Symbol's name
	B        bool

	// List
	List []Value

	// Proc
	Params  []Value // Symbols
	Body    []Value
	Env     *Env
	IsMacro bool

	// Builtin
	Name    string
	Builtin func(args []Value) (Value, error)

	// Opaque
	OpaqueTag string
	Any       any
}

func NewNil() Value                  { return Value{Kind: KindAtom, AtomKind: AtomNil} }
func NewBool(b bool) Value           { return Value{Kind: KindAtom, AtomKind: AtomBool, B: b} }
func NewInt(i int64) Value           { return Value{Kind: KindAtom, AtomKind: AtomInt, I: i} }
func NewFloat(f float64) Value       { return Value{Kind: KindAtom, AtomKind: AtomFloat, F: f} }
func NewString(s string) Value       { return Value{Kind: KindAtom, AtomKind: AtomString, S: s} }
func NewSymbol(s string) Value       { return Value{Kind: KindSymbol, S: s} }
func NewList(items []Value) Value    { return Value{Kind: KindList, List: items} }

func (v Value) IsAtom() bool    { return v.Kind == KindAtom }
func (v Value) IsSymbol() bool  { return v.Kind == KindSymbol }
func (v Value) IsList() bool    { return v.Kind == KindList }
func (v Value) IsCallable() bool {
	return v.Kind == KindProc || v.Kind == KindBuiltin
}
func (v Value) IsNil() bool { return v.Kind == KindAtom && v.AtomKind == AtomNil }

// SymbolName returns the Symbol's bareword; only valid when IsSymbol().
func (v Value) SymbolName() string { return v.S }

// Truthy implements host-level truthiness for spec.md §4.4.2 `if`:
// nil, false, numeric zero, the empty string and the empty list
// (spec.md §9 open question (b)) are false; everything else is true.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindAtom:
		switch v.AtomKind {
		case AtomNil:
			return false
		case AtomBool:
			return v.B
		case AtomInt:
			return v.I != 0
		case AtomFloat:
			return v.F != 0
		case AtomString:
			return v.S != ""
		}
		return true
	case KindList:
		// spec.md §9 open question (b): empty list is falsy.
		return len(v.List) != 0
	default:
		return true
	}
}
