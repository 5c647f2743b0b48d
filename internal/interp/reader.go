package interp

import "strconv"

// readerMacros maps the single-char reader-macro symbols to the special
// forms they desugar to (spec.md §4.2 phase 2).
var readerMacros = map[string]string{
	"'":  "quote",
	"`":  "quasiquote",
	",":  "unquote",
}

// stackFrame is either a pushed '(' token (marker) or a built Value.
type stackFrame struct {
	isOpen bool
	open   Token
	val    Value
}

// Read builds a forest of S-expressions from a token stream. It takes no
// separate source lines: each token already carries its own source line.
// Phase 1 is the shift/reduce stack build (spec.md §4.2 phase 1);
// Phase 2 desugars reader macros (spec.md §4.2 phase 2).
func Read(tokens []Token) []Value {
	forest := buildForest(tokens)
	return desugarSeq(forest)
}

func buildForest(tokens []Token) []Value {
	var stack []stackFrame
	for idx := range tokens {
		tok := tokens[idx]
		switch tok.Val {
		case "(":
			stack = append(stack, stackFrame{isOpen: true, open: tok})
		case ")":
			// pop items into a buffer, inserting at the front, until '(' is popped
			var buf []Value
			closed := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.isOpen {
					closed = true
					t := top.open
					list := NewList(buf)
					list.Tok = &t
					stack = append(stack, stackFrame{val: list})
					break
				}
				buf = append([]Value{top.val}, buf...)
			}
			if !closed {
				t := tok
				throw(ErrParse, &t, "unbalanced close paren")
			}
		default:
			v := readAtom(tok)
			stack = append(stack, stackFrame{val: v})
		}
	}
	var forest []Value
	for _, fr := range stack {
		if fr.isOpen {
			t := fr.open
			throw(ErrParse, &t, "unbalanced open paren")
		}
		forest = append(forest, fr.val)
	}
	return forest
}

// readAtom classifies a single token as Atom or Symbol (spec.md §4.2).
func readAtom(tok Token) Value {
	t := tok
	lex := tok.Val
	if i, err := strconv.ParseInt(lex, 10, 64); err == nil {
		return Value{Kind: KindAtom, AtomKind: AtomInt, I: i, Tok: &t}
	}
	if f, err := strconv.ParseFloat(lex, 64); err == nil {
		return Value{Kind: KindAtom, AtomKind: AtomFloat, F: f, Tok: &t}
	}
	if len(lex) >= 2 && lex[0] == '"' && lex[len(lex)-1] == '"' {
		return Value{Kind: KindAtom, AtomKind: AtomString, S: lex[1 : len(lex)-1], Tok: &t}
	}
	switch lex {
	case "nil":
		return Value{Kind: KindAtom, AtomKind: AtomNil, Tok: &t}
	case "true":
		return Value{Kind: KindAtom, AtomKind: AtomBool, B: true, Tok: &t}
	case "false":
		return Value{Kind: KindAtom, AtomKind: AtomBool, B: false, Tok: &t}
	}
	return Value{Kind: KindSymbol, S: lex, Tok: &t}
}

// desugar rewrites a single node: recurses into a List's children via
// desugarSeq, leaves Atoms/Symbols untouched. The reader-macro rewrite
// itself operates on a flat *sequence* of siblings (desugarSeq), because
// `SYM X` adjacency can occur either between a list's children or
// between top-level forest entries (e.g. `` `(1 ,x 3) `` tokenizes as
// two adjacent top-level items: the Symbol "`" and the following List).
func desugar(v Value) Value {
	if !v.IsList() {
		return v
	}
	result := NewList(desugarSeq(v.List))
	result.Tok = v.Tok
	return result
}

// desugarSeq walks a flat sequence of sibling S-expressions left to
// right, rewriting `SYM X` at positions i, i+1 into a two-element list
// `(mapped-name X)` whenever SYM is one of the reader-macro symbols
// (spec.md §4.2 phase 2). X is desugared first when it is itself a List.
func desugarSeq(items []Value) []Value {
	out := make([]Value, 0, len(items))
	for i := 0; i < len(items); i++ {
		item := items[i]
		if item.IsSymbol() {
			if mapped, ok := readerMacros[item.SymbolName()]; ok {
				if i+1 >= len(items) {
					throw(ErrMalformedExpr, item.Tok, "reader macro %q with no following form", item.SymbolName())
				}
				operand := desugar(items[i+1])
				wrapped := NewList([]Value{NewSymbol(mapped), operand})
				wrapped.Tok = item.Tok
				out = append(out, wrapped)
				i++
				continue
			}
		}
		out = append(out, desugar(item))
	}
	return out
}
