package interp

import "testing"

// evalSrc lexes, reads, and evaluates every top-level form of src against
// a fresh root environment, returning the last form's result.
func evalSrc(t *testing.T, src string) Value {
	t.Helper()
	env := NewRootEnv()
	return evalSrcIn(t, src, env)
}

func evalSrcIn(t *testing.T, src string, env *Env) Value {
	t.Helper()
	toks, err := Lex([]string{src})
	if err != nil {
		t.Fatalf("Lex(%q): %v", src, err)
	}
	var forest []Value
	readErr := Guard(func() { forest = Read(toks) })
	if readErr != nil {
		t.Fatalf("Read(%q): %v", src, readErr)
	}
	last, evalErr := EvalTopLevel(forest, env)
	if evalErr != nil {
		t.Fatalf("Eval(%q): %v", src, evalErr)
	}
	return last
}

var endToEndScenarios = []struct {
	name string
	src  string
	want string
}{
	{"arithmetic", `(+ 1 (* 2 3))`, "7"},
	{"sequential let*", `(let* ((x 1) (y (+ x 1))) (+ x y))`, "3"},
	{"closure capture", `(let* ((make-adder (lambda (n) (lambda (x) (+ x n))))) (let* ((add5 (make-adder 5))) (add5 10)))`, "15"},
	{"quote fidelity", `(quote (+ 1 2))`, "(+ 1 2)"},
	{"quasiquote locality", `(setq x 3) (quasiquote (1 (unquote x) 3))`, "(1 3 3)"},
	{"quasiquote reader macros", "(setq x 3) `(1 ,x 3)", "(1 3 3)"},
	{"defmacro expansion", `(defmacro unless (c b) (quasiquote (if (unquote c) nil (unquote b)))) (unless (< 2 1) 42)`, "42"},
	{"car of a quoted list", `(car (quote (a b c)))`, "a"},
}

func TestEndToEndScenarios(t *testing.T) {
	for _, sc := range endToEndScenarios {
		t.Run(sc.name, func(t *testing.T) {
			got := Print(evalSrc(t, sc.src))
			if got != sc.want {
				t.Errorf("eval(%q) = %q, want %q", sc.src, got, sc.want)
			}
		})
	}
}

func TestIfFalsyBranches(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`(if 0 1 2)`, "2"},
		{`(if false 1 2)`, "2"},
		{`(if nil 1 2)`, "2"},
		{`(if "" 1 2)`, "2"},
		{`(if (list) 1 2)`, "2"}, // open question (b): empty list is falsy
		{`(if 1 "then")`, `"then"`},
		{`(if 0 "then")`, "nil"},
	}
	for _, c := range cases {
		got := Print(evalSrc(t, c.src))
		if got != c.want {
			t.Errorf("eval(%q) = %q, want %q", c.src, got, c.want)
		}
	}
}

func TestSetqInsideLetShadowsOuterBinding(t *testing.T) {
	got := Print(evalSrc(t, `(setq x 1) (let* ((y 0)) (setq x 2) x)`))
	if got != "2" {
		t.Errorf("inner setq result = %q, want 2", got)
	}
}

func TestSetqInsideLetDoesNotLeakOut(t *testing.T) {
	// a setq performed inside let*'s body rebinds the let* frame, so the
	// outer binding of the same name made before the let* is unaffected.
	env := NewRootEnv()
	evalSrcIn(t, `(setq x 1)`, env)
	evalSrcIn(t, `(let* ((z 0)) (setq x 2))`, env)
	got := Print(evalSrcIn(t, `x`, env))
	if got != "1" {
		t.Errorf("outer x = %q, want unchanged 1 (setq only touches the innermost frame)", got)
	}
}

func TestLambdaExtraArgsDropped(t *testing.T) {
	got := Print(evalSrc(t, `((lambda (a b) (+ a b)) 1 2 3 4)`))
	if got != "3" {
		t.Errorf("extra args should be dropped, got %q", got)
	}
}

func TestLambdaMissingArgsUnboundUnlessUsed(t *testing.T) {
	got := Print(evalSrc(t, `((lambda (a b) a) 1)`))
	if got != "1" {
		t.Errorf("unused missing param should not error, got %q", got)
	}

	env := NewRootEnv()
	forest := mustRead(t, `((lambda (a b) b) 1)`)
	_, evalErr := EvalTopLevel(forest, env)
	if evalErr == nil {
		t.Fatal("expected an unbound-symbol error when an unbound param is actually used")
	}
	if evalErr.Kind != ErrUnboundSymbol {
		t.Errorf("Kind = %v, want %v", evalErr.Kind, ErrUnboundSymbol)
	}
}

func TestDefunRecursion(t *testing.T) {
	got := Print(evalSrc(t, `
		(defun fact (n) (if (< n 2) 1 (* n (fact (- n 1)))))
		(fact 5)
	`))
	if got != "120" {
		t.Errorf("fact(5) = %q, want 120", got)
	}
}

func TestMacroReceivesUnevaluatedArgs(t *testing.T) {
	// my-quote expands to its raw, unevaluated argument — if the macro
	// were evaluating eagerly this would throw an unbound-symbol error
	// for `boom` instead of returning the symbol itself.
	got := Print(evalSrc(t, `
		(defmacro my-quote (x) (quasiquote (quote (unquote x))))
		(my-quote boom)
	`))
	if got != "boom" {
		t.Errorf("my-quote boom = %q, want boom", got)
	}
}

func TestEvalBuiltin(t *testing.T) {
	got := Print(evalSrc(t, `(eval (quote (+ 1 2)))`))
	if got != "3" {
		t.Errorf("(eval '(+ 1 2)) = %q, want 3", got)
	}
}

func TestUnboundSymbolError(t *testing.T) {
	env := NewRootEnv()
	_, err := EvalTopLevel(mustRead(t, `(+ never-bound 1)`), env)
	if err == nil {
		t.Fatal("expected an unbound-symbol error")
	}
	if err.Kind != ErrUnboundSymbol {
		t.Errorf("Kind = %v, want %v", err.Kind, ErrUnboundSymbol)
	}
}

func TestMalformedUnquoteInsideQuasiquoteErrors(t *testing.T) {
	cases := []string{
		`(quasiquote (a (unquote)))`,     // zero arguments
		`(quasiquote (a (unquote x y)))`, // two arguments
	}
	for _, src := range cases {
		env := NewRootEnv()
		_, err := EvalTopLevel(mustRead(t, src), env)
		if err == nil {
			t.Errorf("eval(%q): expected a malformed-expression error", src)
			continue
		}
		if err.Kind != ErrMalformedExpr {
			t.Errorf("eval(%q): Kind = %v, want %v", src, err.Kind, ErrMalformedExpr)
		}
	}
}

func TestUnquoteOutsideQuasiquoteIsMalformed(t *testing.T) {
	env := NewRootEnv()
	_, err := EvalTopLevel(mustRead(t, `(unquote 1)`), env)
	if err == nil {
		t.Fatal("expected a malformed-expression error")
	}
	if err.Kind != ErrMalformedExpr {
		t.Errorf("Kind = %v, want %v", err.Kind, ErrMalformedExpr)
	}
}

func TestEvalTopLevelStopsAtFirstError(t *testing.T) {
	env := NewRootEnv()
	forest := mustRead(t, "(setq x 99)")
	forest = append(forest, mustRead(t, "(+ x unbound-name)")...)
	forest = append(forest, mustRead(t, "(setq z 3)")...)
	_, firstErr := EvalTopLevel(forest, env)
	if firstErr == nil {
		t.Fatal("expected the second top-level form to error")
	}

	got := Print(env.Get(NewSymbol("x")))
	if got != "99" {
		t.Errorf("x = %q after a later error, want the earlier binding to survive (99)", got)
	}

	// The form after the error must never run — EvalTopLevel aborts the
	// whole unit on the first error, it does not skip past it.
	zErr := Guard(func() { env.Get(NewSymbol("z")) })
	if zErr == nil {
		t.Error("z should be unbound: the form that would set it comes after the error")
	}
}
