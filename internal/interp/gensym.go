package interp

import "github.com/google/uuid"

// registerGensym installs `gensym`, used by hygienic macro templates to
// mint symbol names that cannot collide with caller bindings. Grounded
// on storage/fast_uuid.go in the teacher's repo, which uses
// google/uuid for the same "collision-free identifier" concern at the
// storage layer (SPEC_FULL.md §B).
func registerGensym(env *Env) {
	Declare(env, &Builtin{
		Name: "gensym", Desc: "returns a fresh symbol guaranteed not to collide with any other", MinParameter: 0, MaxParameter: 1,
		Params: []BuiltinParam{{"prefix", "string", "optional symbol name prefix"}},
		Fn: func(args []Value) (Value, error) {
			prefix := "g"
			if len(args) == 1 {
				if args[0].Kind == KindAtom && args[0].AtomKind == AtomString {
					prefix = args[0].S
				} else if args[0].IsSymbol() {
					prefix = args[0].SymbolName()
				}
			}
			return NewSymbol(prefix + "-" + uuid.New().String()), nil
		},
	})
}
