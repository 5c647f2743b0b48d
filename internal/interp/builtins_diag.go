package interp

import (
	"runtime"

	units "github.com/docker/go-units"
)

// registerDiagnostics installs `mem-usage`, a small ambient-stack
// extension reporting the Go runtime's own heap usage in human-readable
// form, grounded on the teacher's go.mod direct dependency on
// docker/go-units (SPEC_FULL.md §B).
func registerDiagnostics(env *Env) {
	Declare(env, &Builtin{
		Name: "mem-usage", Desc: "returns a human-readable string describing current heap usage", MinParameter: 0, MaxParameter: 0,
		Fn: func(args []Value) (Value, error) {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			s := "heap=" + units.HumanSize(float64(m.HeapAlloc)) +
				" sys=" + units.HumanSize(float64(m.Sys))
			return NewString(s), nil
		},
	})
}
