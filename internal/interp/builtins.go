package interp

// Builtin mirrors the teacher's scm/declare.go Declaration: a builtin
// carries its own documentation alongside its implementation, so `help`
// can list and describe every native function (SPEC_FULL.md §B/§D).
type Builtin struct {
	Name         string
	Desc         string
	MinParameter int
	MaxParameter int
	Params       []BuiltinParam
	Fn           func(args []Value) (Value, error)
}

type BuiltinParam struct {
	Name string
	Type string // any | string | number | func | list | symbol
	Desc string
}

var registry = map[string]*Builtin{}

// order preserves registration order for a stable `help` listing,
// matching the teacher's declarations map iteration being stabilised
// downstream by the x/text-aligned writer (help.go).
var order []string

// Declare installs a builtin into env and records it in the registry
// (teacher's scm/declare.go Declare).
func Declare(env *Env, def *Builtin) {
	if _, exists := registry[def.Name]; !exists {
		order = append(order, def.Name)
	}
	registry[def.Name] = def
	env.Set(def.Name, Value{
		Kind: KindBuiltin,
		Name: def.Name,
		Builtin: func(args []Value) (Value, error) {
			if len(args) < def.MinParameter || (def.MaxParameter >= 0 && len(args) > def.MaxParameter) {
				return Value{}, &InterpError{
					Kind:    ErrIncorrectArg,
					Message: def.Name + ": wrong number of arguments",
				}
			}
			return def.Fn(args)
		},
	})
}

// NewRootEnv builds the root environment with every built-in installed,
// matching spec.md §2's "Built-ins are installed as callable values in
// the root environment before evaluation begins."
func NewRootEnv() *Env {
	env := NewEnv(nil)
	registerArith(env)
	registerList(env)
	registerStrings(env)
	registerIO(env)
	registerGensym(env)
	registerOrderedMap(env)
	registerDiagnostics(env)
	registerHelp(env)
	return env
}
