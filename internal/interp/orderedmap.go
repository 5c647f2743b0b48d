package interp

import (
	"fmt"

	"github.com/google/btree"
)

// dictEntry is the btree.Item stored in a scmDict, ordered by key.
type dictEntry struct {
	key string
	val Value
}

func (e *dictEntry) Less(than btree.Item) bool {
	return e.key < than.(*dictEntry).key
}

// scmDict is the native handle behind the `dict` Lisp value: an ordered
// associative structure distinct from assoc-lists, backed by the same
// google/btree ordered index the teacher uses in storage/index.go
// (SPEC_FULL.md §B).
type scmDict struct {
	bt *btree.BTree
}

func dictKey(v Value) (string, error) {
	switch {
	case v.Kind == KindAtom && v.AtomKind == AtomString:
		return v.S, nil
	case v.IsSymbol():
		return v.S, nil
	case v.Kind == KindAtom && v.AtomKind == AtomInt:
		return Print(v), nil
	default:
		return "", fmt.Errorf("dict: keys must be strings, symbols or integers, got %s", Print(v))
	}
}

func asDict(v Value, who string) (*scmDict, error) {
	if v.Kind != KindOpaque || v.OpaqueTag != "dict" {
		return nil, fmt.Errorf("%s: expected a dict", who)
	}
	return v.Any.(*scmDict), nil
}

func registerOrderedMap(env *Env) {
	Declare(env, &Builtin{
		Name: "dict-new", Desc: "creates a new empty ordered dictionary", MinParameter: 0, MaxParameter: 0,
		Fn: func(args []Value) (Value, error) {
			return Value{Kind: KindOpaque, OpaqueTag: "dict", Any: &scmDict{bt: btree.New(32)}}, nil
		},
	})
	Declare(env, &Builtin{
		Name: "dict-set", Desc: "sets a key to a value in a dictionary, returning the dictionary", MinParameter: 3, MaxParameter: 3,
		Params: []BuiltinParam{
			{"dict", "any", "a dict created by dict-new"},
			{"key", "any", "string, symbol, or integer key"},
			{"value", "any", "value to store"},
		},
		Fn: func(args []Value) (Value, error) {
			d, err := asDict(args[0], "dict-set")
			if err != nil {
				return Value{}, err
			}
			key, err := dictKey(args[1])
			if err != nil {
				return Value{}, err
			}
			d.bt.ReplaceOrInsert(&dictEntry{key: key, val: args[2]})
			return args[0], nil
		},
	})
	Declare(env, &Builtin{
		Name: "dict-get", Desc: "looks up a key in a dictionary, returning nil if absent", MinParameter: 2, MaxParameter: 2,
		Params: []BuiltinParam{
			{"dict", "any", "a dict created by dict-new"},
			{"key", "any", "string, symbol, or integer key"},
		},
		Fn: func(args []Value) (Value, error) {
			d, err := asDict(args[0], "dict-get")
			if err != nil {
				return Value{}, err
			}
			key, err := dictKey(args[1])
			if err != nil {
				return Value{}, err
			}
			item := d.bt.Get(&dictEntry{key: key})
			if item == nil {
				return NewNil(), nil
			}
			return item.(*dictEntry).val, nil
		},
	})
	Declare(env, &Builtin{
		Name: "dict-keys", Desc: "returns the dictionary's keys in ascending order", MinParameter: 1, MaxParameter: 1,
		Params: []BuiltinParam{{"dict", "any", "a dict created by dict-new"}},
		Fn: func(args []Value) (Value, error) {
			d, err := asDict(args[0], "dict-keys")
			if err != nil {
				return Value{}, err
			}
			var keys []Value
			d.bt.Ascend(func(item btree.Item) bool {
				keys = append(keys, NewString(item.(*dictEntry).key))
				return true
			})
			return NewList(keys), nil
		},
	})
	Declare(env, &Builtin{
		Name: "dict-count", Desc: "returns the number of entries in the dictionary", MinParameter: 1, MaxParameter: 1,
		Params: []BuiltinParam{{"dict", "any", "a dict created by dict-new"}},
		Fn: func(args []Value) (Value, error) {
			d, err := asDict(args[0], "dict-count")
			if err != nil {
				return Value{}, err
			}
			return NewInt(int64(d.bt.Len())), nil
		},
	})
}
