package interp

import (
	"bytes"
	"encoding/gob"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
)

// cachedNode is a gob-encodable shadow of Value restricted to the three
// reader-produced shapes (Atom/Symbol/List) — the only shapes a read
// forest ever contains before evaluation. Value itself cannot be
// gob-encoded directly because its Proc field Env points to an Env,
// which has no exported fields, and gob rejects such a type regardless
// of whether the pointer is nil.
type cachedNode struct {
	Kind     Kind
	AtomKind AtomKind
	I        int64
	F        float64
	S        string
	B        bool
	List     []cachedNode
}

func toCached(v Value) cachedNode {
	c := cachedNode{Kind: v.Kind, AtomKind: v.AtomKind, I: v.I, F: v.F, S: v.S, B: v.B}
	if v.IsList() {
		c.List = make([]cachedNode, len(v.List))
		for i, item := range v.List {
			c.List[i] = toCached(item)
		}
	}
	return c
}

func fromCached(c cachedNode) Value {
	v := Value{Kind: c.Kind, AtomKind: c.AtomKind, I: c.I, F: c.F, S: c.S, B: c.B}
	if c.Kind == KindList {
		v.List = make([]Value, len(c.List))
		for i, item := range c.List {
			v.List[i] = fromCached(item)
		}
	}
	return v
}

// SaveForestCache gob-encodes and lz4-compresses a read forest to path,
// the `-cache` read-forest memoization of SPEC_FULL.md §B, grounded on
// the teacher's go.mod direct dependency on pierrec/lz4/v4 (used there
// for compressing stored blobs in memcp's storage layer).
func SaveForestCache(path string, forest []Value) error {
	cached := make([]cachedNode, len(forest))
	for i, v := range forest {
		cached[i] = toCached(v)
	}
	var raw bytes.Buffer
	if err := gob.NewEncoder(&raw).Encode(cached); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := lz4.NewWriter(f)
	defer w.Close()
	_, err = io.Copy(w, &raw)
	return err
}

// LoadForestCache reverses SaveForestCache.
func LoadForestCache(path string) ([]Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var raw bytes.Buffer
	if _, err := io.Copy(&raw, lz4.NewReader(f)); err != nil {
		return nil, err
	}
	var cached []cachedNode
	if err := gob.NewDecoder(&raw).Decode(&cached); err != nil {
		return nil, err
	}
	forest := make([]Value, len(cached))
	for i, c := range cached {
		forest[i] = fromCached(c)
	}
	return forest, nil
}
