package interp

import (
	"path/filepath"
	"testing"
)

func TestForestCacheRoundTrips(t *testing.T) {
	forest := mustRead(t, `(defun square (x) (* x x))`)
	path := filepath.Join(t.TempDir(), "forest.jkc")

	if err := SaveForestCache(path, forest); err != nil {
		t.Fatalf("SaveForestCache: %v", err)
	}
	got, err := LoadForestCache(path)
	if err != nil {
		t.Fatalf("LoadForestCache: %v", err)
	}
	if len(got) != len(forest) {
		t.Fatalf("got %d top-level forms, want %d", len(got), len(forest))
	}
	for i := range forest {
		if Print(got[i]) != Print(forest[i]) {
			t.Errorf("form %d round-tripped to %q, want %q", i, Print(got[i]), Print(forest[i]))
		}
	}
}

func TestLoadForestCacheMissingFile(t *testing.T) {
	_, err := LoadForestCache(filepath.Join(t.TempDir(), "does-not-exist.jkc"))
	if err == nil {
		t.Fatal("expected an error loading a nonexistent cache file")
	}
}
