package loader

import (
	"os"
	"path/filepath"
	"testing"

	"jaratkaru/internal/interp"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.jk")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestReadLines(t *testing.T) {
	path := writeTemp(t, "(setq x 1)\n(setq y 2)\n")
	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"(setq x 1)", "(setq y 2)"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "missing.jk"))
	if err == nil {
		t.Fatal("expected an error reading a nonexistent file")
	}
}

func TestLoadFileEvaluatesEveryTopLevelForm(t *testing.T) {
	path := writeTemp(t, "(setq x 10)\n(setq y (+ x 5))\n")
	env := interp.NewRootEnv()
	if err := LoadFile(path, env); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	got := interp.Print(env.Get(interp.NewSymbol("y")))
	if got != "15" {
		t.Errorf("y = %q, want 15", got)
	}
}

func TestLoadFileStopsAtFirstErrorButKeepsEarlierBindings(t *testing.T) {
	path := writeTemp(t, "(setq x 1)\n(+ x never-bound)\n(setq z 3)\n")
	env := interp.NewRootEnv()
	if err := LoadFile(path, env); err != nil {
		t.Fatalf("LoadFile should not itself return an error for a JK-level eval failure: %v", err)
	}
	if got := interp.Print(env.Get(interp.NewSymbol("x"))); got != "1" {
		t.Errorf("x = %q, want 1 (bindings before the error survive)", got)
	}
	guardErr := interp.Guard(func() { env.Get(interp.NewSymbol("z")) })
	if guardErr == nil {
		t.Error("z should be unbound: the form that would set it comes after the error and is never evaluated")
	}
}
