// Command jk is the Jaratkaru CLI (spec.md §6.1): `jk` starts the
// interactive REPL; `jk FILE` evaluates FILE's top-level forms first,
// then drops into the REPL. Grounded on the teacher's go-impl/main.go,
// which installs a couple of builtins and calls scm.Repl().
package main

import (
	"flag"
	"fmt"
	"os"

	"jaratkaru/internal/interp"
	"jaratkaru/internal/loader"
	"jaratkaru/internal/repl"
	"jaratkaru/internal/wsrepl"
)

func main() {
	var (
		watch     = flag.Bool("watch", false, "reload FILE and re-evaluate whenever it changes on disk")
		serveAddr = flag.String("serve", "", "serve a websocket REPL on ADDR alongside the terminal REPL")
		cacheFlag = flag.Bool("cache", false, "memoize FILE's parsed forest to FILE.jkc")
		history   = flag.String("history", ".jk-history.tmp", "readline history file")
	)
	flag.Parse()

	env := interp.NewRootEnv()

	args := flag.Args()
	if len(args) == 1 {
		path := args[0]
		if *cacheFlag {
			if err := loadWithCache(path, env); err != nil {
				fmt.Fprintln(os.Stderr, "jk:", err)
				os.Exit(1)
			}
		} else if err := loader.LoadFile(path, env); err != nil {
			fmt.Fprintln(os.Stderr, "jk:", err)
			os.Exit(1)
		}
		if *watch {
			stop := make(chan struct{})
			go func() {
				if err := loader.Watch(path, env, stop); err != nil {
					fmt.Fprintln(os.Stderr, "jk: watch:", err)
				}
			}()
			defer close(stop)
		}
	} else if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: jk [FILE]")
		os.Exit(1)
	}

	if *serveAddr != "" {
		go func() {
			if err := wsrepl.Serve(*serveAddr, env); err != nil {
				fmt.Fprintln(os.Stderr, "jk: serve:", err)
			}
		}()
	}

	if err := repl.Run(env, *history); err != nil {
		fmt.Fprintln(os.Stderr, "jk:", err)
		os.Exit(1)
	}
}

// loadWithCache reads FILE's cached parsed forest from FILE.jkc whenever
// that cache loads, skipping re-lexing/re-reading (SPEC_FULL.md §B).
// Presence alone gates reuse: the cache is not compared against FILE's
// modification time, so edits to FILE after the cache was written are
// not picked up while FILE.jkc exists. Otherwise FILE is read and its
// forest is written to FILE.jkc before evaluation.
func loadWithCache(path string, env *interp.Env) error {
	cachePath := path + ".jkc"
	if forest, err := interp.LoadForestCache(cachePath); err == nil {
		_, firstErr := interp.EvalTopLevel(forest, env)
		if firstErr != nil {
			fmt.Fprintln(os.Stderr, firstErr.Render())
		}
		return nil
	}
	lines, err := loader.ReadLines(path)
	if err != nil {
		return err
	}
	tokens, err := interp.Lex(lines)
	if err != nil {
		return err
	}
	var forest []interp.Value
	readErr := interp.Guard(func() {
		forest = interp.Read(tokens)
	})
	if readErr != nil {
		fmt.Fprintln(os.Stderr, readErr.Render())
		return nil
	}
	if err := interp.SaveForestCache(cachePath, forest); err != nil {
		fmt.Fprintln(os.Stderr, "jk: cache write failed:", err)
	}
	_, firstErr := interp.EvalTopLevel(forest, env)
	if firstErr != nil {
		fmt.Fprintln(os.Stderr, firstErr.Render())
	}
	return nil
}
