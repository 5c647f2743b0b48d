// Package wsrepl exposes the same read-eval-print semantics as the
// terminal REPL over a websocket connection (SPEC_FULL.md §B, a
// supplemental external interface beyond spec.md §6.1). Each connection
// is handled synchronously, one read-eval-write cycle at a time, the
// way the teacher's scm/network.go upgrades a request to a websocket
// and then runs its own blocking read loop per connection.
package wsrepl

import (
	"log"
	"net/http"

	"jaratkaru/internal/interp"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler returns an http.HandlerFunc that upgrades every request to a
// websocket and evaluates each incoming text message as a JK top-level
// form sequence against its own child environment of root (so one
// connection's setq/defun does not leak into another's).
func Handler(root *interp.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("jk: websocket upgrade failed:", err)
			return
		}
		defer conn.Close()
		env := interp.NewEnv(root)
		for {
			messageType, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if messageType != websocket.TextMessage {
				continue
			}
			reply := evalMessage(string(msg), env)
			if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
				return
			}
		}
	}
}

func evalMessage(line string, env *interp.Env) string {
	var forest []interp.Value
	readErr := interp.Guard(func() {
		tokens, err := interp.Lex([]string{line})
		if err != nil {
			panic(err)
		}
		forest = interp.Read(tokens)
	})
	if readErr != nil {
		return readErr.Render()
	}
	if len(forest) == 0 {
		return ""
	}
	last, firstErr := interp.EvalTopLevel(forest, env)
	if firstErr != nil {
		return firstErr.Render()
	}
	return interp.Print(last)
}

// Serve blocks serving websocket REPL connections on addr.
func Serve(addr string, root *interp.Env) error {
	mux := http.NewServeMux()
	mux.Handle("/", Handler(root))
	log.Println("jk: serving websocket REPL on", addr)
	return http.ListenAndServe(addr, mux)
}
