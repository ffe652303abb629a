package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/matt-g-everett/tweentx/tween"
)

// Source is anything that can report the state of an animation.
type Source interface {
	Snapshot() tween.Snapshot
}

type Api struct {
	source Source
	static string
}

// NewApi creates an Api reporting on source. If static is not empty it is
// served as a file tree at /.
func NewApi(source Source, static string) *Api {
	a := new(Api)
	a.source = source
	a.static = static
	return a
}

// Handler returns the routes served by the Api.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", a.handleStatus)
	if a.static != "" {
		mux.Handle("/", http.FileServer(http.Dir(a.static)))
	}
	return mux
}

func (a *Api) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.source.Snapshot()); err != nil {
		log.Printf("status: %v", err)
	}
}

// Serve listens on addr until the server fails.
func (a *Api) Serve(addr string) error {
	log.Printf("Listening on %s...", addr)
	return http.ListenAndServe(addr, a.Handler())
}
