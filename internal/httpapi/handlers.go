package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/DoyleJ11/lcu-autopick/internal/config"
	"github.com/DoyleJ11/lcu-autopick/internal/engine"
	"github.com/DoyleJ11/lcu-autopick/internal/types"
)

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Status reflects the engine's loop-owned state through a reply channel.
func Status(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply := make(chan types.StatusSnapshot, 1)
		eng.Post(engine.StateQuery{Reply: reply})

		select {
		case snap := <-reply:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(snap)
		case <-time.After(2 * time.Second):
			http.Error(w, "engine busy", http.StatusServiceUnavailable)
		case <-r.Context().Done():
		}
	}
}

func GetSettings(store *config.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(store.Current())
	}
}

// PutSettings replaces the live settings; the engine reads them on its next
// decision point.
func PutSettings(store *config.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var s config.Settings
		if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if s.Region != "" {
			if _, ok := config.Routing(s.Region); !ok {
				http.Error(w, "unknown region", http.StatusBadRequest)
				return
			}
		}
		store.Replace(s)
		w.WriteHeader(http.StatusNoContent)
	}
}
