package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DoyleJ11/lcu-autopick/internal/config"
	"github.com/DoyleJ11/lcu-autopick/internal/engine"
	"github.com/DoyleJ11/lcu-autopick/internal/notify"
	"github.com/DoyleJ11/lcu-autopick/internal/ws"
)

// SetupRoutes builds the loopback UI surface with the engine and hub
// injected.
func SetupRoutes(eng *engine.Engine, hub *notify.Hub, settings *config.Store) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", Healthz)
	r.Get("/status", Status(eng))
	r.Get("/settings", GetSettings(settings))
	r.Put("/settings", PutSettings(settings))
	r.Get("/ws", ws.Handler(hub))
	return r
}
