package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"givewise/internal/catalog"
	"givewise/internal/pipeline"
)

// App bundles the handler dependencies: the pipeline runner, the catalog
// store, and a logger.
type App struct {
	Runner  *pipeline.Runner
	Store   *catalog.Store
	Horizon int
	Log     zerolog.Logger
}

// NewApp creates the handler container.
func NewApp(runner *pipeline.Runner, store *catalog.Store, horizonMonths int, log zerolog.Logger) *App {
	if horizonMonths <= 0 {
		horizonMonths = pipeline.DefaultHorizonMonths
	}
	return &App{Runner: runner, Store: store, Horizon: horizonMonths, Log: log}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, message string) {
	a.json(w, code, map[string]any{"error": map[string]string{"code": kind, "message": message}})
}

// Health reports service liveness.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
