package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"givewise/internal/http/handlers"
	"givewise/internal/middleware"
)

// NewRouter wires the API routes with the standard middleware chain.
func NewRouter(app *handlers.App, log zerolog.Logger) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.RealIP, chimw.Recoverer, middleware.Logger(log))

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/charities", app.CharitiesList)
	r.Post("/v1/matches", app.MatchesCreate)
	r.Post("/v1/plans", app.PlansCreate)

	return r
}
