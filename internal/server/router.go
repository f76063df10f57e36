package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Vovarama1992/insight-advisor-bridge/internal/advisor"
	"github.com/Vovarama1992/insight-advisor-bridge/internal/telemetry"
)

type Options struct {
	AllowedOrigins []string
	Tracing        bool
}

func New(opts Options, chatHandler *advisor.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	if opts.Tracing {
		r.Use(telemetry.Middleware("http.server"))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	advisor.RegisterRoutes(r, chatHandler)

	return r
}
