package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", apiKeyHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/apple-music/token", h.developerToken)
		r.Handle("/metrics", promhttp.Handler())
	})

	// routes behind the identity guard (browser clients)
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/auth/apple-music/token", h.storeMusicToken)

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", h.listFavorites)
			r.Post("/", h.addFavorite)
			r.Get("/{songId}", h.getFavorite)
			r.Delete("/{songId}", h.removeFavorite)
		})
	})

	// routes behind the device api-key guard
	router.Group(func(r chi.Router) {
		r.Use(h.apiKeyAuth)

		r.Get("/play/random", h.playRandom)
		r.Get("/play/{songId}", h.playSong)
	})

	return router
}
