package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/shares", func(r chi.Router) {
			r.Post("/", h.createShare)
			r.Delete("/", h.revokeShare)
			r.Get("/", h.listOwnerShares)
			r.Get("/received", h.listReceivedShares)
			r.Get("/{id}/file", h.downloadSharedFile)
		})

		r.Route("/api/vault/keys", func(r chi.Router) {
			r.Post("/", h.saveVaultKeys)
			r.Get("/", h.getVaultKeys)
		})
	})

	return router
}
