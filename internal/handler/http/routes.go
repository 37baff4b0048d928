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

	// the feed is a long-lived websocket: no timeout, no compression
	router.Get("/api/notes/feed", h.feed)

	router.Group(func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}
		r.Use(withGZip)

		// routes without authorization
		r.Post("/api/auth/signup", h.signUp)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/version", h.getServerVersion)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/api/notes", h.appendNote)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
