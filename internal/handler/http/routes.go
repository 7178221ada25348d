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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.health)
		r.Get("/version", h.version)
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.listNotifications)
			r.Post("/", h.createNotification)
			r.Put("/", h.replaceNotifications)
			r.Put("/{id}", h.updateNotification)
			r.Delete("/{id}", h.deleteNotification)
		})

		r.Route("/user/me", func(r chi.Router) {
			r.Get("/", h.getMe)
			r.Put("/", h.updateMe)
			r.Post("/password", h.changePassword)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
