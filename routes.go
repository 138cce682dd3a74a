package main

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"secure-notes/handlers"
	appmw "secure-notes/middleware"
	"secure-notes/token"
)

func newRouter(h *handlers.Handler, tokens *token.Service, log *zap.Logger, isProd bool) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(appmw.SecurityHeaders(isProd))

	r.Get("/", h.Index)
	r.Get("/health", h.Health)
	r.Get("/register", h.RegisterPage)
	r.Post("/register", h.Register)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.Login)
	r.Get("/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(appmw.Auth(tokens, log))
		r.Get("/dashboard", h.Dashboard)
		r.Get("/api/notes", h.GetNotes)
		r.Post("/api/notes", h.CreateNote)
		r.Put("/api/notes/{id}", h.UpdateNote)
		r.Delete("/api/notes/{id}", h.DeleteNote)
	})

	return r
}
