package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/mesto-api/internal/api"
	"github.com/phrazzld/mesto-api/internal/api/middleware"
	"github.com/phrazzld/mesto-api/internal/api/shared"
)

// routerDeps bundles everything the router needs wired in.
type routerDeps struct {
	logger         *slog.Logger
	authHandler    *api.AuthHandler
	userHandler    *api.UserHandler
	cardHandler    *api.CardHandler
	authMiddleware *middleware.AuthMiddleware
}

// newRouter builds the full route table. Signup, signin and the health check
// are the only routes outside the auth middleware.
func newRouter(deps routerDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Trace(deps.logger))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithJSON(w, req, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/signup", deps.authHandler.Signup)
	r.Post("/signin", deps.authHandler.Signin)

	r.Group(func(r chi.Router) {
		r.Use(deps.authMiddleware.Authenticate)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", deps.userHandler.ListUsers)
			r.Get("/me", deps.userHandler.GetMe)
			r.Patch("/me", deps.userHandler.UpdateProfile)
			r.Patch("/me/avatar", deps.userHandler.UpdateAvatar)
			r.Get("/{userId}", deps.userHandler.GetUser)
		})

		r.Route("/cards", func(r chi.Router) {
			r.Get("/", deps.cardHandler.ListCards)
			r.Post("/", deps.cardHandler.CreateCard)
			r.Delete("/{cardId}", deps.cardHandler.DeleteCard)
			r.Put("/{cardId}/likes", deps.cardHandler.LikeCard)
			r.Delete("/{cardId}/likes", deps.cardHandler.UnlikeCard)
		})
	})

	// Unknown routes get the same error shape as everything else.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithError(w, req, http.StatusNotFound, "Resource not found")
	})

	return r
}
