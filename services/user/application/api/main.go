package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shareit/pkg/app"
	"github.com/ghuser/shareit/services/user/application/handlers"
	appsvcs "github.com/ghuser/shareit/services/user/application/services"
)

// UserRoutes registers user endpoints on the provided chi router.
func UserRoutes(r chi.Router, a *app.Application) {
	Mount(r, appsvcs.New(a))
}

// Mount registers the handlers for svcs. Tests call it with in-memory services.
func Mount(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", handlers.NewPostUserHandler(svcs).Execute)
		r.Get("/", handlers.NewListUsersHandler(svcs).Execute)
		r.Get("/{userID}", handlers.NewGetUserHandler(svcs).Execute)
		r.Patch("/{userID}", handlers.NewPatchUserHandler(svcs).Execute)
		r.Delete("/{userID}", handlers.NewDeleteUserHandler(svcs).Execute)
	})
}
