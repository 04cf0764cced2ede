package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shareit/pkg/app"
	"github.com/ghuser/shareit/pkg/auth"
	"github.com/ghuser/shareit/pkg/logger"
	"github.com/ghuser/shareit/services/request/application/handlers"
	appsvcs "github.com/ghuser/shareit/services/request/application/services"
)

// RequestRoutes registers request board endpoints on the provided chi router.
func RequestRoutes(r chi.Router, a *app.Application) {
	Mount(r, appsvcs.New(a), a.Logger)
}

// Mount registers the handlers for svcs behind the sharer header check.
func Mount(r chi.Router, svcs *appsvcs.Services, log logger.Logger) {
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSharer(log))
		r.Route("/requests", func(r chi.Router) {
			r.Post("/", handlers.NewPostRequestHandler(svcs).Execute)
			r.Get("/", handlers.NewListOwnRequestsHandler(svcs).Execute)
			r.Get("/all", handlers.NewListAllRequestsHandler(svcs).Execute)
			r.Get("/{requestID}", handlers.NewGetRequestHandler(svcs).Execute)
		})
	})
}
