package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shareit/pkg/app"
	"github.com/ghuser/shareit/pkg/auth"
	"github.com/ghuser/shareit/pkg/logger"
	"github.com/ghuser/shareit/services/item/application/handlers"
	appsvcs "github.com/ghuser/shareit/services/item/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router.
func ItemRoutes(r chi.Router, a *app.Application) {
	Mount(r, appsvcs.New(a), a.Logger)
}

// Mount registers the handlers for svcs. Every item route requires the
// X-Sharer-User-Id header.
func Mount(r chi.Router, svcs *appsvcs.Services, log logger.Logger) {
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSharer(log))
		r.Route("/items", func(r chi.Router) {
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Get("/", handlers.NewListItemsHandler(svcs).Execute)
			r.Get("/search", handlers.NewSearchItemsHandler(svcs).Execute)
			r.Get("/{itemID}", handlers.NewGetItemHandler(svcs).Execute)
			r.Patch("/{itemID}", handlers.NewPatchItemHandler(svcs).Execute)
			r.Post("/{itemID}/comment", handlers.NewPostCommentHandler(svcs).Execute)
		})
	})
}
