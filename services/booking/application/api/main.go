package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shareit/pkg/app"
	"github.com/ghuser/shareit/pkg/auth"
	"github.com/ghuser/shareit/pkg/logger"
	"github.com/ghuser/shareit/services/booking/application/handlers"
	appsvcs "github.com/ghuser/shareit/services/booking/application/services"
)

// BookingRoutes registers booking endpoints on the provided chi router.
func BookingRoutes(r chi.Router, a *app.Application) error {
	svcs, err := appsvcs.New(a)
	if err != nil {
		return err
	}
	Mount(r, svcs, a.Logger)
	return nil
}

// Mount registers the handlers for svcs. Every booking route requires the
// X-Sharer-User-Id header.
func Mount(r chi.Router, svcs *appsvcs.Services, log logger.Logger) {
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSharer(log))
		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", handlers.NewPostBookingHandler(svcs).Execute)
			r.Get("/", handlers.NewListBookerBookingsHandler(svcs).Execute)
			r.Get("/owner", handlers.NewListOwnerBookingsHandler(svcs).Execute)
			r.Get("/{bookingID}", handlers.NewGetBookingHandler(svcs).Execute)
			r.Patch("/{bookingID}", handlers.NewPatchBookingHandler(svcs).Execute)
		})
	})
}
