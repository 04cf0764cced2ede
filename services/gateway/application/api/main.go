package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shareit/pkg/auth"
	"github.com/ghuser/shareit/pkg/logger"
	bookinghandlers "github.com/ghuser/shareit/services/booking/application/handlers"
	h "github.com/ghuser/shareit/services/gateway/application/handlers"
	itemhandlers "github.com/ghuser/shareit/services/item/application/handlers"
	requesthandlers "github.com/ghuser/shareit/services/request/application/handlers"
	userhandlers "github.com/ghuser/shareit/services/user/application/handlers"
)

// Mount registers the public route table. Each route validates its input
// with the server's request DTOs and forwards to the server on success.
func Mount(r chi.Router, p *h.Proxy, log logger.Logger) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", p.Handle(h.Body[userhandlers.CreateUserRequest]()))
		r.Get("/", p.Handle())
		r.Get("/{userID}", p.Handle(h.PathIDs("userID")))
		r.Patch("/{userID}", p.Handle(h.PathIDs("userID"), h.Body[userhandlers.UpdateUserRequest]()))
		r.Delete("/{userID}", p.Handle(h.PathIDs("userID")))
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSharer(log))

		r.Route("/items", func(r chi.Router) {
			r.Post("/", p.Handle(h.Body[itemhandlers.CreateItemRequest]()))
			r.Get("/", p.Handle(h.Paged()))
			r.Get("/search", p.Handle(h.SearchText(), h.Paged()))
			r.Get("/{itemID}", p.Handle(h.PathIDs("itemID")))
			r.Patch("/{itemID}", p.Handle(h.PathIDs("itemID"), h.Body[itemhandlers.UpdateItemRequest]()))
			r.Post("/{itemID}/comment", p.Handle(h.PathIDs("itemID"), h.Body[itemhandlers.CreateCommentRequest]()))
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", p.Handle(h.Body[bookinghandlers.CreateBookingRequest]()))
			r.Get("/", p.Handle(h.BookingState(), h.Paged()))
			r.Get("/owner", p.Handle(h.BookingState(), h.Paged()))
			r.Get("/{bookingID}", p.Handle(h.PathIDs("bookingID")))
			r.Patch("/{bookingID}", p.Handle(h.PathIDs("bookingID"), h.Approved()))
		})

		r.Route("/requests", func(r chi.Router) {
			r.Post("/", p.Handle(h.Body[requesthandlers.CreateRequestRequest]()))
			r.Get("/", p.Handle())
			r.Get("/all", p.Handle(h.Paged()))
			r.Get("/{requestID}", p.Handle(h.PathIDs("requestID")))
		})
	})
}
