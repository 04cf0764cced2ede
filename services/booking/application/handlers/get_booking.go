package handlers

import (
	"net/http"

	"github.com/ghuser/shareit/pkg/auth"
	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	appsvcs "github.com/ghuser/shareit/services/booking/application/services"
	"github.com/ghuser/shareit/services/booking/domain/models"
	"github.com/ghuser/shareit/services/booking/domain/repositories"
)

// GetBookingHandler handles GET /bookings/{bookingID} requests.
type GetBookingHandler struct {
	svc *appsvcs.Services
}

// NewGetBookingHandler returns a GetBookingHandler backed by the given services.
func NewGetBookingHandler(svc *appsvcs.Services) *GetBookingHandler {
	return &GetBookingHandler{svc: svc}
}

// Execute returns a booking to its booker or the item owner.
//
//	@Summary	Get booking
//	@Tags		bookings
//	@Produce	json
//	@Param		X-Sharer-User-Id	header		int	true	"Caller user ID"
//	@Param		bookingID			path		int	true	"Booking ID"
//	@Success	200					{object}	BookingResponse
//	@Failure	404					{object}	errhttp.ErrorResponse
//	@Router		/bookings/{bookingID} [get]
func (h *GetBookingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	bookingID, err := httpx.PathID(r, "bookingID")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	v, err := h.svc.Booking.Get(r.Context(), userID, bookingID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ToBookingResponse(v))
}

// ListBookingsHandler handles GET /bookings and GET /bookings/owner.
type ListBookingsHandler struct {
	svc     *appsvcs.Services
	byOwner bool
}

// NewListBookerBookingsHandler lists bookings the caller made.
func NewListBookerBookingsHandler(svc *appsvcs.Services) *ListBookingsHandler {
	return &ListBookingsHandler{svc: svc}
}

// NewListOwnerBookingsHandler lists bookings of the caller's items.
func NewListOwnerBookingsHandler(svc *appsvcs.Services) *ListBookingsHandler {
	return &ListBookingsHandler{svc: svc, byOwner: true}
}

// Execute lists bookings filtered by state. An unknown state fails before
// pagination is read.
//
//	@Summary	List bookings
//	@Tags		bookings
//	@Produce	json
//	@Param		X-Sharer-User-Id	header	int		true	"Caller user ID"
//	@Param		state				query	string	false	"ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"	default(ALL)
//	@Param		from				query	int		false	"Offset"											default(0)
//	@Param		size				query	int		false	"Page size"											default(10)
//	@Success	200					{array}	BookingResponse
//	@Failure	400					{object}	errhttp.ErrorResponse
//	@Failure	404					{object}	errhttp.ErrorResponse
//	@Router		/bookings [get]
//	@Router		/bookings/owner [get]
func (h *ListBookingsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	state := r.URL.Query().Get("state")
	if _, err := models.ParseState(state); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	page, err := httpx.ParsePage(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	opts := repositories.QueryOpts{Limit: page.Size, Offset: page.From}
	list := h.svc.Booking.ListByBooker
	if h.byOwner {
		list = h.svc.Booking.ListByOwner
	}
	views, err := list(r.Context(), userID, state, opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toBookingResponses(views))
}
