package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/shareit/pkg/apperror"
	"github.com/ghuser/shareit/pkg/auth"
	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	appsvcs "github.com/ghuser/shareit/services/booking/application/services"
)

var errApprovedParam = apperror.Invalid("approved must be true or false")

// PatchBookingHandler handles PATCH /bookings/{bookingID}?approved= requests.
type PatchBookingHandler struct {
	svc *appsvcs.Services
}

// NewPatchBookingHandler returns a PatchBookingHandler backed by the given services.
func NewPatchBookingHandler(svc *appsvcs.Services) *PatchBookingHandler {
	return &PatchBookingHandler{svc: svc}
}

// Execute approves or rejects a WAITING booking of the caller's item.
//
//	@Summary	Decide booking
//	@Tags		bookings
//	@Produce	json
//	@Param		X-Sharer-User-Id	header		int		true	"Caller user ID"
//	@Param		bookingID			path		int		true	"Booking ID"
//	@Param		approved			query		bool	true	"Approve (true) or reject (false)"
//	@Success	200					{object}	BookingResponse
//	@Failure	400					{object}	errhttp.ErrorResponse
//	@Failure	404					{object}	errhttp.ErrorResponse
//	@Router		/bookings/{bookingID} [patch]
func (h *PatchBookingHandler) Execute(w http.ResponseWriter, r *http.Request) {
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
	approved, err := strconv.ParseBool(r.URL.Query().Get("approved"))
	if err != nil {
		errhttp.WriteError(w, errApprovedParam)
		return
	}

	v, err := h.svc.Booking.Decide(r.Context(), userID, bookingID, approved)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ToBookingResponse(v))
}
