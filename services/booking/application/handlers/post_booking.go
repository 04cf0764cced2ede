package handlers

import (
	"net/http"

	"github.com/ghuser/shareit/pkg/auth"
	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	pkgvalidator "github.com/ghuser/shareit/pkg/validator"
	appsvcs "github.com/ghuser/shareit/services/booking/application/services"
)

// PostBookingHandler handles POST /bookings requests.
type PostBookingHandler struct {
	svc *appsvcs.Services
}

// NewPostBookingHandler returns a PostBookingHandler backed by the given services.
func NewPostBookingHandler(svc *appsvcs.Services) *PostBookingHandler {
	return &PostBookingHandler{svc: svc}
}

// Execute requests a booking of someone else's available item.
//
//	@Summary		Create booking
//	@Description	Books an available item; the booking starts WAITING for the owner's decision
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		int						true	"Caller user ID"
//	@Param			request				body		CreateBookingRequest	true	"Booking request"
//	@Success		201					{object}	BookingResponse
//	@Failure		400					{object}	errhttp.ErrorResponse
//	@Failure		404					{object}	errhttp.ErrorResponse
//	@Router			/bookings [post]
func (h *PostBookingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateBookingRequest](w, r)
	if !ok {
		return
	}

	v, err := h.svc.Booking.Create(r.Context(), userID, appsvcs.CreateBookingInput{
		ItemID: *req.ItemID,
		Start:  req.Start,
		End:    req.End,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, ToBookingResponse(v))
}
