package handlers

import (
	"time"

	"github.com/ghuser/shareit/services/booking/domain/models"
	itemhandlers "github.com/ghuser/shareit/services/item/application/handlers"
	userhandlers "github.com/ghuser/shareit/services/user/application/handlers"
)

// CreateBookingRequest is the request body for POST /bookings.
type CreateBookingRequest struct {
	ItemID *int64    `json:"itemId" validate:"required,gt=0"                       example:"1"`
	Start  time.Time `json:"start"  validate:"required,notpast"                    example:"2025-06-02T10:00:00Z"`
	End    time.Time `json:"end"    validate:"required,notpast,gtfield=Start"      example:"2025-06-04T10:00:00Z"`
} // @name CreateBookingRequest

// BookingResponse is the public view of a booking with booker and item embedded.
type BookingResponse struct {
	ID     int64                     `json:"id"     example:"5"`
	Status string                    `json:"status" example:"WAITING"`
	Booker userhandlers.UserResponse `json:"booker"`
	Item   itemhandlers.ItemResponse `json:"item"`
	Start  time.Time                 `json:"start"  example:"2025-06-02T10:00:00Z"`
	End    time.Time                 `json:"end"    example:"2025-06-04T10:00:00Z"`
} // @name BookingResponse

// ToBookingResponse maps a resolved booking to its transfer object.
func ToBookingResponse(v *models.BookingView) BookingResponse {
	return BookingResponse{
		ID:     v.Booking.ID,
		Status: string(v.Booking.Status),
		Booker: userhandlers.ToUserResponse(v.Booker),
		Item:   itemhandlers.ToItemResponse(v.Item),
		Start:  v.Booking.Start,
		End:    v.Booking.End,
	}
}

func toBookingResponses(views []*models.BookingView) []BookingResponse {
	out := make([]BookingResponse, len(views))
	for i, v := range views {
		out[i] = ToBookingResponse(v)
	}
	return out
}
