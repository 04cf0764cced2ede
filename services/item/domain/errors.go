package domain

import "github.com/ghuser/shareit/pkg/apperror"

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = apperror.NotFound("item not found")

	// ErrNotOwner hides the item from a non-owner trying to change it.
	ErrNotOwner = apperror.NotFound("item does not belong to this user")

	// ErrRequestNotFound indicates the item references a missing item request.
	ErrRequestNotFound = apperror.NotFound("request not found")

	// ErrInvalidItemName indicates the item name violates domain constraints.
	ErrInvalidItemName = apperror.Invalid("invalid item name")

	// ErrInvalidItem indicates a blank description or missing owner.
	ErrInvalidItem = apperror.Invalid("invalid item")

	// ErrInvalidComment indicates blank comment text.
	ErrInvalidComment = apperror.Invalid("comment text must not be blank")

	// ErrNoBookings indicates the author never booked the item (rejected bookings excluded).
	ErrNoBookings = apperror.Invalid("item has no bookings by this user")

	// ErrFutureBooking indicates the author's bookings have not ended yet.
	ErrFutureBooking = apperror.Invalid("comment cannot be left for a future booking")
)
