package domain

import "github.com/ghuser/shareit/pkg/apperror"

// Sentinel errors for the booking domain. Use errors.Is() to check these.
var (
	ErrBookingNotFound = apperror.NotFound("booking not found")

	// ErrOwnItem hides an owner's own item from them when they try to book it.
	ErrOwnItem = apperror.NotFound("item not found")

	ErrItemUnavailable = apperror.Invalid("item is not available")
	ErrInvalidPeriod   = apperror.Invalid("booking start must be before end")

	// ErrNotItemOwner is returned when someone other than the owner decides a booking.
	ErrNotItemOwner = apperror.NotFound("only the item owner can change booking status")

	// ErrNotParticipant is returned when a user other than the booker or owner reads a booking.
	ErrNotParticipant = apperror.NotFound("user is neither the item owner nor the booker")

	ErrAlreadyApproved = apperror.Invalid("booking is already approved")
	ErrAlreadyRejected = apperror.Invalid("booking is already rejected")

	// ErrUnknownState is returned for a list filter outside the known states.
	ErrUnknownState = apperror.Invalid("Unknown state: UNSUPPORTED_STATUS")

	// ErrVersionConflict is returned by the repository when the stored version
	// no longer matches. Services translate it into an invalid-state error.
	ErrVersionConflict = apperror.Conflict("booking was modified concurrently")
)
