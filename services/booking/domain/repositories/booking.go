package repositories

import (
	"context"
	"time"

	"github.com/ghuser/shareit/services/booking/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int
	Offset int
}

// Filter selects a state-filtered page of bookings as of Now.
type Filter struct {
	State models.State
	Now   time.Time
	QueryOpts
}

// BookingRepository is the persistence interface for bookings.
// The domain layer owns this interface; infrastructure implements it.
type BookingRepository interface {
	// Save inserts a WAITING booking, sets its ID and publishes booking.created
	// in the same transaction.
	Save(ctx context.Context, b *models.Booking) error
	// GetByID returns ErrBookingNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*models.Booking, error)
	// UpdateStatus writes b.Status and b.Version if the stored row is still
	// WAITING at expectedVersion, then publishes booking.status_changed.
	// Returns ErrVersionConflict otherwise.
	UpdateStatus(ctx context.Context, b *models.Booking, expectedVersion int) error
	// FindByBooker lists bookings made by bookerID.
	FindByBooker(ctx context.Context, bookerID int64, f Filter) ([]*models.Booking, error)
	// FindByOwner lists bookings of items owned by ownerID.
	FindByOwner(ctx context.Context, ownerID int64, f Filter) ([]*models.Booking, error)
}
