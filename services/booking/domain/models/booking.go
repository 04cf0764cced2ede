package models

import (
	"time"

	"github.com/ghuser/shareit/services/booking/domain"
	itemmodels "github.com/ghuser/shareit/services/item/domain/models"
	usermodels "github.com/ghuser/shareit/services/user/domain/models"
)

// Status is the approval state of a booking.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Booking reserves an item for a booker over [Start, End].
type Booking struct {
	ID       int64
	ItemID   int64
	BookerID int64
	Start    time.Time
	End      time.Time
	Status   Status
	Version  int // bumped on every status change
}

// NewBooking builds an unsaved WAITING booking. start must precede end.
func NewBooking(itemID, bookerID int64, start, end time.Time) (*Booking, error) {
	if !start.Before(end) {
		return nil, domain.ErrInvalidPeriod
	}
	return &Booking{
		ItemID:   itemID,
		BookerID: bookerID,
		Start:    start.UTC(),
		End:      end.UTC(),
		Status:   StatusWaiting,
	}, nil
}

// Decide moves a WAITING booking to APPROVED or REJECTED. A booking is
// decided exactly once.
func (b *Booking) Decide(approve bool) error {
	switch b.Status {
	case StatusApproved:
		return domain.ErrAlreadyApproved
	case StatusRejected:
		return domain.ErrAlreadyRejected
	}
	if approve {
		b.Status = StatusApproved
	} else {
		b.Status = StatusRejected
	}
	b.Version++
	return nil
}

// BookingView is a booking with its booker and item resolved.
type BookingView struct {
	Booking *Booking
	Booker  *usermodels.User
	Item    *itemmodels.Item
}
