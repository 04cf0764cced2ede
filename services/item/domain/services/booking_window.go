package services

import (
	"time"

	"github.com/ghuser/shareit/services/item/domain"
	"github.com/ghuser/shareit/services/item/domain/models"
)

// LastNext picks the last and next bookings of an item. bookings must be
// ordered by start ascending. The next booking is the first one starting
// after now and the last booking is the one immediately before it. When no
// booking starts after now, both are nil.
func LastNext(bookings []models.BookingSummary, now time.Time) (last, next *models.BookingSummary) {
	for i := range bookings {
		if !bookings[i].Start.After(now) {
			continue
		}
		next = &bookings[i]
		if i > 0 {
			last = &bookings[i-1]
		}
		return last, next
	}
	return nil, nil
}

// CheckCommentEligibility decides whether an author may comment given their
// non-rejected bookings of the item. At least one must have ended before now.
func CheckCommentEligibility(bookings []models.BookingSummary, now time.Time) error {
	if len(bookings) == 0 {
		return domain.ErrNoBookings
	}
	for _, b := range bookings {
		if b.End.Before(now) {
			return nil
		}
	}
	return domain.ErrFutureBooking
}
