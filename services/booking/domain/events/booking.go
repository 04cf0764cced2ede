package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the booking context.
const (
	TopicBookingCreated       = "booking.created"
	TopicBookingStatusChanged = "booking.status_changed"
)

// BookingCreatedEvent is published in the same transaction that inserts a booking.
type BookingCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	BookingID  int64     `json:"booking_id"`
	ItemID     int64     `json:"item_id"`
	BookerID   int64     `json:"booker_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewBookingCreated(bookingID, itemID, bookerID int64, start, end, at time.Time) BookingCreatedEvent {
	return BookingCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		BookingID:  bookingID,
		ItemID:     itemID,
		BookerID:   bookerID,
		Start:      start.UTC(),
		End:        end.UTC(),
		OccurredAt: at.UTC(),
	}
}

func (e BookingCreatedEvent) Topic() string { return TopicBookingCreated }

func (e BookingCreatedEvent) Identity() (uuid.UUID, int) { return e.EventID, e.Version }

// BookingStatusChangedEvent is published when the owner approves or rejects a booking.
type BookingStatusChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	BookingID  int64     `json:"booking_id"`
	ItemID     int64     `json:"item_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewBookingStatusChanged(bookingID, itemID int64, status string, at time.Time) BookingStatusChangedEvent {
	return BookingStatusChangedEvent{
		EventID:    uuid.New(),
		Version:    1,
		BookingID:  bookingID,
		ItemID:     itemID,
		Status:     status,
		OccurredAt: at.UTC(),
	}
}

func (e BookingStatusChangedEvent) Topic() string { return TopicBookingStatusChanged }

func (e BookingStatusChangedEvent) Identity() (uuid.UUID, int) { return e.EventID, e.Version }
