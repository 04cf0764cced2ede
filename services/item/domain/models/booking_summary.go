package models

import "time"

// BookingSummary is the item context's read-only view of a booking. It backs
// the last/next booking fields and comment eligibility without depending on
// the booking context.
type BookingSummary struct {
	ID       int64
	BookerID int64
	ItemID   int64
	ItemName string
	Start    time.Time
	End      time.Time
	Status   string
}

// StatusRejected mirrors the booking context's REJECTED status.
const StatusRejected = "REJECTED"

// ItemDetails is an item together with its per-read derived data.
type ItemDetails struct {
	Item        *Item
	LastBooking *BookingSummary
	NextBooking *BookingSummary
	Comments    []Comment
}
