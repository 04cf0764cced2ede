// Package memory provides an in-memory BookingRepository used by service tests.
package memory

import (
	"context"
	"sort"
	"sync"

	bookingdomain "github.com/ghuser/shareit/services/booking/domain"
	"github.com/ghuser/shareit/services/booking/domain/models"
	"github.com/ghuser/shareit/services/booking/domain/repositories"
	itemmodels "github.com/ghuser/shareit/services/item/domain/models"
	itemrepos "github.com/ghuser/shareit/services/item/domain/repositories"
)

// BookingRepository stores bookings in a map. Owner lookups go through the
// item repository.
type BookingRepository struct {
	mu       sync.Mutex
	bookings map[int64]models.Booking
	nextID   int64
	items    itemrepos.ItemRepository
}

func NewBookingRepository(items itemrepos.ItemRepository) *BookingRepository {
	return &BookingRepository{bookings: make(map[int64]models.Booking), items: items}
}

func (r *BookingRepository) Save(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	b.ID = r.nextID
	r.bookings[b.ID] = *b
	return nil
}

func (r *BookingRepository) GetByID(_ context.Context, id int64) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingdomain.ErrBookingNotFound
	}
	return &b, nil
}

func (r *BookingRepository) UpdateStatus(_ context.Context, b *models.Booking, expectedVersion int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.bookings[b.ID]
	if !ok || stored.Version != expectedVersion || stored.Status != models.StatusWaiting {
		return bookingdomain.ErrVersionConflict
	}
	stored.Status = b.Status
	stored.Version = b.Version
	r.bookings[b.ID] = stored
	return nil
}

func (r *BookingRepository) FindByBooker(_ context.Context, bookerID int64, f repositories.Filter) ([]*models.Booking, error) {
	return r.find(func(b models.Booking) bool { return b.BookerID == bookerID }, f), nil
}

func (r *BookingRepository) FindByOwner(ctx context.Context, ownerID int64, f repositories.Filter) ([]*models.Booking, error) {
	owned := make(map[int64]bool)
	for _, b := range r.all() {
		item, err := r.items.GetByID(ctx, b.ItemID)
		if err != nil {
			continue
		}
		owned[b.ItemID] = item.OwnerID == ownerID
	}
	return r.find(func(b models.Booking) bool { return owned[b.ItemID] }, f), nil
}

// ItemBookings adapts the store to the item context's BookingReader.
func (r *BookingRepository) ItemBookings() itemrepos.BookingReader {
	return itemReader{r}
}

func (r *BookingRepository) all() []models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out
}

func (r *BookingRepository) find(keep func(models.Booking) bool, f repositories.Filter) []*models.Booking {
	out := make([]*models.Booking, 0)
	for _, b := range r.all() {
		if keep(b) && f.State.Matches(&b, f.Now) {
			b := b
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start.Equal(out[j].Start) {
			return out[i].ID < out[j].ID
		}
		return out[i].Start.Before(out[j].Start)
	})
	if !f.State.Ascending() {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	if f.Offset >= len(out) {
		return []*models.Booking{}
	}
	out = out[f.Offset:]
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out
}

type itemReader struct {
	r *BookingRepository
}

func (a itemReader) FindByItem(ctx context.Context, itemID int64) ([]itemmodels.BookingSummary, error) {
	return a.summaries(ctx, func(b models.Booking) bool { return b.ItemID == itemID }), nil
}

func (a itemReader) FindByBookerAndItem(ctx context.Context, bookerID, itemID int64, excludeStatus string) ([]itemmodels.BookingSummary, error) {
	return a.summaries(ctx, func(b models.Booking) bool {
		return b.BookerID == bookerID && b.ItemID == itemID && string(b.Status) != excludeStatus
	}), nil
}

func (a itemReader) summaries(ctx context.Context, keep func(models.Booking) bool) []itemmodels.BookingSummary {
	out := make([]itemmodels.BookingSummary, 0)
	for _, b := range a.r.all() {
		if !keep(b) {
			continue
		}
		s := itemmodels.BookingSummary{
			ID: b.ID, BookerID: b.BookerID, ItemID: b.ItemID,
			Start: b.Start, End: b.End, Status: string(b.Status),
		}
		if item, err := a.r.items.GetByID(ctx, b.ItemID); err == nil {
			s.ItemName = item.Name.String()
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}
