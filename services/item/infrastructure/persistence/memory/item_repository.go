// Package memory provides in-memory item repositories used by service tests
// across bounded contexts.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	itemdomain "github.com/ghuser/shareit/services/item/domain"
	"github.com/ghuser/shareit/services/item/domain/models"
	"github.com/ghuser/shareit/services/item/domain/repositories"
)

// ItemRepository stores items in a map.
type ItemRepository struct {
	mu     sync.Mutex
	items  map[int64]models.Item
	nextID int64
}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[int64]models.Item)}
}

func (r *ItemRepository) Save(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = *item
	return nil
}

func (r *ItemRepository) GetByID(_ context.Context, id int64) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, itemdomain.ErrItemNotFound
	}
	return &item, nil
}

func (r *ItemRepository) GetCurrent(ctx context.Context, id int64) (*models.Item, error) {
	return r.GetByID(ctx, id)
}

func (r *ItemRepository) FindByOwner(_ context.Context, ownerID int64, opts repositories.QueryOpts) ([]*models.Item, error) {
	return r.filter(func(i models.Item) bool { return i.OwnerID == ownerID }, opts), nil
}

func (r *ItemRepository) Search(_ context.Context, text string, opts repositories.QueryOpts) ([]*models.Item, error) {
	needle := strings.ToLower(text)
	return r.filter(func(i models.Item) bool {
		return i.Available && (strings.Contains(strings.ToLower(i.Name.String()), needle) ||
			strings.Contains(strings.ToLower(i.Description), needle))
	}, opts), nil
}

func (r *ItemRepository) FindByRequestIDs(_ context.Context, requestIDs []int64) ([]*models.Item, error) {
	wanted := make(map[int64]bool, len(requestIDs))
	for _, id := range requestIDs {
		wanted[id] = true
	}
	return r.filter(func(i models.Item) bool {
		return i.RequestID != nil && wanted[*i.RequestID]
	}, repositories.QueryOpts{}), nil
}

func (r *ItemRepository) Update(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return itemdomain.ErrItemNotFound
	}
	r.items[item.ID] = *item
	return nil
}

// filter returns matches ordered by ID. A zero Limit means no limit.
func (r *ItemRepository) filter(keep func(models.Item) bool, opts repositories.QueryOpts) []*models.Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.Item, 0)
	for _, item := range r.items {
		if keep(item) {
			item := item
			out = append(out, &item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	if opts.Offset >= len(out) {
		return []*models.Item{}
	}
	out = out[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out
}

// CommentRepository stores comments in insertion order.
type CommentRepository struct {
	mu       sync.Mutex
	comments []models.Comment
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

func (r *CommentRepository) Save(_ context.Context, c *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = int64(len(r.comments) + 1)
	r.comments = append(r.comments, *c)
	return nil
}

func (r *CommentRepository) FindByItem(_ context.Context, itemID int64) ([]models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Comment, 0)
	for _, c := range r.comments {
		if c.ItemID == itemID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Created.Equal(out[j].Created) {
			return out[i].ID > out[j].ID
		}
		return out[i].Created.After(out[j].Created)
	})
	return out, nil
}

// BookingReader serves fixed booking summaries.
type BookingReader struct {
	mu       sync.Mutex
	bookings []models.BookingSummary
}

func NewBookingReader(bookings ...models.BookingSummary) *BookingReader {
	return &BookingReader{bookings: bookings}
}

// Add appends a booking summary.
func (r *BookingReader) Add(b models.BookingSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, b)
}

func (r *BookingReader) FindByItem(_ context.Context, itemID int64) ([]models.BookingSummary, error) {
	return r.match(func(b models.BookingSummary) bool { return b.ItemID == itemID }), nil
}

func (r *BookingReader) FindByBookerAndItem(_ context.Context, bookerID, itemID int64, excludeStatus string) ([]models.BookingSummary, error) {
	return r.match(func(b models.BookingSummary) bool {
		return b.BookerID == bookerID && b.ItemID == itemID && b.Status != excludeStatus
	}), nil
}

func (r *BookingReader) match(keep func(models.BookingSummary) bool) []models.BookingSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.BookingSummary, 0)
	for _, b := range r.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

// RequestReader reports a fixed set of request IDs as existing.
type RequestReader struct {
	mu  sync.Mutex
	ids map[int64]bool
}

func NewRequestReader(ids ...int64) *RequestReader {
	r := &RequestReader{ids: make(map[int64]bool)}
	for _, id := range ids {
		r.ids[id] = true
	}
	return r
}

func (r *RequestReader) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ids[id], nil
}
