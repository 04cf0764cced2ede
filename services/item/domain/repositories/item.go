package repositories

import (
	"context"

	"github.com/ghuser/shareit/services/item/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ItemRepository interface {
	// Save inserts item, sets its ID and publishes item.created in the same transaction.
	Save(ctx context.Context, item *models.Item) error
	// GetByID returns ErrItemNotFound when no row matches. The result may come
	// from a cache and lag behind recent updates.
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	// GetCurrent reads the committed row, never a cached copy. Use it when the
	// item's ownership or availability drives a decision or a write.
	GetCurrent(ctx context.Context, id int64) (*models.Item, error)

	// FindByOwner lists the owner's items ordered by ID ascending.
	FindByOwner(ctx context.Context, ownerID int64, opts QueryOpts) ([]*models.Item, error)

	// Search returns available items whose name or description contains text,
	// case-insensitively, ordered by ID.
	Search(ctx context.Context, text string, opts QueryOpts) ([]*models.Item, error)

	// FindByRequestIDs returns every item listed in answer to one of requestIDs.
	FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*models.Item, error)

	// Update persists name, description and availability.
	Update(ctx context.Context, item *models.Item) error
}

// CommentRepository stores item comments.
type CommentRepository interface {
	// Save inserts c and sets its ID.
	Save(ctx context.Context, c *models.Comment) error
	// FindByItem lists an item's comments, newest first, with author names.
	FindByItem(ctx context.Context, itemID int64) ([]models.Comment, error)
}

// BookingReader is the item context's read-only access to bookings.
type BookingReader interface {
	// FindByItem returns all bookings of the item ordered by start ascending.
	FindByItem(ctx context.Context, itemID int64) ([]models.BookingSummary, error)
	// FindByBookerAndItem returns the booker's bookings of the item whose
	// status differs from excludeStatus.
	FindByBookerAndItem(ctx context.Context, bookerID, itemID int64, excludeStatus string) ([]models.BookingSummary, error)
}

// RequestReader checks item request references without depending on the
// request context.
type RequestReader interface {
	Exists(ctx context.Context, requestID int64) (bool, error)
}
