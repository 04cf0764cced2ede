package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ghuser/shareit/pkg/logger"
	itemdomain "github.com/ghuser/shareit/services/item/domain"
	"github.com/ghuser/shareit/services/item/domain/models"
	"github.com/ghuser/shareit/services/item/domain/repositories"
	domainsvcs "github.com/ghuser/shareit/services/item/domain/services"
	userdomain "github.com/ghuser/shareit/services/user/domain"
	userrepos "github.com/ghuser/shareit/services/user/domain/repositories"
)

// CreateItemInput carries the fields of a new listing.
type CreateItemInput struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// ItemService orchestrates listing, search and comments for Items.
// Event publishing is handled by the repository layer (outbox pattern).
// Base item reads go through the cache when the repository is decorated with one.
type ItemService struct {
	items    repositories.ItemRepository
	comments repositories.CommentRepository
	bookings repositories.BookingReader
	requests repositories.RequestReader
	users    userrepos.UserRepository
	log      logger.Logger
	now      func() time.Time
}

// NewItemService returns an ItemService wired with the given repositories.
func NewItemService(
	items repositories.ItemRepository,
	comments repositories.CommentRepository,
	bookings repositories.BookingReader,
	requests repositories.RequestReader,
	users userrepos.UserRepository,
	log logger.Logger,
) *ItemService {
	return &ItemService{
		items:    items,
		comments: comments,
		bookings: bookings,
		requests: requests,
		users:    users,
		log:      log,
		now:      time.Now,
	}
}

// WithClock replaces the time source used for last/next bookings and
// comment eligibility.
func (s *ItemService) WithClock(now func() time.Time) *ItemService {
	s.now = now
	return s
}

// Create validates and persists an Item owned by ownerID. The repository
// publishes ItemCreatedEvent.
func (s *ItemService) Create(ctx context.Context, ownerID int64, in CreateItemInput) (*models.Item, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	if in.RequestID != nil {
		ok, err := s.requests.Exists(ctx, *in.RequestID)
		if err != nil {
			return nil, fmt.Errorf("check request %d: %w", *in.RequestID, err)
		}
		if !ok {
			return nil, itemdomain.ErrRequestNotFound
		}
	}

	name, err := models.NewItemName(in.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
	}
	item := models.NewItem(ownerID, name, in.Description, in.Available, in.RequestID)
	if err := domainsvcs.CheckListing(item); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	if err := s.items.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}
	s.log.InfoContext(ctx, "item created", "item_id", item.ID, "owner_id", ownerID)
	return item, nil
}

// Update applies a partial patch. Only the owner may change an item; anyone
// else gets ErrNotOwner.
func (s *ItemService) Update(ctx context.Context, userID, itemID int64, patch models.ItemPatch) (*models.Item, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	item, err := s.items.GetCurrent(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", itemID, err)
	}
	if !item.IsOwnedBy(userID) {
		return nil, itemdomain.ErrNotOwner
	}

	changed, err := item.Apply(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
	}
	if !changed {
		return item, nil
	}
	if err := domainsvcs.CheckName(item.Name); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
	}
	if err := s.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item %d: %w", itemID, err)
	}
	return item, nil
}

// GetByID returns the item with its comments. Last and next bookings are
// filled only when requesterID owns the item.
func (s *ItemService) GetByID(ctx context.Context, itemID, requesterID int64) (*models.ItemDetails, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", itemID, err)
	}

	details := &models.ItemDetails{Item: item}
	if item.IsOwnedBy(requesterID) {
		if err := s.fillLastNext(ctx, details); err != nil {
			return nil, err
		}
	}

	comments, err := s.comments.FindByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list comments of item %d: %w", itemID, err)
	}
	details.Comments = comments
	return details, nil
}

// ListByOwner returns a page of the owner's items, each with last and next bookings.
func (s *ItemService) ListByOwner(ctx context.Context, ownerID int64, opts repositories.QueryOpts) ([]*models.ItemDetails, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	items, err := s.items.FindByOwner(ctx, ownerID, opts)
	if err != nil {
		return nil, fmt.Errorf("list items of user %d: %w", ownerID, err)
	}

	out := make([]*models.ItemDetails, len(items))
	for i, item := range items {
		out[i] = &models.ItemDetails{Item: item}
		if err := s.fillLastNext(ctx, out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Search finds available items by name or description. Blank text returns
// an empty result without querying storage.
func (s *ItemService) Search(ctx context.Context, text string, opts repositories.QueryOpts) ([]*models.Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []*models.Item{}, nil
	}
	items, err := s.items.Search(ctx, text, opts)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return items, nil
}

// AddComment records feedback from a user whose booking of the item has ended.
func (s *ItemService) AddComment(ctx context.Context, authorID, itemID int64, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, itemdomain.ErrInvalidComment
	}
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, fmt.Errorf("get item %d: %w", itemID, err)
	}
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("get author %d: %w", authorID, err)
	}

	bookings, err := s.bookings.FindByBookerAndItem(ctx, authorID, itemID, models.StatusRejected)
	if err != nil {
		return nil, fmt.Errorf("list bookings of item %d: %w", itemID, err)
	}
	now := s.now()
	if err := domainsvcs.CheckCommentEligibility(bookings, now); err != nil {
		return nil, err
	}

	comment, ok := models.NewComment(itemID, authorID, author.Name, text, now)
	if !ok {
		return nil, itemdomain.ErrInvalidComment
	}
	if err := s.comments.Save(ctx, comment); err != nil {
		return nil, fmt.Errorf("save comment: %w", err)
	}
	s.log.InfoContext(ctx, "comment added", "item_id", itemID, "author_id", authorID, "comment_id", comment.ID)
	return comment, nil
}

func (s *ItemService) fillLastNext(ctx context.Context, d *models.ItemDetails) error {
	bookings, err := s.bookings.FindByItem(ctx, d.Item.ID)
	if err != nil {
		return fmt.Errorf("list bookings of item %d: %w", d.Item.ID, err)
	}
	d.LastBooking, d.NextBooking = domainsvcs.LastNext(bookings, s.now())
	return nil
}

func (s *ItemService) requireUser(ctx context.Context, userID int64) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user %d: %w", userID, err)
	}
	if !ok {
		return userdomain.ErrUserNotFound
	}
	return nil
}
