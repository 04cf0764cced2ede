// Package cached decorates the item repository with a read-through Redis cache
// of the base item record.
package cached

import (
	"context"
	"errors"

	"github.com/ghuser/shareit/pkg/cache"
	"github.com/ghuser/shareit/pkg/logger"
	"github.com/ghuser/shareit/services/item/domain/models"
	"github.com/ghuser/shareit/services/item/domain/repositories"
)

// ItemCache is the subset of *cache.ItemCache the decorator uses.
type ItemCache interface {
	Get(ctx context.Context, itemID int64) (*cache.CachedItem, error)
	Generation(ctx context.Context, itemID int64) (int64, error)
	SetIfUnchanged(ctx context.Context, item *cache.CachedItem, gen int64) error
	Delete(ctx context.Context, itemID int64) error
}

// ItemRepository serves GetByID from the cache and drops the key on Update.
// GetCurrent always reads the store.
// Cache failures are logged and never fail the call.
type ItemRepository struct {
	repositories.ItemRepository
	cache ItemCache
	log   logger.Logger
}

func NewItemRepository(next repositories.ItemRepository, c ItemCache, log logger.Logger) *ItemRepository {
	return &ItemRepository{ItemRepository: next, cache: c, log: log.With("repository", "item_cache")}
}

// GetByID serves hits from the cache. On a miss it loads the row and fills
// the cache only if no Update invalidated the item in the meantime.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	hit, err := r.cache.Get(ctx, id)
	if err == nil {
		return FromCached(hit), nil
	}
	if !cache.IsMiss(err) {
		r.log.WarnContext(ctx, "item cache read failed", "item_id", id, "error", err)
	}

	gen, genErr := r.cache.Generation(ctx, id)
	item, err := r.ItemRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if genErr != nil {
		r.log.WarnContext(ctx, "item cache generation read failed", "item_id", id, "error", genErr)
		return item, nil
	}
	Fill(ctx, r.cache, item, gen, r.log)
	return item, nil
}

// GetCurrent bypasses the cache.
func (r *ItemRepository) GetCurrent(ctx context.Context, id int64) (*models.Item, error) {
	return r.ItemRepository.GetByID(ctx, id)
}

func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	if err := r.ItemRepository.Update(ctx, item); err != nil {
		return err
	}
	if err := r.cache.Delete(ctx, item.ID); err != nil {
		r.log.WarnContext(ctx, "item cache invalidation failed", "item_id", item.ID, "error", err)
	}
	return nil
}

// Fill stores item under generation gen and reports whether it was written.
// A concurrent invalidation makes it a no-op; other failures are logged.
func Fill(ctx context.Context, c ItemCache, item *models.Item, gen int64, log logger.Logger) bool {
	err := c.SetIfUnchanged(ctx, ToCached(item), gen)
	switch {
	case err == nil:
		return true
	case errors.Is(err, cache.ErrStale):
		log.DebugContext(ctx, "item changed while loading, cache fill skipped", "item_id", item.ID)
	default:
		log.WarnContext(ctx, "item cache write failed", "item_id", item.ID, "error", err)
	}
	return false
}

// ToCached converts an item into its cached form.
func ToCached(item *models.Item) *cache.CachedItem {
	return &cache.CachedItem{
		ID:          item.ID,
		OwnerID:     item.OwnerID,
		Name:        item.Name.String(),
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
	}
}

// FromCached converts a cached record back into an item.
func FromCached(c *cache.CachedItem) *models.Item {
	return &models.Item{
		ID:          c.ID,
		OwnerID:     c.OwnerID,
		Name:        models.ItemName(c.Name),
		Description: c.Description,
		Available:   c.Available,
		RequestID:   c.RequestID,
	}
}
