package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// ItemCacheTTL is the time-to-live for cached items.
	ItemCacheTTL = 24 * time.Hour

	itemCacheKeyPrefix = "item"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = redis.Nil

// ErrStale is returned by SetIfUnchanged when the item was invalidated
// between the caller's generation read and the write.
var ErrStale = errors.New("cache: item invalidated since read")

// CachedItem is the base item record without comments or bookings, which
// are always computed per read.
type CachedItem struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// ItemCache stores CachedItem values as Redis hashes under "item:{id}".
type ItemCache struct {
	client *RedisClient
}

// NewItemCache returns nil when r is nil so callers can treat a missing
// Redis connection as "no cache".
func NewItemCache(r *RedisClient) *ItemCache {
	if r == nil {
		return nil
	}
	return &ItemCache{client: r}
}

// Get retrieves a cached item. Returns ErrMiss when the key does not exist.
func (c *ItemCache) Get(ctx context.Context, itemID int64) (*CachedItem, error) {
	vals, err := c.client.Client().HGetAll(ctx, ItemKey(itemID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, ErrMiss
	}
	return decodeItem(vals)
}

// Generation returns the invalidation counter of itemID, 0 if the item was
// never invalidated. Read it before loading the item from the store and pass
// it to SetIfUnchanged.
func (c *ItemCache) Generation(ctx context.Context, itemID int64) (int64, error) {
	gen, err := c.client.Client().Get(ctx, generationKey(itemID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache generation: %w", err)
	}
	return gen, nil
}

// SetIfUnchanged writes item with a 24-hour TTL unless Delete ran for it
// after gen was read, in which case it returns ErrStale and writes nothing.
// The check and the write run in one WATCH/MULTI transaction.
func (c *ItemCache) SetIfUnchanged(ctx context.Context, item *CachedItem, gen int64) error {
	key, genKey := ItemKey(item.ID), generationKey(item.ID)
	err := c.client.Client().Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return ErrStale
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.HSet(ctx, key, encodeItem(item)...)
			p.Expire(ctx, key, ItemCacheTTL)
			return nil
		})
		return err
	}, genKey)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrStale), errors.Is(err, redis.TxFailedErr):
		return ErrStale
	default:
		return fmt.Errorf("cache set: %w", err)
	}
}

// Delete removes a cached item and bumps its generation so that a reader
// holding an older generation cannot put the old record back.
func (c *ItemCache) Delete(ctx context.Context, itemID int64) error {
	genKey := generationKey(itemID)
	_, err := c.client.Client().TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, ItemKey(itemID))
		p.Incr(ctx, genKey)
		p.Expire(ctx, genKey, 2*ItemCacheTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// IsMiss reports whether err is a cache miss rather than a Redis failure.
func IsMiss(err error) bool {
	return errors.Is(err, ErrMiss)
}

// ItemKey builds the Redis key "item:{id}".
func ItemKey(itemID int64) string {
	return itemCacheKeyPrefix + ":" + strconv.FormatInt(itemID, 10)
}

func generationKey(itemID int64) string {
	return ItemKey(itemID) + ":gen"
}

func encodeItem(item *CachedItem) []any {
	requestID := ""
	if item.RequestID != nil {
		requestID = strconv.FormatInt(*item.RequestID, 10)
	}
	return []any{
		"id", strconv.FormatInt(item.ID, 10),
		"owner_id", strconv.FormatInt(item.OwnerID, 10),
		"name", item.Name,
		"description", item.Description,
		"available", strconv.FormatBool(item.Available),
		"request_id", requestID,
	}
}

func decodeItem(vals map[string]string) (*CachedItem, error) {
	id, err := strconv.ParseInt(vals["id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	ownerID, err := strconv.ParseInt(vals["owner_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse owner_id: %w", err)
	}
	available, err := strconv.ParseBool(vals["available"])
	if err != nil {
		return nil, fmt.Errorf("cache parse available: %w", err)
	}

	item := &CachedItem{
		ID:          id,
		OwnerID:     ownerID,
		Name:        vals["name"],
		Description: vals["description"],
		Available:   available,
	}
	if raw := vals["request_id"]; raw != "" {
		rid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cache parse request_id: %w", err)
		}
		item.RequestID = &rid
	}
	return item, nil
}
