package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicItemCreated is the Watermill topic published when an Item is created.
const TopicItemCreated = "item.created"

// ItemCreatedEvent is published in the same transaction that inserts a new Item.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated).
type ItemCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     int64     `json:"item_id"`
	OwnerID    int64     `json:"owner_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewItemCreated stamps a version-1 event for a freshly inserted item.
func NewItemCreated(itemID, ownerID int64, name string, at time.Time) ItemCreatedEvent {
	return ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     itemID,
		OwnerID:    ownerID,
		Name:       name,
		OccurredAt: at.UTC(),
	}
}

func (e ItemCreatedEvent) Topic() string { return TopicItemCreated }

func (e ItemCreatedEvent) Identity() (uuid.UUID, int) { return e.EventID, e.Version }
