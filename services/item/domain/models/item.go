package models

import (
	"strings"
)

// Item is the core aggregate for this bounded context: a thing an owner lends out.
type Item struct {
	ID          int64
	OwnerID     int64
	Name        ItemName
	Description string
	Available   bool
	RequestID   *int64 // request this item was listed in answer to, if any
}

// NewItem constructs an unsaved Item. The ID is assigned by the repository.
func NewItem(ownerID int64, name ItemName, description string, available bool, requestID *int64) *Item {
	return &Item{
		OwnerID:     ownerID,
		Name:        name,
		Description: strings.TrimSpace(description),
		Available:   available,
		RequestID:   requestID,
	}
}

// IsOwnedBy reports whether userID listed the item.
func (i *Item) IsOwnedBy(userID int64) bool {
	return i.OwnerID == userID
}

// ItemPatch carries the optional fields of a partial update.
type ItemPatch struct {
	Name        *string
	Description *string
	Available   *bool
}

// Apply copies patch fields onto i. Blank strings are ignored rather than
// overwriting. Returns whether anything changed.
func (i *Item) Apply(p ItemPatch) (bool, error) {
	changed := false
	if p.Name != nil && strings.TrimSpace(*p.Name) != "" {
		name, err := NewItemName(*p.Name)
		if err != nil {
			return false, err
		}
		if name != i.Name {
			i.Name = name
			changed = true
		}
	}
	if p.Description != nil {
		if v := strings.TrimSpace(*p.Description); v != "" && v != i.Description {
			i.Description = v
			changed = true
		}
	}
	if p.Available != nil && *p.Available != i.Available {
		i.Available = *p.Available
		changed = true
	}
	return changed, nil
}
