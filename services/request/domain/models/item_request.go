package models

import (
	"strings"
	"time"

	"github.com/ghuser/shareit/services/request/domain"
	itemmodels "github.com/ghuser/shareit/services/item/domain/models"
)

// ItemRequest is a user's public ask for an item nobody has listed yet.
type ItemRequest struct {
	ID          int64     `db:"id"`
	Description string    `db:"description"`
	RequesterID int64     `db:"requester_id"`
	Created     time.Time `db:"created"`
}

// NewItemRequest builds an unsaved request stamped with created.
func NewItemRequest(requesterID int64, description string, created time.Time) (*ItemRequest, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, domain.ErrInvalidRequest
	}
	return &ItemRequest{
		Description: description,
		RequesterID: requesterID,
		Created:     created.UTC(),
	}, nil
}

// RequestWithItems is a request with the items listed in answer to it.
type RequestWithItems struct {
	Request *ItemRequest
	Items   []*itemmodels.Item
}
