package repositories

import (
	"context"

	"github.com/ghuser/shareit/services/request/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int
	Offset int
}

// RequestRepository is the persistence interface for item requests.
type RequestRepository interface {
	// Save inserts r and sets its ID.
	Save(ctx context.Context, r *models.ItemRequest) error
	// GetByID returns ErrRequestNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*models.ItemRequest, error)
	// FindByRequester lists the user's own requests, newest first.
	FindByRequester(ctx context.Context, requesterID int64) ([]*models.ItemRequest, error)
	// FindOthers pages through everyone else's requests, newest first.
	FindOthers(ctx context.Context, userID int64, opts QueryOpts) ([]*models.ItemRequest, error)
}
