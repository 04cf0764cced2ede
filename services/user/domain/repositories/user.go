package repositories

import (
	"context"

	"github.com/ghuser/shareit/services/user/domain/models"
)

// UserRepository is the persistence interface for users.
// The domain layer owns this interface; infrastructure implements it.
type UserRepository interface {
	// Save inserts u and sets its ID. Returns ErrEmailTaken on a duplicate email.
	Save(ctx context.Context, u *models.User) error
	// GetByID returns ErrUserNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// FindAll lists users ordered by ID.
	FindAll(ctx context.Context) ([]*models.User, error)
	// Update writes name and email. Returns ErrEmailTaken on a duplicate email.
	Update(ctx context.Context, u *models.User) error
	// Delete returns ErrUserNotFound when no row was removed.
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
