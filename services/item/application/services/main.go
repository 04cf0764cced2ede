package services

import (
	"github.com/ghuser/shareit/pkg/app"
	"github.com/ghuser/shareit/services/item/domain/repositories"
	"github.com/ghuser/shareit/services/item/infrastructure/persistence/cached"
	"github.com/ghuser/shareit/services/item/infrastructure/persistence/postgres"
	userpg "github.com/ghuser/shareit/services/user/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all item application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return &Services{
		Item: NewItemService(
			NewItemRepository(a),
			postgres.NewCommentRepository(a.Db, a.Logger),
			postgres.NewBookingReader(a.Db, a.Logger),
			postgres.NewRequestReader(a.Db),
			userpg.NewUserRepository(a.Db, a.Logger),
			a.Logger,
		),
	}
}

// NewItemRepository returns the Postgres item repository, read through the
// Redis item cache when one is configured. Other contexts use it for item lookups.
func NewItemRepository(a *app.Application) repositories.ItemRepository {
	var repo repositories.ItemRepository = postgres.NewItemRepository(a.Db, a.Publisher(), a.Logger)
	if c := a.ItemCache(); c != nil {
		repo = cached.NewItemRepository(repo, c, a.Logger)
	}
	return repo
}
