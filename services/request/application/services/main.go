package services

import (
	"github.com/ghuser/shareit/pkg/app"
	itemsvcs "github.com/ghuser/shareit/services/item/application/services"
	"github.com/ghuser/shareit/services/request/infrastructure/persistence/postgres"
	userpg "github.com/ghuser/shareit/services/user/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Request *RequestService
}

// New wires the request board with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return &Services{
		Request: NewRequestService(
			postgres.NewRequestRepository(a.Db, a.Logger),
			itemsvcs.NewItemRepository(a),
			userpg.NewUserRepository(a.Db, a.Logger),
			a.Logger,
		),
	}
}
