package services

import (
	"go.opentelemetry.io/otel"

	"github.com/ghuser/shareit/pkg/app"
	"github.com/ghuser/shareit/services/booking/infrastructure/persistence/postgres"
	itemsvcs "github.com/ghuser/shareit/services/item/application/services"
	userpg "github.com/ghuser/shareit/services/user/infrastructure/persistence/postgres"
)

const meterName = "github.com/ghuser/shareit/services/booking"

// Services is the application-layer service container for this bounded context.
type Services struct {
	Booking *BookingService
}

// New wires the booking services with infrastructure from the Application
// container. Item lookups share the item context's cached repository.
func New(a *app.Application) (*Services, error) {
	svc, err := NewBookingService(
		postgres.NewBookingRepository(a.Db, a.Publisher(), a.Logger),
		itemsvcs.NewItemRepository(a),
		userpg.NewUserRepository(a.Db, a.Logger),
		otel.Meter(meterName),
		a.Logger,
	)
	if err != nil {
		return nil, err
	}
	return &Services{Booking: svc}, nil
}
