package services

import (
	"github.com/ghuser/shareit/pkg/app"
	"github.com/ghuser/shareit/services/booking/infrastructure/persistence/postgres"
	itempg "github.com/ghuser/shareit/services/item/infrastructure/persistence/postgres"
	userpg "github.com/ghuser/shareit/services/user/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Booking *BookingService
}

// New wires the booking application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	return &Services{
		Booking: NewBookingService(
			postgres.NewBookingRepository(a.Db, a.EventBus),
			itempg.NewItemRepository(a.Db, a.EventBus),
			userpg.NewUserRepository(a.Db),
		),
	}
}
