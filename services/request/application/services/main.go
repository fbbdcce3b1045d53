package services

import (
	"github.com/ghuser/shareit/pkg/app"
	itempg "github.com/ghuser/shareit/services/item/infrastructure/persistence/postgres"
	"github.com/ghuser/shareit/services/request/infrastructure/persistence/postgres"
	userpg "github.com/ghuser/shareit/services/user/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Request *RequestService
}

// New wires the request application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	return &Services{
		Request: NewRequestService(
			postgres.NewRequestRepository(a.Db),
			itempg.NewItemRepository(a.Db, a.EventBus),
			userpg.NewUserRepository(a.Db),
		),
	}
}
