package services

import (
	"github.com/ghuser/shareit/pkg/app"
	pkgcache "github.com/ghuser/shareit/pkg/cache"
	bookingpg "github.com/ghuser/shareit/services/booking/infrastructure/persistence/postgres"
	"github.com/ghuser/shareit/services/item/infrastructure/persistence/postgres"
	requestpg "github.com/ghuser/shareit/services/request/infrastructure/persistence/postgres"
	userpg "github.com/ghuser/shareit/services/user/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Item *ItemService
}

// New wires the item application services with infrastructure from the
// Application container. Redis is optional; without it reads go straight to
// Postgres.
func New(a *app.Application) *Services {
	var itemCache *pkgcache.ItemCache
	if a.Redis != nil {
		itemCache = pkgcache.NewItemCache(a.Redis)
	}

	return &Services{
		Item: NewItemService(
			postgres.NewItemRepository(a.Db, a.EventBus),
			postgres.NewCommentRepository(a.Db),
			userpg.NewUserRepository(a.Db),
			requestpg.NewRequestRepository(a.Db),
			bookingpg.NewBookingRepository(a.Db, a.EventBus),
			itemCache,
		),
	}
}
