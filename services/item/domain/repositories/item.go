package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/shareit/services/item/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ItemRepository interface {
	// Save persists a new item. Returns ErrItemAlreadyExists on a unique
	// constraint violation.
	Save(ctx context.Context, item *models.Item) error

	// Update persists changes to an existing item. Returns
	// ErrItemAlreadyExists on a unique constraint violation.
	Update(ctx context.Context, item *models.Item) error

	// GetByID returns ErrItemNotFound when no item matches.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)

	// FindByOwner retrieves the owner's items ordered by id ascending.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, opts QueryOpts) ([]*models.Item, error)

	// Search returns available items whose name or description contains text
	// case-insensitively. Callers must short-circuit blank text before
	// reaching the repository.
	Search(ctx context.Context, text string, opts QueryOpts) ([]*models.Item, error)

	// FindByRequestIDs returns items listed against any of the given requests.
	FindByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) ([]*models.Item, error)

	// Delete removes an item by id. No ownership check — the catalog exposes
	// unconditional deletion.
	Delete(ctx context.Context, id uuid.UUID) error
}
