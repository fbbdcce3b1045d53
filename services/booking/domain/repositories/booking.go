package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shareit/services/booking/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// BookingRepository is the persistence interface for the Booking aggregate.
// State-category queries take the caller's single captured "now" so both ends
// of the CURRENT window compare against the same instant.
type BookingRepository interface {
	Save(ctx context.Context, booking *models.Booking) error

	// Update persists a status transition.
	Update(ctx context.Context, booking *models.Booking) error

	// GetByID returns ErrBookingNotFound when no booking matches.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)

	// FindByBooker returns the booker's bookings in the given state category,
	// ordered by start descending.
	FindByBooker(ctx context.Context, bookerID uuid.UUID, state models.StateFilter, now time.Time, opts QueryOpts) ([]*models.Booking, error)

	// FindByOwner is FindByBooker scoped to bookings whose item belongs to
	// ownerID instead of whose booker is bookerID.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, state models.StateFilter, now time.Time, opts QueryOpts) ([]*models.Booking, error)

	// FindByItems batch-loads all bookings for the given items.
	FindByItems(ctx context.Context, itemIDs []uuid.UUID) ([]*models.Booking, error)

	// ExistsCompleted reports whether bookerID has an APPROVED booking on
	// itemID that ended before now. This is the "qualifying rental" predicate
	// behind comment eligibility.
	ExistsCompleted(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error)
}
