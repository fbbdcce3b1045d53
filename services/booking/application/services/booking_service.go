package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "github.com/ghuser/shareit/services/booking/domain"
	"github.com/ghuser/shareit/services/booking/domain/models"
	"github.com/ghuser/shareit/services/booking/domain/repositories"
	itemrepos "github.com/ghuser/shareit/services/item/domain/repositories"
	userrepos "github.com/ghuser/shareit/services/user/domain/repositories"
)

// BookingService runs the reservation state machine. Overlapping bookings for
// the same item are not prevented; availability is a listing-level flag, not
// a calendar.
type BookingService struct {
	bookings repositories.BookingRepository
	items    itemrepos.ItemRepository
	users    userrepos.UserRepository
}

// NewBookingService returns a BookingService wired with the given collaborators.
func NewBookingService(
	bookings repositories.BookingRepository,
	items itemrepos.ItemRepository,
	users userrepos.UserRepository,
) *BookingService {
	return &BookingService{bookings: bookings, items: items, users: users}
}

// Create places a WAITING booking for bookerID on itemID. The item must be
// available and must not belong to the booker; a self-booking surfaces as
// not-found rather than forbidden. Time-range validity is the HTTP boundary's
// job — by this point start/end are trusted.
func (s *BookingService) Create(ctx context.Context, bookerID, itemID uuid.UUID, start, end time.Time) (*models.Booking, error) {
	if _, err := s.users.GetByID(ctx, bookerID); err != nil {
		return nil, fmt.Errorf("get booker: %w", err)
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if !item.Available {
		return nil, domain.ErrItemUnavailable
	}
	if item.OwnerID == bookerID {
		return nil, domain.ErrOwnItemBooking
	}

	booking := models.NewBooking(item.ID, bookerID, start, end)
	if err := s.bookings.Save(ctx, booking); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}
	return booking, nil
}

// Decide applies the owner's approval or rejection to a WAITING booking.
// The caller must be a known user; only the item's owner may decide, anyone
// else is denied access.
func (s *BookingService) Decide(ctx context.Context, callerID, bookingID uuid.UUID, approved bool) (*models.Booking, error) {
	if _, err := s.users.GetByID(ctx, callerID); err != nil {
		return nil, fmt.Errorf("get caller: %w", err)
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	item, err := s.items.GetByID(ctx, booking.ItemID)
	if err != nil {
		return nil, fmt.Errorf("get booked item: %w", err)
	}
	if item.OwnerID != callerID {
		return nil, domain.ErrBookingAccessDenied
	}

	if err := booking.Decide(approved); err != nil {
		return nil, err
	}

	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return booking, nil
}

// GetByID returns a booking to its booker or the item's owner; an unknown
// caller is not-found, everyone else is denied access.
func (s *BookingService) GetByID(ctx context.Context, callerID, bookingID uuid.UUID) (*models.Booking, error) {
	if _, err := s.users.GetByID(ctx, callerID); err != nil {
		return nil, fmt.Errorf("get caller: %w", err)
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	item, err := s.items.GetByID(ctx, booking.ItemID)
	if err != nil {
		return nil, fmt.Errorf("get booked item: %w", err)
	}
	if !booking.IsParty(callerID, item.OwnerID) {
		return nil, domain.ErrBookingAccessDenied
	}
	return booking, nil
}

// ListByBooker returns the booker's bookings in the given state category,
// newest start first. The state-category window is evaluated against one
// captured instant for the whole query.
func (s *BookingService) ListByBooker(ctx context.Context, bookerID uuid.UUID, state string, opts repositories.QueryOpts) ([]*models.Booking, error) {
	if _, err := s.users.GetByID(ctx, bookerID); err != nil {
		return nil, fmt.Errorf("get booker: %w", err)
	}

	filter, err := models.ParseStateFilter(state)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	bookings, err := s.bookings.FindByBooker(ctx, bookerID, filter, now, opts)
	if err != nil {
		return nil, fmt.Errorf("list bookings by booker: %w", err)
	}
	return bookings, nil
}

// ListByOwner is ListByBooker over the bookings of all items ownerID owns.
func (s *BookingService) ListByOwner(ctx context.Context, ownerID uuid.UUID, state string, opts repositories.QueryOpts) ([]*models.Booking, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("get owner: %w", err)
	}

	filter, err := models.ParseStateFilter(state)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	bookings, err := s.bookings.FindByOwner(ctx, ownerID, filter, now, opts)
	if err != nil {
		return nil, fmt.Errorf("list bookings by owner: %w", err)
	}
	return bookings, nil
}
