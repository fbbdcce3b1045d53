package domain

import "errors"

// Sentinel errors for the booking engine. Use errors.Is() to check these.
var (
	// ErrBookingNotFound indicates the requested booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrItemUnavailable indicates the item is not open for booking.
	ErrItemUnavailable = errors.New("item is not available for booking")

	// ErrOwnItemBooking indicates the booker owns the item. Surfaced as
	// not-found so owners learn nothing from probing their own listings.
	ErrOwnItemBooking = errors.New("owner cannot book their own item")

	// ErrBookingAccessDenied indicates the caller is neither the booker nor
	// the item's owner.
	ErrBookingAccessDenied = errors.New("booking access denied")

	// ErrAlreadyDecided indicates the booking is no longer waiting for a
	// decision.
	ErrAlreadyDecided = errors.New("booking is not waiting for approval")

	// ErrUnsupportedState indicates an unknown state filter value.
	ErrUnsupportedState = errors.New("unsupported booking state")
)
