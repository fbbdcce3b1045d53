package models

import (
	"time"

	"github.com/google/uuid"

	domain "github.com/ghuser/shareit/services/booking/domain"
)

// Status is the booking lifecycle state. The set is closed: a booking is
// created WAITING and moves exactly once to APPROVED or REJECTED.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Booking is a time-bounded reservation of an item by a user other than its
// owner. Time-range validity (end after start, start in the future) is
// enforced at the HTTP boundary; the model trusts its inputs.
type Booking struct {
	ID       uuid.UUID
	Start    time.Time
	End      time.Time
	ItemID   uuid.UUID
	BookerID uuid.UUID
	Status   Status
}

// NewBooking constructs a Booking in WAITING with a generated id.
func NewBooking(itemID, bookerID uuid.UUID, start, end time.Time) *Booking {
	return &Booking{
		ID:       uuid.New(),
		Start:    start,
		End:      end,
		ItemID:   itemID,
		BookerID: bookerID,
		Status:   StatusWaiting,
	}
}

// Decide applies the owner's decision. Only a WAITING booking can be decided;
// APPROVED and REJECTED are terminal.
func (b *Booking) Decide(approved bool) error {
	if b.Status != StatusWaiting {
		return domain.ErrAlreadyDecided
	}
	if approved {
		b.Status = StatusApproved
	} else {
		b.Status = StatusRejected
	}
	return nil
}

// IsParty reports whether userID is the booker or the item's owner.
func (b *Booking) IsParty(userID, itemOwnerID uuid.UUID) bool {
	return b.BookerID == userID || itemOwnerID == userID
}
