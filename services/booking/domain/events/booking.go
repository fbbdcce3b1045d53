package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicBookingDecided is the Watermill topic published when an owner decides
// a WAITING booking.
const TopicBookingDecided = "booking.decided"

// BookingDecidedEvent is published after a booking transitions out of WAITING.
// The worker invalidates the item's read-model cache on this event, since the
// item's next/last booking summary may have changed.
type BookingDecidedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	BookingID  uuid.UUID `json:"booking_id"`
	ItemID     uuid.UUID `json:"item_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	BookerID   uuid.UUID `json:"booker_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
