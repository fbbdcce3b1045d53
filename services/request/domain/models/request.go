package models

import (
	"time"

	"github.com/google/uuid"
)

// ItemRequest is a user's declared need for an item not currently listed.
// Items listed in response carry a back-reference; the set of fulfilling
// items is computed by reverse lookup, never stored here.
type ItemRequest struct {
	ID          uuid.UUID
	Description string
	RequestorID uuid.UUID
	Created     time.Time
}

// NewItemRequest constructs an ItemRequest with a generated id and the given
// creation time.
func NewItemRequest(requestorID uuid.UUID, description string, now time.Time) *ItemRequest {
	return &ItemRequest{
		ID:          uuid.New(),
		Description: description,
		RequestorID: requestorID,
		Created:     now,
	}
}
