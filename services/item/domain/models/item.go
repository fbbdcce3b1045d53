package models

import (
	"github.com/google/uuid"
)

// Item is the core aggregate of the catalog: a listed, ownable, potentially
// bookable object. RequestID links the item to the item request it was
// listed in response to, when there is one.
type Item struct {
	ID          uuid.UUID
	Name        string
	Description string
	Available   bool
	OwnerID     uuid.UUID
	RequestID   *uuid.UUID
}

// NewItem constructs an Item with a generated id.
func NewItem(ownerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID) *Item {
	return &Item{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Available:   available,
		OwnerID:     ownerID,
		RequestID:   requestID,
	}
}

// Patch applies partial-update semantics: nil fields keep their current value.
func (i *Item) Patch(name, description *string, available *bool) {
	if name != nil {
		i.Name = *name
	}
	if description != nil {
		i.Description = *description
	}
	if available != nil {
		i.Available = *available
	}
}
