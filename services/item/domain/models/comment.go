package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is feedback a user leaves on an item after a completed rental.
// Comments are immutable once created.
type Comment struct {
	ID         uuid.UUID
	Text       string
	ItemID     uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	Created    time.Time
}

// NewComment constructs a Comment with a generated id and the given creation
// time. The caller supplies "now" so one timestamp serves the whole operation.
func NewComment(itemID, authorID uuid.UUID, authorName, text string, now time.Time) *Comment {
	return &Comment{
		ID:         uuid.New(),
		Text:       text,
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Created:    now,
	}
}
