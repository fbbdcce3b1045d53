package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/shareit/services/request/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// RequestRepository is the persistence interface for the ItemRequest aggregate.
type RequestRepository interface {
	Save(ctx context.Context, request *models.ItemRequest) error

	// GetByID returns ErrRequestNotFound when no request matches.
	GetByID(ctx context.Context, id uuid.UUID) (*models.ItemRequest, error)

	// FindByRequestor returns the requestor's own requests, newest first.
	FindByRequestor(ctx context.Context, requestorID uuid.UUID, opts QueryOpts) ([]*models.ItemRequest, error)

	// FindOthers returns requests NOT authored by userID, newest first.
	FindOthers(ctx context.Context, userID uuid.UUID, opts QueryOpts) ([]*models.ItemRequest, error)
}
