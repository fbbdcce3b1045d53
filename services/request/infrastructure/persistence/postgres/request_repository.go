package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/shareit/pkg/database"
	requestdomain "github.com/ghuser/shareit/services/request/domain"
	"github.com/ghuser/shareit/services/request/domain/models"
	"github.com/ghuser/shareit/services/request/domain/repositories"
)

const requestColumns = `id, description, requestor_id, created`

// RequestRepository implements repositories.RequestRepository against
// PostgreSQL.
type RequestRepository struct {
	db *database.Database
}

// NewRequestRepository returns a RequestRepository backed by the given pool.
func NewRequestRepository(db *database.Database) *RequestRepository {
	return &RequestRepository{db: db}
}

// Save persists a new item request.
func (r *RequestRepository) Save(ctx context.Context, request *models.ItemRequest) error {
	_, err := r.db.DB().ExecContext(ctx,
		`INSERT INTO requests (id, description, requestor_id, created)
		 VALUES ($1, $2, $3, $4)`,
		request.ID, request.Description, request.RequestorID, request.Created,
	)
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

// GetByID returns ErrRequestNotFound when no request matches.
func (r *RequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ItemRequest, error) {
	var req models.ItemRequest
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT `+requestColumns+` FROM requests WHERE id = $1`, id,
	).Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, requestdomain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("query request: %w", err)
	}
	return &req, nil
}

// FindByRequestor returns the requestor's own requests, newest first.
func (r *RequestRepository) FindByRequestor(ctx context.Context, requestorID uuid.UUID, opts repositories.QueryOpts) ([]*models.ItemRequest, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+requestColumns+` FROM requests
		 WHERE requestor_id = $1
		 ORDER BY created DESC
		 LIMIT $2 OFFSET $3`,
		requestorID, opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("query requests by requestor: %w", err)
	}
	return collectRequests(rows)
}

// FindOthers returns requests NOT authored by userID, newest first.
func (r *RequestRepository) FindOthers(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.ItemRequest, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+requestColumns+` FROM requests
		 WHERE requestor_id <> $1
		 ORDER BY created DESC
		 LIMIT $2 OFFSET $3`,
		userID, opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("query other requests: %w", err)
	}
	return collectRequests(rows)
}

func collectRequests(rows *sql.Rows) ([]*models.ItemRequest, error) {
	defer rows.Close() //nolint:errcheck

	requests := []*models.ItemRequest{}
	for rows.Next() {
		var req models.ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		requests = append(requests, &req)
	}
	return requests, rows.Err()
}
