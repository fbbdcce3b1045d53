package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	itemmodels "github.com/ghuser/shareit/services/item/domain/models"
	itemrepos "github.com/ghuser/shareit/services/item/domain/repositories"
	"github.com/ghuser/shareit/services/request/domain/models"
	"github.com/ghuser/shareit/services/request/domain/repositories"
	userrepos "github.com/ghuser/shareit/services/user/domain/repositories"
)

// RequestDetails is an item request enriched with the items listed against it.
type RequestDetails struct {
	Request *models.ItemRequest
	Items   []*itemmodels.Item
}

// RequestService orchestrates the item-request subsystem. List reads enrich
// every request with its fulfilling items, batch-loaded over the whole page
// and grouped by request id.
type RequestService struct {
	requests repositories.RequestRepository
	items    itemrepos.ItemRepository
	users    userrepos.UserRepository
}

// NewRequestService returns a RequestService wired with the given collaborators.
func NewRequestService(
	requests repositories.RequestRepository,
	items itemrepos.ItemRepository,
	users userrepos.UserRepository,
) *RequestService {
	return &RequestService{requests: requests, items: items, users: users}
}

// Create records a new item request for requestorID.
func (s *RequestService) Create(ctx context.Context, requestorID uuid.UUID, description string) (*models.ItemRequest, error) {
	if _, err := s.users.GetByID(ctx, requestorID); err != nil {
		return nil, fmt.Errorf("get requestor: %w", err)
	}

	request := models.NewItemRequest(requestorID, description, time.Now().UTC())
	if err := s.requests.Save(ctx, request); err != nil {
		return nil, fmt.Errorf("save request: %w", err)
	}
	return request, nil
}

// GetByID returns one request enriched with its fulfilling items. Any
// existing user may look at any request.
func (s *RequestService) GetByID(ctx context.Context, callerID, requestID uuid.UUID) (*RequestDetails, error) {
	if _, err := s.users.GetByID(ctx, callerID); err != nil {
		return nil, fmt.Errorf("get caller: %w", err)
	}

	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	items, err := s.items.FindByRequestIDs(ctx, []uuid.UUID{request.ID})
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	return &RequestDetails{Request: request, Items: items}, nil
}

// ListByRequestor returns the caller's own requests, newest first, enriched.
func (s *RequestService) ListByRequestor(ctx context.Context, requestorID uuid.UUID, opts repositories.QueryOpts) ([]*RequestDetails, error) {
	if _, err := s.users.GetByID(ctx, requestorID); err != nil {
		return nil, fmt.Errorf("get requestor: %w", err)
	}

	requests, err := s.requests.FindByRequestor(ctx, requestorID, opts)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return s.enrich(ctx, requests)
}

// ListOthers returns requests authored by anyone but the caller, newest
// first, enriched.
func (s *RequestService) ListOthers(ctx context.Context, callerID uuid.UUID, opts repositories.QueryOpts) ([]*RequestDetails, error) {
	if _, err := s.users.GetByID(ctx, callerID); err != nil {
		return nil, fmt.Errorf("get caller: %w", err)
	}

	requests, err := s.requests.FindOthers(ctx, callerID, opts)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return s.enrich(ctx, requests)
}

// enrich attaches fulfilling items to each request with one batch query
// rather than one query per request.
func (s *RequestService) enrich(ctx context.Context, requests []*models.ItemRequest) ([]*RequestDetails, error) {
	out := make([]*RequestDetails, 0, len(requests))
	if len(requests) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, len(requests))
	for i, req := range requests {
		ids[i] = req.ID
	}

	items, err := s.items.FindByRequestIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	byRequest := make(map[uuid.UUID][]*itemmodels.Item)
	for _, item := range items {
		if item.RequestID != nil {
			byRequest[*item.RequestID] = append(byRequest[*item.RequestID], item)
		}
	}

	for _, req := range requests {
		out = append(out, &RequestDetails{Request: req, Items: byRequest[req.ID]})
	}
	return out, nil
}
