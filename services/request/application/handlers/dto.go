package handlers

import (
	"time"

	"github.com/google/uuid"

	itemmodels "github.com/ghuser/shareit/services/item/domain/models"
	appsvcs "github.com/ghuser/shareit/services/request/application/services"
	"github.com/ghuser/shareit/services/request/domain/models"
)

// RequestResponse is the canonical wire representation of an item request,
// including the items listed against it.
type RequestResponse struct {
	ID          uuid.UUID             `json:"id"`
	Description string                `json:"description"`
	Created     time.Time             `json:"created"`
	Items       []RequestItemResponse `json:"items"`
} // @name RequestResponse

// RequestItemResponse is the slim item projection nested in RequestResponse.
type RequestItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	OwnerID     uuid.UUID `json:"ownerId"`
} // @name RequestItemResponse

func toRequestResponse(req *models.ItemRequest) RequestResponse {
	return RequestResponse{
		ID:          req.ID,
		Description: req.Description,
		Created:     req.Created,
		Items:       []RequestItemResponse{},
	}
}

func toRequestDetailsResponse(d *appsvcs.RequestDetails) RequestResponse {
	resp := toRequestResponse(d.Request)
	for _, item := range d.Items {
		resp.Items = append(resp.Items, toRequestItemResponse(item))
	}
	return resp
}

func toRequestItemResponse(item *itemmodels.Item) RequestItemResponse {
	return RequestItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		OwnerID:     item.OwnerID,
	}
}

func toRequestDetailsResponses(details []*appsvcs.RequestDetails) []RequestResponse {
	out := make([]RequestResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toRequestDetailsResponse(d))
	}
	return out
}
