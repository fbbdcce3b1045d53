package handlers

import (
	"time"

	"github.com/google/uuid"

	appsvcs "github.com/ghuser/shareit/services/item/application/services"
	"github.com/ghuser/shareit/services/item/domain/models"
)

// ItemResponse is the canonical wire representation of an item. LastBooking
// and NextBooking are populated only for the item's owner; Comments are
// always present (possibly empty).
type ItemResponse struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Available   bool                   `json:"available"`
	RequestID   *uuid.UUID             `json:"requestId,omitempty"`
	LastBooking *BookingSummaryPayload `json:"lastBooking,omitempty"`
	NextBooking *BookingSummaryPayload `json:"nextBooking,omitempty"`
	Comments    []CommentResponse      `json:"comments"`
} // @name ItemResponse

// BookingSummaryPayload is the slim booking projection nested in ItemResponse.
type BookingSummaryPayload struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
} // @name BookingSummaryPayload

// CommentResponse is the wire representation of a comment.
type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
} // @name CommentResponse

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
		Comments:    []CommentResponse{},
	}
}

func toItemDetailsResponse(d *appsvcs.ItemDetails) ItemResponse {
	resp := toItemResponse(d.Item)
	resp.LastBooking = toBookingSummary(d.LastBooking)
	resp.NextBooking = toBookingSummary(d.NextBooking)
	resp.Comments = toCommentResponses(d.Comments)
	return resp
}

func toBookingSummary(s *appsvcs.BookingSummary) *BookingSummaryPayload {
	if s == nil {
		return nil
	}
	return &BookingSummaryPayload{ID: s.ID, BookerID: s.BookerID}
}

func toCommentResponse(c *models.Comment) CommentResponse {
	return CommentResponse{ID: c.ID, Text: c.Text, AuthorName: c.AuthorName, Created: c.Created}
}

func toCommentResponses(comments []*models.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c))
	}
	return out
}
