package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shareit/services/booking/domain/models"
)

// BookingResponse is the canonical wire representation of a booking.
type BookingResponse struct {
	ID       uuid.UUID `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	ItemID   uuid.UUID `json:"itemId"`
	BookerID uuid.UUID `json:"bookerId"`
	Status   string    `json:"status" example:"WAITING"`
} // @name BookingResponse

func toBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:       b.ID,
		Start:    b.Start,
		End:      b.End,
		ItemID:   b.ItemID,
		BookerID: b.BookerID,
		Status:   string(b.Status),
	}
}

func toBookingResponses(bookings []*models.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return out
}
