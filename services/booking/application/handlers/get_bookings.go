package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	"github.com/ghuser/shareit/pkg/identity"
	appsvcs "github.com/ghuser/shareit/services/booking/application/services"
	"github.com/ghuser/shareit/services/booking/domain/models"
	"github.com/ghuser/shareit/services/booking/domain/repositories"
)

// GetBookingHandler handles GET /bookings/{id}.
type GetBookingHandler struct {
	svc *appsvcs.Services
}

// NewGetBookingHandler returns a GetBookingHandler backed by the given services.
func NewGetBookingHandler(svc *appsvcs.Services) *GetBookingHandler {
	return &GetBookingHandler{svc: svc}
}

// Execute returns one booking to its booker or the item's owner.
//
//	@Summary		Get booking
//	@Description	Returns a booking; visible to the booker and the item owner only
//	@Tags			bookings
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		string	true	"Calling user id"
//	@Param			id					path		string	true	"Booking id"
//	@Success		200					{object}	BookingResponse
//	@Failure		403					{object}	httpx.ErrorResponse
//	@Failure		404					{object}	httpx.ErrorResponse
//	@Router			/bookings/{id} [get]
func (h *GetBookingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	callerID, err := identity.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	bookingID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	booking, err := h.svc.Booking.GetByID(r.Context(), callerID, bookingID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toBookingResponse(booking))
}

// ListBookingsHandler handles GET /bookings (the caller as booker).
type ListBookingsHandler struct {
	svc *appsvcs.Services
}

// NewListBookingsHandler returns a ListBookingsHandler backed by the given services.
func NewListBookingsHandler(svc *appsvcs.Services) *ListBookingsHandler {
	return &ListBookingsHandler{svc: svc}
}

// Execute lists the caller's bookings filtered by state category.
//
//	@Summary		List bookings by booker
//	@Description	Returns the caller's bookings in the given state category, newest start first
//	@Tags			bookings
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		string	true	"Calling user id"
//	@Param			state				query		string	false	"ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"	default(ALL)
//	@Param			from				query		int		false	"Record offset"										default(0)
//	@Param			size				query		int		false	"Page size"											default(10)
//	@Success		200					{array}		BookingResponse
//	@Failure		400					{object}	httpx.ErrorResponse
//	@Router			/bookings [get]
func (h *ListBookingsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	listBookings(w, r, h.svc.Booking.ListByBooker)
}

// ListOwnerBookingsHandler handles GET /bookings/owner (the caller as owner).
type ListOwnerBookingsHandler struct {
	svc *appsvcs.Services
}

// NewListOwnerBookingsHandler returns a ListOwnerBookingsHandler backed by the given services.
func NewListOwnerBookingsHandler(svc *appsvcs.Services) *ListOwnerBookingsHandler {
	return &ListOwnerBookingsHandler{svc: svc}
}

// Execute lists bookings of the caller's items filtered by state category.
//
//	@Summary		List bookings by owner
//	@Description	Returns bookings of the caller's items in the given state category, newest start first
//	@Tags			bookings
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		string	true	"Calling user id"
//	@Param			state				query		string	false	"ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"	default(ALL)
//	@Param			from				query		int		false	"Record offset"										default(0)
//	@Param			size				query		int		false	"Page size"											default(10)
//	@Success		200					{array}		BookingResponse
//	@Failure		400					{object}	httpx.ErrorResponse
//	@Router			/bookings/owner [get]
func (h *ListOwnerBookingsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	listBookings(w, r, h.svc.Booking.ListByOwner)
}

// listBookings is the shared list pipeline: identity, pagination, state
// filter, then the given query.
func listBookings(
	w http.ResponseWriter,
	r *http.Request,
	query func(ctx context.Context, userID uuid.UUID, state string, opts repositories.QueryOpts) ([]*models.Booking, error),
) {
	callerID, err := identity.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := httpx.ParsePage(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	bookings, err := query(r.Context(), callerID, r.URL.Query().Get("state"), repositories.QueryOpts{
		Limit:  page.Size,
		Offset: page.From,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toBookingResponses(bookings))
}
