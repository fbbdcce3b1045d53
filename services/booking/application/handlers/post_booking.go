package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	"github.com/ghuser/shareit/pkg/identity"
	pkgvalidator "github.com/ghuser/shareit/pkg/validator"
	appsvcs "github.com/ghuser/shareit/services/booking/application/services"
)

// CreateBookingRequest is the request body for POST /bookings. Time-range
// validity lives here, at the input boundary: end must be after start and
// start must not be in the past.
type CreateBookingRequest struct {
	ItemID uuid.UUID `json:"itemId" validate:"required"`
	Start  time.Time `json:"start"  validate:"required"`
	End    time.Time `json:"end"    validate:"required,gtfield=Start"`
} // @name CreateBookingRequest

// PostBookingHandler handles POST /bookings.
type PostBookingHandler struct {
	svc *appsvcs.Services
}

// NewPostBookingHandler returns a PostBookingHandler backed by the given services.
func NewPostBookingHandler(svc *appsvcs.Services) *PostBookingHandler {
	return &PostBookingHandler{svc: svc}
}

// Execute places a booking in WAITING for the calling user.
//
//	@Summary		Create booking
//	@Description	Books an item for the caller; the booking starts WAITING
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		string					true	"Calling user id"
//	@Param			request				body		CreateBookingRequest	true	"Booking request"
//	@Success		201					{object}	BookingResponse
//	@Failure		400					{object}	httpx.ErrorResponse
//	@Failure		404					{object}	httpx.ErrorResponse
//	@Router			/bookings [post]
func (h *PostBookingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	bookerID, err := identity.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateBookingRequest](w, r)
	if !ok {
		return
	}
	if req.Start.Before(time.Now().UTC()) {
		httpx.Error(w, http.StatusBadRequest, "start must not be in the past")
		return
	}

	booking, err := h.svc.Booking.Create(r.Context(), bookerID, req.ItemID, req.Start, req.End)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toBookingResponse(booking))
}
