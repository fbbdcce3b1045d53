package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	"github.com/ghuser/shareit/pkg/identity"
	appsvcs "github.com/ghuser/shareit/services/booking/application/services"
)

// PatchBookingHandler handles PATCH /bookings/{id}?approved={bool}.
type PatchBookingHandler struct {
	svc *appsvcs.Services
}

// NewPatchBookingHandler returns a PatchBookingHandler backed by the given services.
func NewPatchBookingHandler(svc *appsvcs.Services) *PatchBookingHandler {
	return &PatchBookingHandler{svc: svc}
}

// Execute applies the owner's decision to a WAITING booking.
//
//	@Summary		Decide booking
//	@Description	Approves or rejects a waiting booking; owner only
//	@Tags			bookings
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		string	true	"Calling user id"
//	@Param			id					path		string	true	"Booking id"
//	@Param			approved			query		bool	true	"Approve (true) or reject (false)"
//	@Success		200					{object}	BookingResponse
//	@Failure		400					{object}	httpx.ErrorResponse
//	@Failure		403					{object}	httpx.ErrorResponse
//	@Failure		404					{object}	httpx.ErrorResponse
//	@Router			/bookings/{id} [patch]
func (h *PatchBookingHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	approved, err := strconv.ParseBool(r.URL.Query().Get("approved"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "approved must be true or false")
		return
	}

	booking, err := h.svc.Booking.Decide(r.Context(), callerID, bookingID, approved)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toBookingResponse(booking))
}
