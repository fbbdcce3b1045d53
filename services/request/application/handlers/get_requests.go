package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	"github.com/ghuser/shareit/pkg/identity"
	appsvcs "github.com/ghuser/shareit/services/request/application/services"
	"github.com/ghuser/shareit/services/request/domain/repositories"
)

// GetRequestHandler handles GET /requests/{id}.
type GetRequestHandler struct {
	svc *appsvcs.Services
}

// NewGetRequestHandler returns a GetRequestHandler backed by the given services.
func NewGetRequestHandler(svc *appsvcs.Services) *GetRequestHandler {
	return &GetRequestHandler{svc: svc}
}

// Execute returns one request with its fulfilling items.
//
//	@Summary		Get item request
//	@Description	Returns a request with the items listed against it
//	@Tags			requests
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		string	true	"Calling user id"
//	@Param			id					path		string	true	"Request id"
//	@Success		200					{object}	RequestResponse
//	@Failure		404					{object}	httpx.ErrorResponse
//	@Router			/requests/{id} [get]
func (h *GetRequestHandler) Execute(w http.ResponseWriter, r *http.Request) {
	callerID, err := identity.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	requestID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request id")
		return
	}

	details, err := h.svc.Request.GetByID(r.Context(), callerID, requestID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toRequestDetailsResponse(details))
}

// ListOwnRequestsHandler handles GET /requests (the caller's own requests).
type ListOwnRequestsHandler struct {
	svc *appsvcs.Services
}

// NewListOwnRequestsHandler returns a ListOwnRequestsHandler backed by the given services.
func NewListOwnRequestsHandler(svc *appsvcs.Services) *ListOwnRequestsHandler {
	return &ListOwnRequestsHandler{svc: svc}
}

// Execute lists the caller's requests, newest first, with fulfilling items.
//
//	@Summary		List own requests
//	@Description	Returns the caller's item requests, newest first
//	@Tags			requests
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		string	true	"Calling user id"
//	@Param			from				query		int		false	"Record offset"	default(0)
//	@Param			size				query		int		false	"Page size"		default(10)
//	@Success		200					{array}		RequestResponse
//	@Router			/requests [get]
func (h *ListOwnRequestsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	listRequests(w, r, h.svc.Request.ListByRequestor)
}

// ListOtherRequestsHandler handles GET /requests/all (everyone else's requests).
type ListOtherRequestsHandler struct {
	svc *appsvcs.Services
}

// NewListOtherRequestsHandler returns a ListOtherRequestsHandler backed by the given services.
func NewListOtherRequestsHandler(svc *appsvcs.Services) *ListOtherRequestsHandler {
	return &ListOtherRequestsHandler{svc: svc}
}

// Execute lists requests authored by anyone but the caller, newest first.
//
//	@Summary		List other users' requests
//	@Description	Returns requests authored by other users, newest first
//	@Tags			requests
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		string	true	"Calling user id"
//	@Param			from				query		int		false	"Record offset"	default(0)
//	@Param			size				query		int		false	"Page size"		default(10)
//	@Success		200					{array}		RequestResponse
//	@Router			/requests/all [get]
func (h *ListOtherRequestsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	listRequests(w, r, h.svc.Request.ListOthers)
}

// listRequests is the shared list pipeline: identity, pagination, query.
func listRequests(
	w http.ResponseWriter,
	r *http.Request,
	query func(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*appsvcs.RequestDetails, error),
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

	details, err := query(r.Context(), callerID, repositories.QueryOpts{
		Limit:  page.Size,
		Offset: page.From,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toRequestDetailsResponses(details))
}
