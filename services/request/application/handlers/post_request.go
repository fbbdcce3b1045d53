package handlers

import (
	"net/http"

	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	"github.com/ghuser/shareit/pkg/identity"
	pkgvalidator "github.com/ghuser/shareit/pkg/validator"
	appsvcs "github.com/ghuser/shareit/services/request/application/services"
)

// CreateRequestRequest is the request body for POST /requests.
type CreateRequestRequest struct {
	Description string `json:"description" validate:"required,min=1,max=2000" example:"Looking for a tile cutter for a weekend"`
} // @name CreateRequestRequest

// PostRequestHandler handles POST /requests.
type PostRequestHandler struct {
	svc *appsvcs.Services
}

// NewPostRequestHandler returns a PostRequestHandler backed by the given services.
func NewPostRequestHandler(svc *appsvcs.Services) *PostRequestHandler {
	return &PostRequestHandler{svc: svc}
}

// Execute records a new item request for the calling user.
//
//	@Summary		Create item request
//	@Description	Declares a need for an item not currently listed
//	@Tags			requests
//	@Accept			json
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		string					true	"Calling user id"
//	@Param			request				body		CreateRequestRequest	true	"Request description"
//	@Success		201					{object}	RequestResponse
//	@Failure		404					{object}	httpx.ErrorResponse
//	@Failure		422					{object}	httpx.ErrorResponse
//	@Router			/requests [post]
func (h *PostRequestHandler) Execute(w http.ResponseWriter, r *http.Request) {
	requestorID, err := identity.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateRequestRequest](w, r)
	if !ok {
		return
	}

	request, err := h.svc.Request.Create(r.Context(), requestorID, req.Description)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toRequestResponse(request))
}
