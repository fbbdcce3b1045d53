package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	"github.com/ghuser/shareit/pkg/identity"
	pkgvalidator "github.com/ghuser/shareit/pkg/validator"
	appsvcs "github.com/ghuser/shareit/services/item/application/services"
)

// CreateItemRequest is the request body for POST /items. Available is a
// pointer so its absence can be told apart from an explicit false.
type CreateItemRequest struct {
	Name        string     `json:"name"        validate:"required,min=1,max=255" example:"Cordless drill"`
	Description string     `json:"description" validate:"required,min=1,max=2000" example:"18V, two batteries included"`
	Available   *bool      `json:"available"   validate:"required"`
	RequestID   *uuid.UUID `json:"requestId"`
} // @name CreateItemRequest

// PostItemHandler handles POST /items.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute lists a new item for the calling user.
//
//	@Summary		Create item
//	@Description	Lists a new item owned by the caller
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		string				true	"Calling user id"
//	@Param			request				body		CreateItemRequest	true	"Item creation request"
//	@Success		201					{object}	ItemResponse
//	@Failure		404					{object}	httpx.ErrorResponse
//	@Failure		422					{object}	httpx.ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := identity.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), ownerID, req.Name, req.Description, *req.Available, req.RequestID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}
