package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	"github.com/ghuser/shareit/pkg/identity"
	pkgvalidator "github.com/ghuser/shareit/pkg/validator"
	appsvcs "github.com/ghuser/shareit/services/item/application/services"
)

// UpdateItemRequest is the request body for PATCH /items/{id}. All fields are
// optional; absent fields keep their current value.
type UpdateItemRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,min=1,max=2000"`
	Available   *bool   `json:"available"`
} // @name UpdateItemRequest

// PatchItemHandler handles PATCH /items/{id}.
type PatchItemHandler struct {
	svc *appsvcs.Services
}

// NewPatchItemHandler returns a PatchItemHandler backed by the given services.
func NewPatchItemHandler(svc *appsvcs.Services) *PatchItemHandler {
	return &PatchItemHandler{svc: svc}
}

// Execute applies a partial update; only the owner may edit.
//
//	@Summary		Update item
//	@Description	Partially updates an item; only the owner may edit
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		string				true	"Calling user id"
//	@Param			id					path		string				true	"Item id"
//	@Param			request				body		UpdateItemRequest	true	"Fields to update"
//	@Success		200					{object}	ItemResponse
//	@Failure		403					{object}	httpx.ErrorResponse
//	@Failure		404					{object}	httpx.ErrorResponse
//	@Router			/items/{id} [patch]
func (h *PatchItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	callerID, err := identity.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid item id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Update(r.Context(), itemID, callerID, req.Name, req.Description, req.Available)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
