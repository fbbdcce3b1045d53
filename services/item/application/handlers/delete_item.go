package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	appsvcs "github.com/ghuser/shareit/services/item/application/services"
)

// DeleteItemHandler handles DELETE /items/{id}. Deletion is unconditional:
// no ownership check is applied.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute deletes an item.
//
//	@Summary		Delete item
//	@Description	Removes an item from the catalog
//	@Tags			items
//	@Param			X-Sharer-User-Id	header	string	true	"Calling user id"
//	@Param			id					path	string	true	"Item id"
//	@Success		204
//	@Router			/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.svc.Item.Delete(r.Context(), itemID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
