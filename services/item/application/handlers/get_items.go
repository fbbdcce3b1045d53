package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	"github.com/ghuser/shareit/pkg/identity"
	appsvcs "github.com/ghuser/shareit/services/item/application/services"
	"github.com/ghuser/shareit/services/item/domain/repositories"
)

// GetItemHandler handles GET /items/{id}.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute returns one item with comments; booking summaries only for the owner.
//
//	@Summary		Get item
//	@Description	Returns an item with comments; booking info only for the owner
//	@Tags			items
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		string	true	"Calling user id"
//	@Param			id					path		string	true	"Item id"
//	@Success		200					{object}	ItemResponse
//	@Failure		404					{object}	httpx.ErrorResponse
//	@Router			/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	details, err := h.svc.Item.GetByID(r.Context(), callerID, itemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemDetailsResponse(details))
}

// ListItemsHandler handles GET /items (the caller's own items).
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute returns the caller's items, paginated, with booking and comment
// enrichment.
//
//	@Summary		List own items
//	@Description	Returns the caller's items with booking and comment info
//	@Tags			items
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		string	true	"Calling user id"
//	@Param			from				query		int		false	"Record offset"	default(0)
//	@Param			size				query		int		false	"Page size"		default(10)
//	@Success		200					{array}		ItemResponse
//	@Router			/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := identity.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := httpx.ParsePage(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	details, err := h.svc.Item.ListByOwner(r.Context(), ownerID, repositories.QueryOpts{
		Limit:  page.Size,
		Offset: page.From,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]ItemResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toItemDetailsResponse(d))
	}
	httpx.JSON(w, http.StatusOK, out)
}

// SearchItemsHandler handles GET /items/search.
type SearchItemsHandler struct {
	svc *appsvcs.Services
}

// NewSearchItemsHandler returns a SearchItemsHandler backed by the given services.
func NewSearchItemsHandler(svc *appsvcs.Services) *SearchItemsHandler {
	return &SearchItemsHandler{svc: svc}
}

// Execute searches available items by text; blank text yields an empty list.
//
//	@Summary		Search items
//	@Description	Case-insensitive search over name and description of available items
//	@Tags			items
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		string	true	"Calling user id"
//	@Param			text				query		string	true	"Search text"
//	@Param			from				query		int		false	"Record offset"	default(0)
//	@Param			size				query		int		false	"Page size"		default(10)
//	@Success		200					{array}		ItemResponse
//	@Router			/items/search [get]
func (h *SearchItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	page, err := httpx.ParsePage(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.svc.Item.Search(r.Context(), r.URL.Query().Get("text"), repositories.QueryOpts{
		Limit:  page.Size,
		Offset: page.From,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	httpx.JSON(w, http.StatusOK, out)
}
