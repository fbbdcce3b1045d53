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

// CreateCommentRequest is the request body for POST /items/{id}/comment.
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000" example:"Worked great, thanks!"`
} // @name CreateCommentRequest

// PostCommentHandler handles POST /items/{id}/comment.
type PostCommentHandler struct {
	svc *appsvcs.Services
}

// NewPostCommentHandler returns a PostCommentHandler backed by the given services.
func NewPostCommentHandler(svc *appsvcs.Services) *PostCommentHandler {
	return &PostCommentHandler{svc: svc}
}

// Execute adds a comment; the author must have completed an approved booking
// of the item.
//
//	@Summary		Comment on item
//	@Description	Adds a comment; requires a finished approved booking by the author
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		string					true	"Calling user id"
//	@Param			id					path		string					true	"Item id"
//	@Param			request				body		CreateCommentRequest	true	"Comment text"
//	@Success		200					{object}	CommentResponse
//	@Failure		400					{object}	httpx.ErrorResponse
//	@Failure		404					{object}	httpx.ErrorResponse
//	@Router			/items/{id}/comment [post]
func (h *PostCommentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	authorID, err := identity.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid item id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateCommentRequest](w, r)
	if !ok {
		return
	}

	comment, err := h.svc.Item.CreateComment(r.Context(), itemID, authorID, req.Text)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toCommentResponse(comment))
}
