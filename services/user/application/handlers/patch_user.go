package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	pkgvalidator "github.com/ghuser/shareit/pkg/validator"
	appsvcs "github.com/ghuser/shareit/services/user/application/services"
)

// PatchUserRequest is the request body for PATCH /users/{id}.
// Absent fields keep their current value.
type PatchUserRequest struct {
	Name  *string `json:"name,omitempty"  validate:"omitempty,min=1,max=255" example:"Alice B."`
	Email *string `json:"email,omitempty" validate:"omitempty,email"         example:"alice.b@example.com"`
} // @name PatchUserRequest

// PatchUserHandler handles PATCH /users/{id}.
type PatchUserHandler struct {
	svc *appsvcs.Services
}

// NewPatchUserHandler returns a PatchUserHandler backed by the given services.
func NewPatchUserHandler(svc *appsvcs.Services) *PatchUserHandler {
	return &PatchUserHandler{svc: svc}
}

// Execute partially updates a user.
//
//	@Summary		Update user
//	@Description	Applies a partial patch (name and/or email) to a user
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"User id"
//	@Param			request	body		PatchUserRequest	true	"Fields to update"
//	@Success		200		{object}	UserResponse
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Failure		409		{object}	httpx.ErrorResponse
//	@Router			/users/{id} [patch]
func (h *PatchUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[PatchUserRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.User.Update(r.Context(), id, req.Name, req.Email)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toUserResponse(user))
}
