package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	appsvcs "github.com/ghuser/shareit/services/user/application/services"
)

// GetUserHandler handles GET /users/{id}.
type GetUserHandler struct {
	svc *appsvcs.Services
}

// NewGetUserHandler returns a GetUserHandler backed by the given services.
func NewGetUserHandler(svc *appsvcs.Services) *GetUserHandler {
	return &GetUserHandler{svc: svc}
}

// Execute returns one user by id.
//
//	@Summary	Get user
//	@Tags		users
//	@Produce	json
//	@Param		id	path		string	true	"User id"
//	@Success	200	{object}	UserResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/users/{id} [get]
func (h *GetUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	user, err := h.svc.User.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toUserResponse(user))
}

// ListUsersHandler handles GET /users.
type ListUsersHandler struct {
	svc *appsvcs.Services
}

// NewListUsersHandler returns a ListUsersHandler backed by the given services.
func NewListUsersHandler(svc *appsvcs.Services) *ListUsersHandler {
	return &ListUsersHandler{svc: svc}
}

// Execute returns all users.
//
//	@Summary	List users
//	@Tags		users
//	@Produce	json
//	@Success	200	{array}	UserResponse
//	@Router		/users [get]
func (h *ListUsersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.User.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	httpx.JSON(w, http.StatusOK, out)
}
