package handlers

import (
	"net/http"

	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	pkgvalidator "github.com/ghuser/shareit/pkg/validator"
	appsvcs "github.com/ghuser/shareit/services/user/application/services"
)

// CreateUserRequest is the request body for POST /users.
type CreateUserRequest struct {
	Name  string `json:"name"  validate:"required,min=1,max=255" example:"Alice"`
	Email string `json:"email" validate:"required,email"         example:"alice@example.com"`
} // @name CreateUserRequest

// PostUserHandler handles POST /users.
type PostUserHandler struct {
	svc *appsvcs.Services
}

// NewPostUserHandler returns a PostUserHandler backed by the given services.
func NewPostUserHandler(svc *appsvcs.Services) *PostUserHandler {
	return &PostUserHandler{svc: svc}
}

// Execute creates a new user.
//
//	@Summary		Create user
//	@Description	Registers a new user with a unique email
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateUserRequest	true	"User creation request"
//	@Success		201		{object}	UserResponse
//	@Failure		409		{object}	httpx.ErrorResponse
//	@Failure		422		{object}	httpx.ErrorResponse
//	@Router			/users [post]
func (h *PostUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateUserRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.User.Create(r.Context(), req.Name, req.Email)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toUserResponse(user))
}
