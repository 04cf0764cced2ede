package handlers

import (
	"net/http"

	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	pkgvalidator "github.com/ghuser/shareit/pkg/validator"
	appsvcs "github.com/ghuser/shareit/services/user/application/services"
)

// PostUserHandler handles POST /users requests.
type PostUserHandler struct {
	svc *appsvcs.Services
}

// NewPostUserHandler returns a PostUserHandler backed by the given services.
func NewPostUserHandler(svc *appsvcs.Services) *PostUserHandler {
	return &PostUserHandler{svc: svc}
}

// Execute registers a new user.
//
//	@Summary		Create user
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateUserRequest	true	"User to create"
//	@Success		201		{object}	UserResponse
//	@Failure		400		{object}	errhttp.ErrorResponse
//	@Failure		409		{object}	errhttp.ErrorResponse
//	@Router			/users [post]
func (h *PostUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateUserRequest](w, r)
	if !ok {
		return
	}

	u, err := h.svc.User.Create(r.Context(), req.Name, req.Email)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, ToUserResponse(u))
}
