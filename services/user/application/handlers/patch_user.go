package handlers

import (
	"net/http"

	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	pkgvalidator "github.com/ghuser/shareit/pkg/validator"
	appsvcs "github.com/ghuser/shareit/services/user/application/services"
	"github.com/ghuser/shareit/services/user/domain/models"
)

// PatchUserHandler handles PATCH /users/{userID} requests.
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
//	@Description	Blank or absent fields are left unchanged
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int					true	"User ID"
//	@Param			request	body		UpdateUserRequest	true	"Fields to change"
//	@Success		200		{object}	UserResponse
//	@Failure		400		{object}	errhttp.ErrorResponse
//	@Failure		404		{object}	errhttp.ErrorResponse
//	@Failure		409		{object}	errhttp.ErrorResponse
//	@Router			/users/{userID} [patch]
func (h *PatchUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "userID")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateUserRequest](w, r)
	if !ok {
		return
	}

	u, err := h.svc.User.Update(r.Context(), id, models.UserPatch{Name: req.Name, Email: req.Email})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ToUserResponse(u))
}
