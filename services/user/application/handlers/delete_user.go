package handlers

import (
	"net/http"

	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	appsvcs "github.com/ghuser/shareit/services/user/application/services"
)

// DeleteUserHandler handles DELETE /users/{userID} requests.
type DeleteUserHandler struct {
	svc *appsvcs.Services
}

// NewDeleteUserHandler returns a DeleteUserHandler backed by the given services.
func NewDeleteUserHandler(svc *appsvcs.Services) *DeleteUserHandler {
	return &DeleteUserHandler{svc: svc}
}

// Execute deletes a user.
//
//	@Summary	Delete user
//	@Tags		users
//	@Param		userID	path	int	true	"User ID"
//	@Success	200
//	@Failure	404	{object}	errhttp.ErrorResponse
//	@Router		/users/{userID} [delete]
func (h *DeleteUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "userID")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := h.svc.User.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
