package handlers

import (
	"net/http"

	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	appsvcs "github.com/ghuser/shareit/services/user/application/services"
)

// GetUserHandler handles GET /users/{userID} requests.
type GetUserHandler struct {
	svc *appsvcs.Services
}

// NewGetUserHandler returns a GetUserHandler backed by the given services.
func NewGetUserHandler(svc *appsvcs.Services) *GetUserHandler {
	return &GetUserHandler{svc: svc}
}

// Execute returns one user.
//
//	@Summary	Get user
//	@Tags		users
//	@Produce	json
//	@Param		userID	path		int	true	"User ID"
//	@Success	200		{object}	UserResponse
//	@Failure	404		{object}	errhttp.ErrorResponse
//	@Router		/users/{userID} [get]
func (h *GetUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "userID")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	u, err := h.svc.User.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ToUserResponse(u))
}

// ListUsersHandler handles GET /users requests.
type ListUsersHandler struct {
	svc *appsvcs.Services
}

// NewListUsersHandler returns a ListUsersHandler backed by the given services.
func NewListUsersHandler(svc *appsvcs.Services) *ListUsersHandler {
	return &ListUsersHandler{svc: svc}
}

// Execute lists all users.
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

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = ToUserResponse(u)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
