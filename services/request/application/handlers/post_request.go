package handlers

import (
	"net/http"

	"github.com/ghuser/shareit/pkg/auth"
	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	pkgvalidator "github.com/ghuser/shareit/pkg/validator"
	appsvcs "github.com/ghuser/shareit/services/request/application/services"
)

// PostRequestHandler handles POST /requests requests.
type PostRequestHandler struct {
	svc *appsvcs.Services
}

// NewPostRequestHandler returns a PostRequestHandler backed by the given services.
func NewPostRequestHandler(svc *appsvcs.Services) *PostRequestHandler {
	return &PostRequestHandler{svc: svc}
}

// Execute posts a request for an item the caller needs.
//
//	@Summary	Create item request
//	@Tags		requests
//	@Accept		json
//	@Produce	json
//	@Param		X-Sharer-User-Id	header		int						true	"Caller user ID"
//	@Param		request				body		CreateRequestRequest	true	"What the caller needs"
//	@Success	201					{object}	RequestResponse
//	@Failure	400					{object}	errhttp.ErrorResponse
//	@Failure	404					{object}	errhttp.ErrorResponse
//	@Router		/requests [post]
func (h *PostRequestHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateRequestRequest](w, r)
	if !ok {
		return
	}

	created, err := h.svc.Request.Create(r.Context(), userID, req.Description)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, ToRequestResponse(created))
}
