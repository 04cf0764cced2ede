package handlers

import (
	"net/http"

	"github.com/ghuser/shareit/pkg/auth"
	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	pkgvalidator "github.com/ghuser/shareit/pkg/validator"
	appsvcs "github.com/ghuser/shareit/services/item/application/services"
)

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute lists a new item owned by the caller.
//
//	@Summary		Create item
//	@Description	Lists a new item owned by the caller, optionally answering an item request
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		int					true	"Caller user ID"
//	@Param			request				body		CreateItemRequest	true	"Item to list"
//	@Success		201					{object}	ItemResponse
//	@Failure		400					{object}	errhttp.ErrorResponse
//	@Failure		404					{object}	errhttp.ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), userID, appsvcs.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, ToItemResponse(item))
}
