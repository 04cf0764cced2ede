package handlers

import (
	"net/http"

	"github.com/ghuser/shareit/pkg/auth"
	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	pkgvalidator "github.com/ghuser/shareit/pkg/validator"
	appsvcs "github.com/ghuser/shareit/services/item/application/services"
	"github.com/ghuser/shareit/services/item/domain/models"
)

// PatchItemHandler handles PATCH /items/{itemID} requests.
type PatchItemHandler struct {
	svc *appsvcs.Services
}

// NewPatchItemHandler returns a PatchItemHandler backed by the given services.
func NewPatchItemHandler(svc *appsvcs.Services) *PatchItemHandler {
	return &PatchItemHandler{svc: svc}
}

// Execute partially updates an item owned by the caller.
//
//	@Summary	Update item
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		X-Sharer-User-Id	header		int					true	"Caller user ID"
//	@Param		itemID				path		int					true	"Item ID"
//	@Param		request				body		UpdateItemRequest	true	"Fields to change"
//	@Success	200					{object}	ItemResponse
//	@Failure	400					{object}	errhttp.ErrorResponse
//	@Failure	404					{object}	errhttp.ErrorResponse
//	@Router		/items/{itemID} [patch]
func (h *PatchItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	itemID, err := httpx.PathID(r, "itemID")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Update(r.Context(), userID, itemID, models.ItemPatch{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ToItemResponse(item))
}
