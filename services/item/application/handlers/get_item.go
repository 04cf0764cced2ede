package handlers

import (
	"net/http"

	"github.com/ghuser/shareit/pkg/apperror"
	"github.com/ghuser/shareit/pkg/auth"
	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	appsvcs "github.com/ghuser/shareit/services/item/application/services"
	"github.com/ghuser/shareit/services/item/domain/repositories"
)

var errMissingText = apperror.Invalid("text is required")

// GetItemHandler handles GET /items/{itemID} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute returns one item with comments; owners also see last and next bookings.
//
//	@Summary	Get item
//	@Tags		items
//	@Produce	json
//	@Param		X-Sharer-User-Id	header		int	true	"Caller user ID"
//	@Param		itemID				path		int	true	"Item ID"
//	@Success	200					{object}	ItemResponse
//	@Failure	404					{object}	errhttp.ErrorResponse
//	@Router		/items/{itemID} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	details, err := h.svc.Item.GetByID(r.Context(), itemID, userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ToItemDetailsResponse(details))
}

// ListItemsHandler handles GET /items requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists the caller's items with last and next bookings.
//
//	@Summary	List own items
//	@Tags		items
//	@Produce	json
//	@Param		X-Sharer-User-Id	header	int	true	"Caller user ID"
//	@Param		from				query	int	false	"Offset"	default(0)
//	@Param		size				query	int	false	"Page size"	default(10)
//	@Success	200					{array}	ItemResponse
//	@Failure	400					{object}	errhttp.ErrorResponse
//	@Failure	404					{object}	errhttp.ErrorResponse
//	@Router		/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	page, err := httpx.ParsePage(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	list, err := h.svc.Item.ListByOwner(r.Context(), userID, queryOpts(page))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]ItemResponse, len(list))
	for i, d := range list {
		resp[i] = ToItemDetailsResponse(d)
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// SearchItemsHandler handles GET /items/search requests.
type SearchItemsHandler struct {
	svc *appsvcs.Services
}

// NewSearchItemsHandler returns a SearchItemsHandler backed by the given services.
func NewSearchItemsHandler(svc *appsvcs.Services) *SearchItemsHandler {
	return &SearchItemsHandler{svc: svc}
}

// Execute searches available items by name or description.
//
//	@Summary		Search items
//	@Description	Case-insensitive substring search over available items; blank text yields an empty list
//	@Tags			items
//	@Produce		json
//	@Param			X-Sharer-User-Id	header	int		true	"Caller user ID"
//	@Param			text				query	string	true	"Search text"
//	@Param			from				query	int		false	"Offset"	default(0)
//	@Param			size				query	int		false	"Page size"	default(10)
//	@Success		200					{array}	ItemResponse
//	@Failure		400					{object}	errhttp.ErrorResponse
//	@Router			/items/search [get]
func (h *SearchItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has("text") {
		errhttp.WriteError(w, errMissingText)
		return
	}
	page, err := httpx.ParsePage(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items, err := h.svc.Item.Search(r.Context(), r.URL.Query().Get("text"), queryOpts(page))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]ItemResponse, len(items))
	for i, item := range items {
		resp[i] = ToItemResponse(item)
	}
	httpx.JSON(w, http.StatusOK, resp)
}

func queryOpts(p httpx.Page) repositories.QueryOpts {
	return repositories.QueryOpts{Limit: p.Size, Offset: p.From}
}
