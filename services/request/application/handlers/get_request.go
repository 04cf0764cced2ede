package handlers

import (
	"net/http"

	"github.com/ghuser/shareit/pkg/auth"
	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	appsvcs "github.com/ghuser/shareit/services/request/application/services"
	"github.com/ghuser/shareit/services/request/domain/repositories"
)

// ListOwnRequestsHandler handles GET /requests requests.
type ListOwnRequestsHandler struct {
	svc *appsvcs.Services
}

// NewListOwnRequestsHandler returns a ListOwnRequestsHandler backed by the given services.
func NewListOwnRequestsHandler(svc *appsvcs.Services) *ListOwnRequestsHandler {
	return &ListOwnRequestsHandler{svc: svc}
}

// Execute lists the caller's requests, newest first.
//
//	@Summary	List own item requests
//	@Tags		requests
//	@Produce	json
//	@Param		X-Sharer-User-Id	header		int	true	"Caller user ID"
//	@Success	200					{array}		RequestResponse
//	@Failure	404					{object}	errhttp.ErrorResponse
//	@Router		/requests [get]
func (h *ListOwnRequestsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	list, err := h.svc.Request.ListOwn(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toRequestResponses(list))
}

// ListAllRequestsHandler handles GET /requests/all requests.
type ListAllRequestsHandler struct {
	svc *appsvcs.Services
}

// NewListAllRequestsHandler returns a ListAllRequestsHandler backed by the given services.
func NewListAllRequestsHandler(svc *appsvcs.Services) *ListAllRequestsHandler {
	return &ListAllRequestsHandler{svc: svc}
}

// Execute pages through other users' requests, newest first.
//
//	@Summary	List other users' item requests
//	@Tags		requests
//	@Produce	json
//	@Param		X-Sharer-User-Id	header		int	true	"Caller user ID"
//	@Param		from				query		int	false	"Offset"	default(0)
//	@Param		size				query		int	false	"Page size"	default(10)
//	@Success	200					{array}		RequestResponse
//	@Failure	400					{object}	errhttp.ErrorResponse
//	@Failure	404					{object}	errhttp.ErrorResponse
//	@Router		/requests/all [get]
func (h *ListAllRequestsHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	list, err := h.svc.Request.ListOthers(r.Context(), userID, repositories.QueryOpts{Limit: page.Size, Offset: page.From})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toRequestResponses(list))
}

// GetRequestHandler handles GET /requests/{requestID} requests.
type GetRequestHandler struct {
	svc *appsvcs.Services
}

// NewGetRequestHandler returns a GetRequestHandler backed by the given services.
func NewGetRequestHandler(svc *appsvcs.Services) *GetRequestHandler {
	return &GetRequestHandler{svc: svc}
}

// Execute returns one request with the items listed against it.
//
//	@Summary	Get item request
//	@Tags		requests
//	@Produce	json
//	@Param		X-Sharer-User-Id	header		int	true	"Caller user ID"
//	@Param		requestID			path		int	true	"Request ID"
//	@Success	200					{object}	RequestResponse
//	@Failure	404					{object}	errhttp.ErrorResponse
//	@Router		/requests/{requestID} [get]
func (h *GetRequestHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	requestID, err := httpx.PathID(r, "requestID")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	got, err := h.svc.Request.Get(r.Context(), userID, requestID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ToRequestResponse(got))
}
