package handlers

import (
	"net/http"

	"github.com/ghuser/shareit/pkg/auth"
	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	pkgvalidator "github.com/ghuser/shareit/pkg/validator"
	appsvcs "github.com/ghuser/shareit/services/item/application/services"
)

// PostCommentHandler handles POST /items/{itemID}/comment requests.
type PostCommentHandler struct {
	svc *appsvcs.Services
}

// NewPostCommentHandler returns a PostCommentHandler backed by the given services.
func NewPostCommentHandler(svc *appsvcs.Services) *PostCommentHandler {
	return &PostCommentHandler{svc: svc}
}

// Execute leaves a comment on an item the caller has finished booking.
//
//	@Summary	Comment on item
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		X-Sharer-User-Id	header		int						true	"Caller user ID"
//	@Param		itemID				path		int						true	"Item ID"
//	@Param		request				body		CreateCommentRequest	true	"Comment"
//	@Success	200					{object}	CommentResponse
//	@Failure	400					{object}	errhttp.ErrorResponse
//	@Failure	404					{object}	errhttp.ErrorResponse
//	@Router		/items/{itemID}/comment [post]
func (h *PostCommentHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := pkgvalidator.ValidateRequest[CreateCommentRequest](w, r)
	if !ok {
		return
	}

	c, err := h.svc.Item.AddComment(r.Context(), userID, itemID, req.Text)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ToCommentResponse(c))
}
