package handlers

import (
	"time"

	itemhandlers "github.com/ghuser/shareit/services/item/application/handlers"
	"github.com/ghuser/shareit/services/request/domain/models"
)

// CreateRequestRequest is the request body for POST /requests.
type CreateRequestRequest struct {
	Description string `json:"description" validate:"required,notblank" example:"Looking for a ladder for the weekend"`
} // @name CreateRequestRequest

// RequestResponse is the public view of an item request and its answers.
type RequestResponse struct {
	ID          int64                       `json:"id"          example:"3"`
	Description string                      `json:"description" example:"Looking for a ladder for the weekend"`
	RequesterID int64                       `json:"requesterId" example:"1"`
	Created     time.Time                   `json:"created"     example:"2025-06-01T12:00:00Z"`
	Items       []itemhandlers.ItemResponse `json:"items"`
} // @name RequestResponse

// ToRequestResponse maps a request with its answering items.
func ToRequestResponse(r *models.RequestWithItems) RequestResponse {
	items := make([]itemhandlers.ItemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = itemhandlers.ToItemResponse(item)
	}
	return RequestResponse{
		ID:          r.Request.ID,
		Description: r.Request.Description,
		RequesterID: r.Request.RequesterID,
		Created:     r.Request.Created,
		Items:       items,
	}
}

func toRequestResponses(list []*models.RequestWithItems) []RequestResponse {
	resp := make([]RequestResponse, len(list))
	for i, r := range list {
		resp[i] = ToRequestResponse(r)
	}
	return resp
}
