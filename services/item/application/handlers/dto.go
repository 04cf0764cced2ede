package handlers

import (
	"time"

	"github.com/ghuser/shareit/services/item/domain/models"
)

// CreateItemRequest is the request body for POST /items.
type CreateItemRequest struct {
	Name        string `json:"name"                validate:"required,notblank,max=255" example:"Drill"`
	Description string `json:"description"         validate:"required,notblank"         example:"Cordless drill with two batteries"`
	Available   *bool  `json:"available"           validate:"required"                  example:"true"`
	RequestID   *int64 `json:"requestId,omitempty" validate:"omitempty,gt=0"            example:"3"`
} // @name CreateItemRequest

// UpdateItemRequest is the partial body for PATCH /items/{itemID}.
// Absent or blank fields are left unchanged.
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,max=255" example:"Hammer drill"`
	Description *string `json:"description,omitempty" example:"Now with a hammer mode"`
	Available   *bool   `json:"available,omitempty"   example:"false"`
} // @name UpdateItemRequest

// CreateCommentRequest is the body for POST /items/{itemID}/comment.
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,notblank" example:"Worked great"`
} // @name CreateCommentRequest

// BookingShortResponse is the compact booking view attached to an item.
type BookingShortResponse struct {
	ID       int64     `json:"id"       example:"5"`
	BookerID int64     `json:"bookerId" example:"2"`
	ItemID   int64     `json:"itemId"   example:"1"`
	Start    time.Time `json:"start"    example:"2025-06-02T10:00:00Z"`
	End      time.Time `json:"end"      example:"2025-06-04T10:00:00Z"`
	Status   string    `json:"status"   example:"APPROVED"`
	ItemName string    `json:"itemName" example:"Drill"`
} // @name BookingShortResponse

// CommentResponse is the public view of a comment.
type CommentResponse struct {
	ID         int64     `json:"id"         example:"1"`
	Text       string    `json:"text"       example:"Worked great"`
	AuthorName string    `json:"authorName" example:"Bob"`
	Created    time.Time `json:"created"    example:"2025-06-05T09:00:00Z"`
} // @name CommentResponse

// ItemResponse is the public view of an item.
type ItemResponse struct {
	ID          int64                 `json:"id"          example:"1"`
	Name        string                `json:"name"        example:"Drill"`
	Description string                `json:"description" example:"Cordless drill with two batteries"`
	Available   bool                  `json:"available"   example:"true"`
	RequestID   *int64                `json:"requestId"   example:"3"`
	LastBooking *BookingShortResponse `json:"lastBooking"`
	NextBooking *BookingShortResponse `json:"nextBooking"`
	Comments    []CommentResponse     `json:"comments"`
} // @name ItemResponse

// ToItemResponse maps a bare item. Booking fields are null and comments empty.
func ToItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name.String(),
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
		Comments:    []CommentResponse{},
	}
}

// ToItemDetailsResponse maps an item with its derived booking and comment data.
func ToItemDetailsResponse(d *models.ItemDetails) ItemResponse {
	resp := ToItemResponse(d.Item)
	resp.LastBooking = toBookingShort(d.LastBooking)
	resp.NextBooking = toBookingShort(d.NextBooking)
	for _, c := range d.Comments {
		resp.Comments = append(resp.Comments, ToCommentResponse(&c))
	}
	return resp
}

// ToCommentResponse maps a domain comment to its transfer object.
func ToCommentResponse(c *models.Comment) CommentResponse {
	return CommentResponse{ID: c.ID, Text: c.Text, AuthorName: c.AuthorName, Created: c.Created}
}

func toBookingShort(b *models.BookingSummary) *BookingShortResponse {
	if b == nil {
		return nil
	}
	return &BookingShortResponse{
		ID:       b.ID,
		BookerID: b.BookerID,
		ItemID:   b.ItemID,
		Start:    b.Start,
		End:      b.End,
		Status:   b.Status,
		ItemName: b.ItemName,
	}
}
