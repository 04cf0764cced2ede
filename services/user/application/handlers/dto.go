package handlers

import "github.com/ghuser/shareit/services/user/domain/models"

// CreateUserRequest is the request body for POST /users.
type CreateUserRequest struct {
	Name  string `json:"name"  validate:"required,notblank,max=255" example:"Ann"`
	Email string `json:"email" validate:"required,email,max=512"   example:"ann@example.com"`
} // @name CreateUserRequest

// UpdateUserRequest is the partial body for PATCH /users/{userID}.
// Absent or blank fields are left unchanged.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"  validate:"omitempty,max=255"       example:"Anna"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=512" example:"anna@example.com"`
} // @name UpdateUserRequest

// UserResponse is the public view of a user.
type UserResponse struct {
	ID    int64  `json:"id"    example:"1"`
	Name  string `json:"name"  example:"Ann"`
	Email string `json:"email" example:"ann@example.com"`
} // @name UserResponse

// ToUserResponse maps a domain user to its transfer object.
func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
