package domain

import "github.com/ghuser/shareit/pkg/apperror"

// Sentinel errors for the user domain. Use errors.Is() to check these.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = apperror.NotFound("user not found")

	// ErrEmailTaken indicates another user already registered the email.
	ErrEmailTaken = apperror.Conflict("email already in use")

	// ErrInvalidUser indicates a blank name or email on creation.
	ErrInvalidUser = apperror.Invalid("user name and email are required")
)
