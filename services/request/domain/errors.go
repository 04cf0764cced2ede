package domain

import "github.com/ghuser/shareit/pkg/apperror"

// Sentinel errors for the request board. Use errors.Is() to check these.
var (
	ErrRequestNotFound = apperror.NotFound("request not found")
	ErrInvalidRequest  = apperror.Invalid("request description must not be blank")
)
