package domain

import (
	"errors"
	"testing"

	"github.com/ghuser/shareit/pkg/apperror"
)

func TestSentinelErrors_Kinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"ErrBookingNotFound", ErrBookingNotFound, apperror.ErrNotFound},
		{"ErrOwnItem", ErrOwnItem, apperror.ErrNotFound},
		{"ErrNotItemOwner", ErrNotItemOwner, apperror.ErrNotFound},
		{"ErrNotParticipant", ErrNotParticipant, apperror.ErrNotFound},
		{"ErrItemUnavailable", ErrItemUnavailable, apperror.ErrValidation},
		{"ErrInvalidPeriod", ErrInvalidPeriod, apperror.ErrValidation},
		{"ErrAlreadyApproved", ErrAlreadyApproved, apperror.ErrValidation},
		{"ErrAlreadyRejected", ErrAlreadyRejected, apperror.ErrValidation},
		{"ErrUnknownState", ErrUnknownState, apperror.ErrValidation},
		{"ErrVersionConflict", ErrVersionConflict, apperror.ErrConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Fatalf("%s has wrong kind", tt.name)
			}
		})
	}
}

func TestErrOwnItem_LooksLikeMissingItem(t *testing.T) {
	if ErrOwnItem.Error() != "item not found" {
		t.Fatalf("self-booking must read as a missing item, got %q", ErrOwnItem.Error())
	}
}
