package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ghuser/shareit/pkg/apperror"
)

func TestSentinelErrors_Kinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"ErrItemNotFound", ErrItemNotFound, apperror.ErrNotFound},
		{"ErrNotOwner", ErrNotOwner, apperror.ErrNotFound},
		{"ErrRequestNotFound", ErrRequestNotFound, apperror.ErrNotFound},
		{"ErrInvalidItemName", ErrInvalidItemName, apperror.ErrValidation},
		{"ErrInvalidItem", ErrInvalidItem, apperror.ErrValidation},
		{"ErrInvalidComment", ErrInvalidComment, apperror.ErrValidation},
		{"ErrNoBookings", ErrNoBookings, apperror.ErrValidation},
		{"ErrFutureBooking", ErrFutureBooking, apperror.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Fatalf("%s has wrong kind", tt.name)
			}
		})
	}
}

func TestSentinelErrors_Messages(t *testing.T) {
	if ErrItemNotFound.Error() != "item not found" {
		t.Fatalf("unexpected message: %q", ErrItemNotFound.Error())
	}
	if ErrNoBookings.Error() == ErrFutureBooking.Error() {
		t.Fatal("never-booked and future-only comment failures must be distinguishable")
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrItemNotFound)
	if !errors.Is(wrapped, ErrItemNotFound) {
		t.Fatal("errors.Is must match wrapped ErrItemNotFound")
	}
	if errors.Is(wrapped, ErrNotOwner) {
		t.Fatal("distinct not-found sentinels must not match each other")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrInvalidItemName, errors.New("too long"))
	if !errors.Is(wrapped2, ErrInvalidItemName) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidItemName")
	}
}
