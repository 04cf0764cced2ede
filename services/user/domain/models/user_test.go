package models

import (
	"errors"
	"testing"

	userdomain "github.com/ghuser/shareit/services/user/domain"
)

func strPtr(s string) *string { return &s }

func TestNewUser(t *testing.T) {
	u, err := NewUser("  Ann ", " ann@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "Ann" || u.Email != "ann@example.com" {
		t.Fatalf("fields not trimmed: %+v", u)
	}

	if _, err := NewUser(" ", "ann@example.com"); !errors.Is(err, userdomain.ErrInvalidUser) {
		t.Fatalf("expected ErrInvalidUser, got %v", err)
	}
}

func TestUser_Apply(t *testing.T) {
	tests := []struct {
		name        string
		patch       UserPatch
		wantName    string
		wantEmail   string
		wantChanged bool
	}{
		{"empty patch", UserPatch{}, "Ann", "ann@example.com", false},
		{"name only", UserPatch{Name: strPtr("Anna")}, "Anna", "ann@example.com", true},
		{"email only", UserPatch{Email: strPtr("anna@example.com")}, "Ann", "anna@example.com", true},
		{"blank fields ignored", UserPatch{Name: strPtr("  "), Email: strPtr("")}, "Ann", "ann@example.com", false},
		{"same values", UserPatch{Name: strPtr("Ann")}, "Ann", "ann@example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{ID: 1, Name: "Ann", Email: "ann@example.com"}
			changed := u.Apply(tt.patch)
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if u.Name != tt.wantName || u.Email != tt.wantEmail {
				t.Errorf("got %+v", u)
			}
		})
	}
}
