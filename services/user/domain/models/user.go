package models

import (
	"strings"

	userdomain "github.com/ghuser/shareit/services/user/domain"
)

// User is a registered member who can list items and book others' items.
type User struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
}

// NewUser builds a User with trimmed fields. The ID is assigned on save.
func NewUser(name, email string) (*User, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, userdomain.ErrInvalidUser
	}
	return &User{Name: name, Email: email}, nil
}

// UserPatch carries the optional fields of a partial update.
type UserPatch struct {
	Name  *string
	Email *string
}

// Apply copies non-blank patch fields onto u and reports whether anything changed.
func (u *User) Apply(p UserPatch) bool {
	changed := false
	if p.Name != nil {
		if v := strings.TrimSpace(*p.Name); v != "" && v != u.Name {
			u.Name = v
			changed = true
		}
	}
	if p.Email != nil {
		if v := strings.TrimSpace(*p.Email); v != "" && v != u.Email {
			u.Email = v
			changed = true
		}
	}
	return changed
}
