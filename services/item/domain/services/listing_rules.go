// Package services holds stateless rules over item domain types.
package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/ghuser/shareit/services/item/domain/models"
)

var (
	errControlChars   = errors.New("must not contain control characters")
	errBlank          = errors.New("must not be blank")
	errOwnerUnset     = errors.New("owner must be set")
	errRequestInvalid = errors.New("request id must be positive")
)

// CheckName rejects names that would render badly in listings: control
// characters such as tabs or newlines.
func CheckName(name models.ItemName) error {
	if strings.IndexFunc(name.String(), unicode.IsControl) >= 0 {
		return fmt.Errorf("name %w", errControlChars)
	}
	return nil
}

// CheckListing validates a new item before it is stored and reports every
// broken rule at once.
func CheckListing(item *models.Item) error {
	if item == nil {
		return errors.New("item is nil")
	}
	var errs []error
	if err := CheckName(item.Name); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(item.Description) == "" {
		errs = append(errs, fmt.Errorf("description %w", errBlank))
	}
	if item.OwnerID <= 0 {
		errs = append(errs, errOwnerUnset)
	}
	if item.RequestID != nil && *item.RequestID <= 0 {
		errs = append(errs, errRequestInvalid)
	}
	return errors.Join(errs...)
}
