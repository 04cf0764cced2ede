package models

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxItemNameRunes matches the items.name VARCHAR(255) column.
const MaxItemNameRunes = 255

var (
	ErrItemNameBlank   = errors.New("item name must not be blank")
	ErrItemNameTooLong = errors.New("item name must not exceed 255 characters")
)

// ItemName is a trimmed, non-blank item title of at most MaxItemNameRunes runes.
type ItemName string

// NewItemName trims s and checks its length in runes.
func NewItemName(s string) (ItemName, error) {
	s = strings.TrimSpace(s)
	switch n := utf8.RuneCountInString(s); {
	case n == 0:
		return "", ErrItemNameBlank
	case n > MaxItemNameRunes:
		return "", ErrItemNameTooLong
	}
	return ItemName(s), nil
}

func (n ItemName) String() string {
	return string(n)
}
