package models

import (
	"strings"
	"time"
)

// Comment is feedback left on an item by a user who finished a booking of it.
type Comment struct {
	ID         int64
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Text       string
	Created    time.Time
}

// NewComment builds an unsaved comment stamped with created. It returns false
// when text is blank.
func NewComment(itemID, authorID int64, authorName, text string, created time.Time) (*Comment, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}
	return &Comment{
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Text:       text,
		Created:    created.UTC(),
	}, true
}
