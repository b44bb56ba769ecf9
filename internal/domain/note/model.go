package note

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxContentLength = 10000
)

// Domain errors
var (
	ErrEmptyContent   = errors.New("note cannot be empty")
	ErrContentTooLong = errors.New("note cannot exceed 10000 characters")
)

// Note is a freeform text entry shown on the notes page.
// Content supports Markdown formatting.
type Note struct {
	ID        string
	Content   string
	CreatedAt time.Time
}

// Validate checks if the Note has valid data.
// PRE: Note struct is populated
// POST: Returns nil if valid, error otherwise
func (n *Note) Validate() error {
	if strings.TrimSpace(n.Content) == "" {
		return ErrEmptyContent
	}
	if len(n.Content) > MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}
