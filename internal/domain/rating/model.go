package rating

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Star bounds
const (
	MinStars = 1
	MaxStars = 5
)

// Max length constants for user-editable fields.
const (
	MaxCommentLength = 2000
)

// Domain errors
var (
	ErrEmptyAccountID = errors.New("account ID cannot be empty")
	ErrInvalidStars   = errors.New("rating must be a whole number from 1 to 5")
	ErrCommentTooLong = errors.New("comment cannot exceed 2000 characters")
)

// Rating is a star rating with an optional comment left by a logged-in user.
type Rating struct {
	ID        string
	AccountID string
	Stars     int
	Comment   string
	CreatedAt time.Time
}

// Validate checks if the Rating has valid data.
// PRE: Rating struct is populated
// POST: Returns nil if valid, error otherwise
func (r *Rating) Validate() error {
	if r.AccountID == "" {
		return ErrEmptyAccountID
	}
	if r.Stars < MinStars || r.Stars > MaxStars {
		return ErrInvalidStars
	}
	if len(r.Comment) > MaxCommentLength {
		return ErrCommentTooLong
	}
	return nil
}

// HasComment reports whether a non-blank comment was left.
// INVARIANT: Rating fields are not mutated
func (r *Rating) HasComment() bool {
	return strings.TrimSpace(r.Comment) != ""
}

// ParseStars converts the submitted rating value.
// PRE: none
// POST: returns ErrInvalidStars unless raw is an integer within [MinStars, MaxStars]
func ParseStars(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < MinStars || n > MaxStars {
		return 0, ErrInvalidStars
	}
	return n, nil
}
