package rating

import (
	"context"

	domain "workout/internal/domain/rating"
)

// Store persists Rating state.
type Store interface {
	Save(ctx context.Context, value domain.Rating) error
	ListComments(ctx context.Context, limit int) ([]Comment, error)
}

// Comment is a rating with a comment, joined with its author's username.
type Comment struct {
	domain.Rating
	Username string
}
