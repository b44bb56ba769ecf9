package note

import (
	"context"

	domain "workout/internal/domain/note"
)

// Store persists Note state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Note, error)
	Save(ctx context.Context, value domain.Note) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Note, error)
	Count(ctx context.Context) (int, error)
}

// ListFilter carries filtering parameters for List operations.
// A zero Limit returns every note.
type ListFilter struct {
	Limit  int
	Offset int
}
