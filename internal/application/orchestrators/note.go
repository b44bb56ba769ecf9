package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"workout/internal/domain/note"
)

// NoteStoreForOrchestrator defines the store interface needed by note orchestrators.
type NoteStoreForOrchestrator interface {
	Save(ctx context.Context, n note.Note) error
	Delete(ctx context.Context, id string) error
}

// --- Create Note ---

// CreateNoteInput carries input for the create note orchestrator.
type CreateNoteInput struct {
	Content string
}

// CreateNoteDeps holds dependencies for CreateNote.
type CreateNoteDeps struct {
	NoteStore  NoteStoreForOrchestrator
	GenerateID func() string
	Now        func() time.Time
}

// ExecuteCreateNote validates and stores a new note.
// PRE: none
// POST: Note persisted with generated ID, or a note validation error
func ExecuteCreateNote(ctx context.Context, input CreateNoteInput, deps CreateNoteDeps) (note.Note, error) {
	n := note.Note{
		ID:        deps.GenerateID(),
		Content:   input.Content,
		CreatedAt: deps.Now(),
	}
	if err := n.Validate(); err != nil {
		return note.Note{}, err
	}
	if err := deps.NoteStore.Save(ctx, n); err != nil {
		return note.Note{}, err
	}

	slog.Info("note_event", "event", "note_created", "note_id", n.ID, "length", len(n.Content))
	return n, nil
}

// --- Delete Note ---

// DeleteNoteInput carries input for the delete note orchestrator.
type DeleteNoteInput struct {
	NoteID string
}

// DeleteNoteDeps holds dependencies for DeleteNote.
type DeleteNoteDeps struct {
	NoteStore NoteStoreForOrchestrator
}

// ErrNoteIDRequired is returned when no note ID is supplied.
var ErrNoteIDRequired = errors.New("note ID is required")

// ExecuteDeleteNote removes a note.
// PRE: NoteID is non-empty
// POST: Note removed; the store's not-found error is passed through
func ExecuteDeleteNote(ctx context.Context, input DeleteNoteInput, deps DeleteNoteDeps) error {
	if input.NoteID == "" {
		return ErrNoteIDRequired
	}
	if err := deps.NoteStore.Delete(ctx, input.NoteID); err != nil {
		return err
	}
	slog.Info("note_event", "event", "note_deleted", "note_id", input.NoteID)
	return nil
}
