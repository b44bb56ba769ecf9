package projections

import (
	"context"

	"workout/internal/adapters/storage/note"
	"workout/internal/application/listutil"
	domainNote "workout/internal/domain/note"
)

// NoteStore interface for note queries.
type NoteStore interface {
	List(ctx context.Context, filter note.ListFilter) ([]domainNote.Note, error)
	Count(ctx context.Context) (int, error)
}

// GetNotesQuery carries input for the notes projection.
type GetNotesQuery struct {
	listutil.PageParams
}

// GetNotesDeps holds dependencies for the notes projection.
type GetNotesDeps struct {
	NoteStore NoteStore
}

// NotesView is one page of notes, oldest first.
type NotesView struct {
	Notes []domainNote.Note
	Page  listutil.PageInfo
}

// QueryGetNotes returns one page of notes.
// PRE: PageParams parsed with listutil.ParsePageParams
// POST: Page is clamped to the available range
func QueryGetNotes(ctx context.Context, query GetNotesQuery, deps GetNotesDeps) (NotesView, error) {
	total, err := deps.NoteStore.Count(ctx)
	if err != nil {
		return NotesView{}, err
	}
	page := listutil.NewPageInfo(query.Page, query.PerPage, total)

	notes, err := deps.NoteStore.List(ctx, note.ListFilter{Limit: page.PerPage, Offset: page.Offset()})
	if err != nil {
		return NotesView{}, err
	}
	if notes == nil {
		notes = []domainNote.Note{}
	}
	return NotesView{Notes: notes, Page: page}, nil
}
