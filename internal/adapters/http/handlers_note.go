package web

import (
	"errors"
	"net/http"
	"time"

	noteStore "workout/internal/adapters/storage/note"
	"workout/internal/application/listutil"
	"workout/internal/application/orchestrators"
	"workout/internal/application/projections"
	"workout/internal/domain/note"
)

// noteResponse is the JSON shape of a note.
type noteResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// noteListResponse is the JSON shape of GET /note.
type noteListResponse struct {
	Notes []noteResponse    `json:"notes"`
	Page  listutil.PageInfo `json:"page"`
}

func newNoteResponse(n note.Note) noteResponse {
	return noteResponse{ID: n.ID, Content: n.Content, CreatedAt: n.CreatedAt}
}

// handleNotes handles GET (list) and POST (create) for /note
//
//	@Summary		List or add notes
//	@Description	GET lists notes oldest first. POST adds one from the note form field or a JSON body {"note": "..."}.
//	@Description	Responses are JSON unless the client accepts text/html.
//	@Tags			Notes
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			page		query		int		false	"Page number"
//	@Param			per_page	query		int		false	"Rows per page (20, 50 or 100)"
//	@Param			note		formData	string	false	"Markdown content, required on POST"
//	@Success		200			{object}	noteListResponse
//	@Success		201			{object}	noteResponse
//	@Failure		400			{object}	errorResponse
//	@Router			/note [get]
//	@Router			/note [post]
func handleNotes(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		view, err := queryNotes(r)
		if err != nil {
			internalError(w, err)
			return
		}
		if !isHTMLRequest(r) {
			notes := make([]noteResponse, 0, len(view.Notes))
			for _, n := range view.Notes {
				notes = append(notes, newNoteResponse(n))
			}
			writeJSON(w, http.StatusOK, noteListResponse{Notes: notes, Page: view.Page})
			return
		}
		renderTemplate(w, r, "note.html", map[string]any{"View": view})
		return
	}

	if r.Method == "POST" {
		var content string
		if isJSONBody(r) {
			var body struct {
				Note string `json:"note"`
			}
			if err := strictDecode(r, &body); err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
				return
			}
			content = body.Note
		} else {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			content = r.FormValue("note")
		}

		deps := orchestrators.CreateNoteDeps{
			NoteStore:  stores.NoteStore,
			GenerateID: generateID,
			Now:        timeNow,
		}
		created, err := orchestrators.ExecuteCreateNote(r.Context(), orchestrators.CreateNoteInput{Content: content}, deps)
		if err != nil {
			if !errors.Is(err, note.ErrEmptyContent) && !errors.Is(err, note.ErrContentTooLong) {
				internalError(w, err)
				return
			}
			if !isHTMLRequest(r) {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: userMessage(err)})
				return
			}
			view, qerr := queryNotes(r)
			if qerr != nil {
				internalError(w, qerr)
				return
			}
			renderTemplateStatus(w, r, http.StatusBadRequest, "note.html", map[string]any{
				"View":  view,
				"Error": userMessage(err),
				"Draft": content,
			})
			return
		}

		if !isHTMLRequest(r) {
			writeJSON(w, http.StatusCreated, newNoteResponse(created))
			return
		}
		http.Redirect(w, r, "/note", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func queryNotes(r *http.Request) (projections.NotesView, error) {
	query := projections.GetNotesQuery{PageParams: listutil.ParsePageParams(r.URL.Query())}
	deps := projections.GetNotesDeps{NoteStore: stores.NoteStore}
	return projections.QueryGetNotes(r.Context(), query, deps)
}

// handleDeleteNote handles POST /delete_note/{id}
//
//	@Summary	Delete a note
//	@Tags		Notes
//	@Param		id	path	string	true	"Note ID"
//	@Success	204
//	@Failure	404
//	@Router		/delete_note/{id} [post]
func handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	input := orchestrators.DeleteNoteInput{NoteID: r.PathValue("id")}
	deps := orchestrators.DeleteNoteDeps{NoteStore: stores.NoteStore}

	if err := orchestrators.ExecuteDeleteNote(r.Context(), input, deps); err != nil {
		if errors.Is(err, noteStore.ErrNotFound) || errors.Is(err, orchestrators.ErrNoteIDRequired) {
			http.NotFound(w, r)
			return
		}
		internalError(w, err)
		return
	}

	if !isHTMLRequest(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/note", http.StatusSeeOther)
}
