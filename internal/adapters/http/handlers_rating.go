package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"workout/internal/adapters/http/middleware"
	"workout/internal/application/orchestrators"
	"workout/internal/application/projections"
	"workout/internal/domain/rating"
)

// ratingSavedResponse is the JSON body of a saved rating.
type ratingSavedResponse struct {
	Message string `json:"message"`
	Comment string `json:"comment"`
}

// handleSaveRating handles POST /save_rating. Responses are always JSON.
//
//	@Summary		Rate the plan
//	@Description	Saves a 1-5 star rating with an optional comment for the logged-in user.
//	@Description	Accepts form fields or a JSON body {"rating": 5, "comment": "..."}.
//	@Tags			Ratings
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			rating	formData	int		true	"Stars, 1 to 5"
//	@Param			comment	formData	string	false	"Optional comment"
//	@Success		200		{object}	ratingSavedResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		401		{object}	errorResponse
//	@Router			/save_rating [post]
func handleSaveRating(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	input := orchestrators.SaveRatingInput{AccountID: middleware.AccountFromContext(r.Context())}
	if isJSONBody(r) {
		var body struct {
			Rating  json.Number `json:"rating"`
			Comment string      `json:"comment"`
		}
		if err := strictDecode(r, &body); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
			return
		}
		input.Stars, input.Comment = body.Rating.String(), body.Comment
	} else {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid form submission"})
			return
		}
		input.Stars, input.Comment = r.FormValue("rating"), r.FormValue("comment")
	}

	deps := orchestrators.SaveRatingDeps{
		RatingStore: stores.RatingStore,
		GenerateID:  generateID,
		Now:         timeNow,
	}
	saved, err := orchestrators.ExecuteSaveRating(r.Context(), input, deps)
	if err != nil {
		switch {
		case errors.Is(err, orchestrators.ErrNotLoggedIn):
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "User not logged in"})
		case errors.Is(err, rating.ErrInvalidStars), errors.Is(err, rating.ErrCommentTooLong):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: userMessage(err)})
		default:
			internalError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, ratingSavedResponse{
		Message: "Rating and comment saved successfully",
		Comment: saved.Comment,
	})
}

// handleComments handles GET /comments
//
//	@Summary	List comments
//	@Tags		Ratings
//	@Produce	json
//	@Success	200	{object}	projections.CommentsView
//	@Router		/comments [get]
func handleComments(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	deps := projections.GetCommentsDeps{CommentStore: stores.RatingStore}
	view, err := projections.QueryGetComments(r.Context(), projections.GetCommentsQuery{}, deps)
	if err != nil {
		internalError(w, err)
		return
	}

	if !isHTMLRequest(r) {
		writeJSON(w, http.StatusOK, view)
		return
	}
	renderTemplate(w, r, "comments.html", view)
}
