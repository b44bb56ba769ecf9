package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"workout/internal/domain/rating"
)

// RatingStoreForOrchestrator defines the store interface needed by SaveRating.
type RatingStoreForOrchestrator interface {
	Save(ctx context.Context, r rating.Rating) error
}

// SaveRatingInput carries input for the save rating orchestrator.
type SaveRatingInput struct {
	AccountID string // from the session; empty when not logged in
	Stars     string
	Comment   string
}

// SaveRatingDeps holds dependencies for SaveRating.
type SaveRatingDeps struct {
	RatingStore RatingStoreForOrchestrator
	GenerateID  func() string
	Now         func() time.Time
}

// ErrNotLoggedIn is returned when a rating is submitted without a logged-in account.
var ErrNotLoggedIn = errors.New("user not logged in")

// ExecuteSaveRating stores a star rating with an optional comment.
// PRE: none
// POST: Rating persisted, or ErrNotLoggedIn / rating validation error
func ExecuteSaveRating(ctx context.Context, input SaveRatingInput, deps SaveRatingDeps) (rating.Rating, error) {
	if input.AccountID == "" {
		return rating.Rating{}, ErrNotLoggedIn
	}
	stars, err := rating.ParseStars(input.Stars)
	if err != nil {
		return rating.Rating{}, err
	}

	r := rating.Rating{
		ID:        deps.GenerateID(),
		AccountID: input.AccountID,
		Stars:     stars,
		Comment:   strings.TrimSpace(input.Comment),
		CreatedAt: deps.Now(),
	}
	if err := r.Validate(); err != nil {
		return rating.Rating{}, err
	}
	if err := deps.RatingStore.Save(ctx, r); err != nil {
		return rating.Rating{}, err
	}

	slog.Info("rating_event", "event", "rating_saved", "rating_id", r.ID, "account_id", r.AccountID, "stars", r.Stars, "has_comment", r.HasComment())
	return r, nil
}
