package orchestrators

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"workout/internal/domain/profile"
)

// SelectDemographicsInput carries the demographic form.
type SelectDemographicsInput struct {
	Age              string
	Gender           string
	PersonalExercise bool
	Challenge        bool
}

// SelectDemographicsResult carries the validated demographics and the page to continue to.
type SelectDemographicsResult struct {
	Demographics profile.Demographics
	Next         string
}

// ExecuteSelectDemographics validates the demographic form and picks the next page.
// The caller stores Demographics in the session only when err is nil.
// PRE: none
// POST: returns profile.ErrInvalidAge / profile.ErrEmptyGender on bad input
func ExecuteSelectDemographics(_ context.Context, input SelectDemographicsInput) (SelectDemographicsResult, error) {
	demo, err := profile.ParseSubmission(input.Age, input.Gender)
	if err != nil {
		return SelectDemographicsResult{}, err
	}

	var next string
	switch {
	case input.PersonalExercise:
		next = "/personal"
	case input.Challenge:
		next = "/challenge"
	default:
		next = "/show_button/" + url.PathEscape(demo.Gender) + "/" + strconv.Itoa(demo.Age)
	}

	slog.Info("plan_event", "event", "demographics_selected", "age", demo.Age, "gender", demo.Gender, "next", next)
	return SelectDemographicsResult{Demographics: demo, Next: next}, nil
}
