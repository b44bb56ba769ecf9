package orchestrators

import (
	"context"
	"log/slog"

	"workout/internal/domain/advice"
	"workout/internal/domain/bmi"
	"workout/internal/domain/profile"
)

// PlanState is the state the personal plan page is rendered in.
type PlanState string

// PlanState constants
const (
	PlanAwaitingSubmission PlanState = "awaiting_submission"
	PlanClassified         PlanState = "classified"
)

// Measurement carries the raw weight and height form values.
type Measurement struct {
	Weight string
	Height string
}

// PersonalPlanInput carries input for the personal plan flow.
// A nil Submission is a plain view of the page.
type PersonalPlanInput struct {
	Session    profile.Stored
	Submission *Measurement
}

// ClassificationRecorder receives every successful classification.
type ClassificationRecorder interface {
	RecordClassification(ctx context.Context, category bmi.Category)
}

// PersonalPlanDeps holds dependencies for the personal plan flow. Recorder is optional.
type PersonalPlanDeps struct {
	Recorder ClassificationRecorder
}

// PersonalPlan is the view model of the personal plan page.
type PersonalPlan struct {
	State          PlanState
	Age            int
	Gender         string
	SpecialMessage string
	Result         bmi.Result
	Advice         string
}

// Classified reports whether the plan carries a BMI result.
func (p PersonalPlan) Classified() bool {
	return p.State == PlanClassified
}

// AdviceLines splits the advice text for rendering.
func (p PersonalPlan) AdviceLines() []string {
	return advice.Lines(p.Advice)
}

// ExecutePersonalPlan decides which view of the personal plan page to produce.
// PRE: none
// POST: with a Submission, returns PlanClassified with category and advice, or
// bmi.ErrInvalidInput; without one, returns PlanAwaitingSubmission with the special message
// INVARIANT: never writes session state
func ExecutePersonalPlan(ctx context.Context, input PersonalPlanInput, deps PersonalPlanDeps) (PersonalPlan, error) {
	if input.Submission == nil {
		return viewPersonalPlan(input.Session)
	}

	m, err := bmi.ParseMeasurements(input.Submission.Weight, input.Submission.Height)
	if err != nil {
		return PersonalPlan{}, err
	}
	demo, err := input.Session.Resolve()
	if err != nil {
		return PersonalPlan{}, err
	}
	result, err := m.Classify()
	if err != nil {
		return PersonalPlan{}, err
	}
	text, err := advice.For(result.Category)
	if err != nil {
		return PersonalPlan{}, err
	}

	if deps.Recorder != nil {
		deps.Recorder.RecordClassification(ctx, result.Category)
	}
	slog.Info("plan_event", "event", "bmi_classified", "category", string(result.Category), "bmi", result.Rounded())

	return PersonalPlan{
		State:  PlanClassified,
		Age:    demo.Age,
		Gender: demo.Gender,
		Result: result,
		Advice: text,
	}, nil
}

func viewPersonalPlan(stored profile.Stored) (PersonalPlan, error) {
	demo, err := stored.Resolve()
	if err != nil {
		return PersonalPlan{}, err
	}
	return PersonalPlan{
		State:          PlanAwaitingSubmission,
		Age:            demo.Age,
		Gender:         demo.Gender,
		SpecialMessage: demo.SpecialMessage(),
	}, nil
}
