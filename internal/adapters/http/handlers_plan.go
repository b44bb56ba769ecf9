package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"workout/internal/application/orchestrators"
	"workout/internal/domain/bmi"
	"workout/internal/domain/profile"
)

// Messages shown when the personal plan flow rejects a request.
const (
	msgInvalidMeasurements = "Please enter a weight and height greater than zero."
	msgInvalidSession      = "Your saved age is not a whole number. Please choose your age again."
)

// handleButton handles POST /button (demographic selection)
func handleButton(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.SelectDemographicsInput{
		Age:              r.FormValue("age"),
		Gender:           r.FormValue("gender"),
		PersonalExercise: r.FormValue("personalExercise") != "",
		Challenge:        r.FormValue("challenge") != "",
	}

	result, err := orchestrators.ExecuteSelectDemographics(r.Context(), input)
	if err != nil {
		if !errors.Is(err, profile.ErrInvalidAge) && !errors.Is(err, profile.ErrEmptyGender) {
			internalError(w, err)
			return
		}
		if isHTMLRequest(r) {
			renderTemplateStatus(w, r, http.StatusBadRequest, "index.html", map[string]any{
				"Genders": genderOptions,
				"Error":   userMessage(err),
				"Age":     input.Age,
				"Gender":  input.Gender,
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: userMessage(err)})
		return
	}

	if err := storeSessionValues(w, r, result.Demographics.Values()); err != nil {
		internalError(w, err)
		return
	}
	http.Redirect(w, r, result.Next, http.StatusSeeOther)
}

// handleShowButton handles GET /show_button/{gender}/{age}
func handleShowButton(w http.ResponseWriter, r *http.Request) {
	demo, err := profile.ParseSubmission(r.PathValue("age"), r.PathValue("gender"))
	if err != nil {
		http.Error(w, userMessage(err), http.StatusBadRequest)
		return
	}
	renderTemplate(w, r, "button.html", map[string]any{
		"Age":            demo.Age,
		"Gender":         demo.Gender,
		"SpecialMessage": demo.SpecialMessage(),
	})
}

// handleChallenge handles GET /challenge
func handleChallenge(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	demo, err := storedProfile(r).Resolve()
	if err != nil {
		demo, _ = profile.Stored{}.Resolve()
	}
	renderTemplate(w, r, "challenge.html", demo)
}

// planResponse is the JSON shape of the personal plan page.
type planResponse struct {
	State          orchestrators.PlanState `json:"state"`
	Age            int                     `json:"age"`
	Gender         string                  `json:"gender"`
	SpecialMessage string                  `json:"special_message,omitempty"`
	BMI            float64                 `json:"bmi,omitempty"`
	Category       bmi.Category            `json:"category,omitempty"`
	Advice         string                  `json:"advice,omitempty"`
}

func newPlanResponse(p orchestrators.PersonalPlan) planResponse {
	resp := planResponse{
		State:          p.State,
		Age:            p.Age,
		Gender:         p.Gender,
		SpecialMessage: p.SpecialMessage,
	}
	if p.Classified() {
		resp.BMI = p.Result.Rounded()
		resp.Category = p.Result.Category
		resp.Advice = p.Advice
	}
	return resp
}

// handlePersonal handles GET (plan form) and POST (classify) for /personal
//
//	@Summary		Personal workout plan
//	@Description	GET returns the session's age and gender (default 25, male) with the special message.
//	@Description	POST classifies weight (kg) and height (cm) from form fields or a JSON body {"weight": 70, "height": 175}.
//	@Description	Responses are JSON unless the client accepts text/html.
//	@Tags			Plan
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			weight	formData	number	false	"Weight in kilograms, required on POST"
//	@Param			height	formData	number	false	"Height in centimetres, required on POST"
//	@Success		200		{object}	planResponse
//	@Failure		400		{object}	errorResponse
//	@Router			/personal [get]
//	@Router			/personal [post]
func handlePersonal(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" && r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	input := orchestrators.PersonalPlanInput{Session: storedProfile(r)}
	if r.Method == "POST" {
		m := orchestrators.Measurement{}
		if isJSONBody(r) {
			var body struct {
				Weight json.Number `json:"weight"`
				Height json.Number `json:"height"`
			}
			if err := strictDecode(r, &body); err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
				return
			}
			m.Weight, m.Height = body.Weight.String(), body.Height.String()
		} else {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			m.Weight, m.Height = r.FormValue("weight"), r.FormValue("height")
		}
		input.Submission = &m
	}

	deps := orchestrators.PersonalPlanDeps{Recorder: classificationRecorder}
	plan, err := orchestrators.ExecutePersonalPlan(r.Context(), input, deps)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, bmi.ErrInvalidInput):
			msg = msgInvalidMeasurements
		case errors.Is(err, profile.ErrInvalidSession):
			msg = msgInvalidSession
		default:
			internalError(w, err)
			return
		}
		if isHTMLRequest(r) {
			// The form is shown again with the session's demographics, or the defaults when those are unreadable.
			view, viewErr := orchestrators.ExecutePersonalPlan(r.Context(), orchestrators.PersonalPlanInput{Session: input.Session}, deps)
			if viewErr != nil {
				view, viewErr = orchestrators.ExecutePersonalPlan(r.Context(), orchestrators.PersonalPlanInput{Session: profile.Stored{}}, deps)
			}
			if viewErr != nil {
				internalError(w, viewErr)
				return
			}
			renderTemplateStatus(w, r, http.StatusBadRequest, "personal.html", map[string]any{
				"Plan":  view,
				"Error": msg,
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
		return
	}

	if !isHTMLRequest(r) {
		writeJSON(w, http.StatusOK, newPlanResponse(plan))
		return
	}
	renderTemplate(w, r, "personal.html", map[string]any{"Plan": plan})
}
