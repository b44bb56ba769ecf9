package advice

import (
	"errors"
	"fmt"
	"strings"

	"workout/internal/domain/bmi"
)

// ErrUnknownCategory is returned for a category outside bmi.Categories.
var ErrUnknownCategory = errors.New("unknown BMI category")

// table holds the advice body per category. It is never mutated after init.
var table = map[bmi.Category]string{
	bmi.CategoryUnderweight: strings.Join([]string{
		"It seems you are underweight. It's important to maintain a balanced diet rich in nutrients and consider consulting with a healthcare professional for personalized advice.",
		"Strength training: Focus on building muscle mass with exercises like squats, lunges, and push-ups.",
		"Resistance training: Use resistance bands or weights to increase muscle strength and endurance.",
		"Aerobic exercises: Incorporate cardio activities such as brisk walking, cycling, or swimming to improve overall fitness levels.",
	}, "\n"),
	bmi.CategoryNormal: strings.Join([]string{
		"Congratulations! Your BMI falls within the normal range. Maintain a healthy lifestyle by eating a balanced diet and exercising regularly.",
		"Cardiovascular exercises: Continue with aerobic activities like running, jogging, or dancing to maintain cardiovascular health.",
		"Strength training: Include weightlifting or bodyweight exercises to maintain muscle tone and strength.",
		"Flexibility exercises: Practice yoga or stretching routines to enhance flexibility and reduce the risk of injury.",
	}, "\n"),
	bmi.CategoryOverweight: strings.Join([]string{
		"It seems you are overweight. Consider adopting healthier eating habits, incorporating regular physical activity, and consulting with a healthcare professional for guidance.",
		"Low-impact cardio: Opt for activities like walking, cycling, or using an elliptical machine to minimize stress on the joints while still burning calories.",
		"Water aerobics: Try swimming or water aerobics, which provide a full-body workout with less impact on the joints.",
		"Interval training: Incorporate high-intensity interval training (HIIT) to boost metabolism and burn fat effectively in shorter workout sessions.",
	}, "\n"),
	bmi.CategoryObesity: "It appears you have obesity. It's essential to focus on lifestyle changes such as improving your diet, increasing physical activity, and seeking guidance from a healthcare provider for personalized support.",
}

func init() {
	if err := checkComplete(table); err != nil {
		panic(err)
	}
}

// checkComplete verifies that every category has a non-empty entry and nothing else does.
func checkComplete(t map[bmi.Category]string) error {
	for _, c := range bmi.Categories {
		if strings.TrimSpace(t[c]) == "" {
			return fmt.Errorf("advice: missing text for category %q", c)
		}
	}
	if len(t) != len(bmi.Categories) {
		return fmt.Errorf("advice: table has %d entries, want %d", len(t), len(bmi.Categories))
	}
	return nil
}

// For returns the advice text for category.
// PRE: none
// POST: returns non-empty text for every bmi.Categories value, ErrUnknownCategory otherwise
func For(category bmi.Category) (string, error) {
	text, ok := table[category]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return text, nil
}

// Lines splits advice text into its display lines.
func Lines(text string) []string {
	return strings.Split(text, "\n")
}
