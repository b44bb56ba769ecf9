package profile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Session keys under which demographics are stored.
const (
	KeyAge    = "age"
	KeyGender = "gender"
)

// Defaults used when the session has no demographics yet.
const (
	DefaultAge    = 25
	DefaultGender = GenderMale
)

// Gender values offered by the form. Any other non-empty value is accepted as-is.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Age bounds accepted from the demographic form.
const (
	MinAge = 1
	MaxAge = 130
)

// Special messages shown on the personal page.
const (
	MessageYoungMale = "You are a young male adult."
	MessageOlderMale = "You are an older male adult."
)

// Domain errors
var (
	ErrInvalidSession = errors.New("stored age is not a whole number")
	ErrInvalidAge     = errors.New("age must be a whole number between 1 and 130")
	ErrEmptyGender    = errors.New("gender cannot be empty")
)

// Demographics is the per-session context read by the personal plan flow.
type Demographics struct {
	Age    int
	Gender string
}

// Stored carries the raw session values. Empty strings mean "not set".
type Stored struct {
	Age    string
	Gender string
}

// Resolve applies defaults and parses the stored age.
// PRE: none
// POST: returns ErrInvalidSession (wrapped) when a stored age is present but not an integer
func (s Stored) Resolve() (Demographics, error) {
	d := Demographics{Age: DefaultAge, Gender: DefaultGender}
	if s.Gender != "" {
		d.Gender = s.Gender
	}
	if raw := strings.TrimSpace(s.Age); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			return Demographics{}, fmt.Errorf("%w: %q", ErrInvalidSession, s.Age)
		}
		d.Age = age
	}
	return d, nil
}

// ParseSubmission validates the demographic form values.
// PRE: none
// POST: returns normalized Demographics or ErrInvalidAge / ErrEmptyGender
func ParseSubmission(age, gender string) (Demographics, error) {
	gender = strings.TrimSpace(gender)
	if gender == "" {
		return Demographics{}, ErrEmptyGender
	}
	n, err := strconv.Atoi(strings.TrimSpace(age))
	if err != nil || n < MinAge || n > MaxAge {
		return Demographics{}, ErrInvalidAge
	}
	return Demographics{Age: n, Gender: gender}, nil
}

// Values returns the demographics as session key/value pairs.
func (d Demographics) Values() map[string]string {
	return map[string]string{
		KeyAge:    strconv.Itoa(d.Age),
		KeyGender: d.Gender,
	}
}

// messageRule matches a gender and an inclusive age range. MaxAge 0 means unbounded.
type messageRule struct {
	Gender  string
	MinAge  int
	MaxAge  int
	Message string
}

// messageRules only covers male visitors; other genders get no message.
var messageRules = []messageRule{
	{Gender: GenderMale, MinAge: 18, MaxAge: 35, Message: MessageYoungMale},
	{Gender: GenderMale, MinAge: 36, Message: MessageOlderMale},
}

// SpecialMessage returns the informational message for d, or "" when no rule matches.
// INVARIANT: Demographics fields are not mutated
func (d Demographics) SpecialMessage() string {
	for _, r := range messageRules {
		if r.Gender != d.Gender || d.Age < r.MinAge {
			continue
		}
		if r.MaxAge != 0 && d.Age > r.MaxAge {
			continue
		}
		return r.Message
	}
	return ""
}
