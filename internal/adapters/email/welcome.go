package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// WelcomeSubject is the subject line of the post-registration email.
const WelcomeSubject = "Welcome to your personalized workout plan"

var welcomeTmpl = template.Must(template.New("welcome").Parse(`<p>Hi {{.Username}},</p>
<p>Your account is ready. Log in, tell us your age and gender, and enter your weight and height to get a plan matched to your BMI.</p>
<p>See you at the gym.</p>`))

// WelcomeMessage builds the welcome email for a newly registered user.
// PRE: to is a non-empty address
// POST: HTML body has the username escaped
func WelcomeMessage(username, to string) (SendRequest, error) {
	var buf bytes.Buffer
	if err := welcomeTmpl.Execute(&buf, struct{ Username string }{username}); err != nil {
		return SendRequest{}, fmt.Errorf("render welcome email: %w", err)
	}
	return SendRequest{
		To:      []string{to},
		Subject: WelcomeSubject,
		HTML:    buf.String(),
	}, nil
}
