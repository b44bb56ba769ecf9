package web

import (
	"errors"
	"log/slog"
	"net/http"

	"workout/internal/adapters/http/middleware"
	"workout/internal/application/orchestrators"
	"workout/internal/application/projections"
	"workout/internal/domain/account"
	"workout/internal/domain/profile"
)

// registerValidationErrors are shown back on the register form.
var registerValidationErrors = []error{
	account.ErrEmptyUsername,
	account.ErrUsernameTooLong,
	account.ErrEmptyEmail,
	account.ErrEmailTooLong,
	account.ErrInvalidEmail,
	account.ErrEmptyPassword,
	account.ErrPasswordTooShort,
}

func isRegisterValidationError(err error) bool {
	for _, target := range registerValidationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// genderOptions are offered by the demographic form.
var genderOptions = []string{profile.GenderMale, profile.GenderFemale}

// handleIndex handles GET / (demographic selection form)
func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	stored := storedProfile(r)
	renderTemplate(w, r, "index.html", map[string]any{
		"Genders": genderOptions,
		"Age":     stored.Age,
		"Gender":  stored.Gender,
	})
}

// handleRegister handles GET (form) and POST (create account) for /register
func handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "register.html", nil)
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.RegisterInput{
			Username: r.FormValue("username"),
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
		}
		deps := orchestrators.RegisterDeps{
			AccountStore: stores.AccountStore,
			Mailer:       emailSender,
			GenerateID:   generateID,
			Now:          timeNow,
		}

		if _, err := orchestrators.ExecuteRegister(r.Context(), input, deps); err != nil {
			status := http.StatusBadRequest
			msg := userMessage(err)
			if errors.Is(err, orchestrators.ErrUsernameOrEmailTaken) {
				status = http.StatusConflict
				msg = "Username or email already exists"
			} else if !isRegisterValidationError(err) {
				internalError(w, err)
				return
			}
			renderTemplateStatus(w, r, status, "register.html", map[string]any{
				"Error":    msg,
				"Username": input.Username,
				"Email":    input.Email,
			})
			return
		}

		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogin handles GET (form) and POST (authenticate) for /login
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		// If already logged in, redirect to dashboard
		if sess, ok := middleware.GetSessionFromContext(r.Context()); ok && sess.LoggedIn() {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login.html", nil)
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.LoginInput{
			Username: r.FormValue("username"),
			Password: r.FormValue("password"),
		}
		deps := orchestrators.LoginDeps{
			AccountStore: stores.AccountStore,
			Now:          timeNow,
		}

		result, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
		if err != nil {
			var status int
			var msg string
			switch {
			case errors.Is(err, orchestrators.ErrInvalidCredentials):
				status, msg = http.StatusUnauthorized, "Invalid username or password"
			case errors.Is(err, orchestrators.ErrAccountLocked):
				status, msg = http.StatusForbidden, userMessage(err)
			default:
				internalError(w, err)
				return
			}
			renderTemplateStatus(w, r, status, "login.html", map[string]any{
				"Error":    msg,
				"Username": input.Username,
			})
			return
		}

		// A fresh token on login; demographics chosen before logging in carry over.
		var values map[string]string
		if prev, ok := middleware.GetSessionFromContext(r.Context()); ok {
			values = prev.Values
			sessions.Delete(prev.Token)
		}
		token, err := sessions.Create(result.AccountID, result.Username, values)
		if err != nil {
			internalError(w, err)
			return
		}

		middleware.SetSessionCookie(w, token)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogout handles POST /logout. The whole session is dropped, demographics included.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		sessions.Delete(sess.Token)
		if sess.LoggedIn() {
			slog.Info("auth_event", "event", "logout", "account_id", sess.AccountID)
		}
	}

	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleDashboard handles GET /dashboard. Wrapped in RequireAuth.
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, _ := middleware.GetSessionFromContext(r.Context())

	query := projections.GetDashboardQuery{
		AccountID: sess.AccountID,
		Session:   storedProfile(r),
	}
	deps := projections.GetDashboardDeps{AccountStore: stores.AccountStore}

	view, err := projections.QueryGetDashboard(r.Context(), query, deps)
	if err != nil {
		// The account may have been removed while the session was alive.
		slog.Warn("auth_event", "event", "dashboard_account_missing", "account_id", sess.AccountID, "error", err.Error())
		sessions.Delete(sess.Token)
		middleware.ClearSessionCookie(w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	renderTemplate(w, r, "home.html", view)
}
