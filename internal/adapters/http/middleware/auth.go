package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const sessionContextKey contextKey = "session"

// SessionTTL is how long a session lives after creation.
const SessionTTL = 24 * time.Hour

// Session is the server-side state behind one browser cookie.
// Anonymous visitors get a session too, so demographics survive until login or logout.
type Session struct {
	Token     string
	AccountID string
	Username  string
	Values    map[string]string
	CreatedAt time.Time
}

// LoggedIn reports whether the session belongs to an account.
// INVARIANT: Session fields are not mutated
func (s Session) LoggedIn() bool {
	return s.AccountID != ""
}

// Value returns a stored value, or "" when the key is unset.
func (s Session) Value(key string) string {
	return s.Values[key]
}

// SessionStore is an in-memory session store. Sessions are isolated by token.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Create stores a new session and returns the token. Empty accountID creates an anonymous session.
// PRE: none
// POST: Session is stored with a copy of values, token is returned
func (ss *SessionStore) Create(accountID, username string, values map[string]string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.sessions[token] = Session{
		Token:     token,
		AccountID: accountID,
		Username:  username,
		Values:    copyValues(values),
		CreatedAt: ss.now(),
	}
	return token, nil
}

// Get retrieves a session by token.
// PRE: token is non-empty
// POST: Returns session if valid and not expired; expired sessions are removed
func (ss *SessionStore) Get(token string) (Session, bool) {
	ss.mu.RLock()
	session, ok := ss.sessions[token]
	ss.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	if ss.now().Sub(session.CreatedAt) > SessionTTL {
		ss.Delete(token)
		return Session{}, false
	}
	session.Values = copyValues(session.Values)
	return session, true
}

// Delete removes a session by token.
// PRE: token is non-empty
// POST: Session with given token is removed
func (ss *SessionStore) Delete(token string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.sessions, token)
}

// SetValues merges values into an existing session.
// PRE: token exists in the store
// POST: Returns false when the session is gone; otherwise keys in values are overwritten
func (ss *SessionStore) SetValues(token string, values map[string]string) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	session, ok := ss.sessions[token]
	if !ok {
		return false
	}
	merged := copyValues(session.Values)
	for k, v := range values {
		merged[k] = v
	}
	session.Values = merged
	ss.sessions[token] = session
	return true
}

// SessionSweepInterval is how often StartSweeper drops expired sessions.
const SessionSweepInterval = 10 * time.Minute

// Sweep removes every expired session and returns how many were dropped.
// POST: no session older than SessionTTL remains
func (ss *SessionStore) Sweep() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	now := ss.now()
	removed := 0
	for token, session := range ss.sessions {
		if now.Sub(session.CreatedAt) > SessionTTL {
			delete(ss.sessions, token)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep every interval until the returned stop func is called.
func (ss *SessionStore) StartSweeper(interval time.Duration) (stop func()) {
	done := make(chan struct{})
	var once sync.Once
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if n := ss.Sweep(); n > 0 {
					slog.Debug("session_sweep", "removed", n)
				}
			}
		}
	}()
	return func() { once.Do(func() { close(done) }) }
}

// Len returns the number of live sessions.
func (ss *SessionStore) Len() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return len(ss.sessions)
}

func copyValues(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "workout_session"

// SecureCookies marks session cookies Secure. Set in production.
var SecureCookies bool

// Auth returns middleware that extracts the session from the cookie and puts it in the context.
// It does NOT block unauthenticated requests; use RequireAuth for that.
func Auth(sessions *SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err == nil && cookie.Value != "" {
				if session, ok := sessions.Get(cookie.Value); ok {
					r = r.WithContext(ContextWithSession(r.Context(), session))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth returns middleware that redirects visitors without a logged-in session to /login.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session, ok := GetSessionFromContext(r.Context()); !ok || !session.LoggedIn() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetSessionFromContext extracts the session from the request context.
func GetSessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(Session)
	return session, ok
}

// AccountFromContext returns the logged-in account ID, or "" for anonymous visitors.
func AccountFromContext(ctx context.Context) string {
	session, _ := GetSessionFromContext(ctx)
	return session.AccountID
}

// ContextWithSession returns a context with the given session set.
func ContextWithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// SetSessionCookie sets the session cookie on the response.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   int(SessionTTL / time.Second),
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
