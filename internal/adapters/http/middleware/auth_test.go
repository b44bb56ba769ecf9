package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// TestSessionStore_Lifecycle tests create, get, set values and delete.
func TestSessionStore_Lifecycle(t *testing.T) {
	ss := NewSessionStore()

	token, err := ss.Create("", "", map[string]string{"age": "30"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	sess, ok := ss.Get(token)
	if !ok {
		t.Fatal("expected session")
	}
	if sess.LoggedIn() {
		t.Error("anonymous session reported as logged in")
	}
	if sess.Value("age") != "30" || sess.Token != token {
		t.Errorf("unexpected session: %+v", sess)
	}

	if !ss.SetValues(token, map[string]string{"gender": "female"}) {
		t.Fatal("SetValues on live session returned false")
	}
	sess, _ = ss.Get(token)
	if sess.Value("age") != "30" || sess.Value("gender") != "female" {
		t.Errorf("values not merged: %v", sess.Values)
	}

	ss.Delete(token)
	if _, ok := ss.Get(token); ok {
		t.Error("expected session to be deleted")
	}
	if ss.SetValues(token, map[string]string{"age": "1"}) {
		t.Error("SetValues on deleted session returned true")
	}
}

// TestSessionStore_Isolation tests that sessions never share values.
func TestSessionStore_Isolation(t *testing.T) {
	ss := NewSessionStore()
	values := map[string]string{"gender": "male"}
	a, _ := ss.Create("a1", "alice", values)
	b, _ := ss.Create("", "", nil)

	values["gender"] = "mutated"
	ss.SetValues(b, map[string]string{"gender": "female"})

	sa, _ := ss.Get(a)
	sb, _ := ss.Get(b)
	if sa.Value("gender") != "male" {
		t.Errorf("session a gender = %q, want male", sa.Value("gender"))
	}
	if sb.Value("gender") != "female" {
		t.Errorf("session b gender = %q, want female", sb.Value("gender"))
	}

	sa.Values["gender"] = "changed through copy"
	again, _ := ss.Get(a)
	if again.Value("gender") != "male" {
		t.Error("returned session values alias the stored map")
	}
}

// TestSessionStore_Expiry tests that sessions expire after SessionTTL.
func TestSessionStore_Expiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ss := NewSessionStore()
	ss.now = func() time.Time { return now }

	token, _ := ss.Create("a1", "alice", nil)
	now = now.Add(SessionTTL + time.Second)

	if _, ok := ss.Get(token); ok {
		t.Error("expected expired session to be rejected")
	}
	if ss.Len() != 0 {
		t.Errorf("Len = %d, want 0 after expiry", ss.Len())
	}
}

// TestSessionStore_Sweep tests that expired sessions are dropped without being requested.
func TestSessionStore_Sweep(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ss := NewSessionStore()
	ss.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		if _, err := ss.Create("", "", map[string]string{"age": "30"}); err != nil {
			t.Fatal(err)
		}
	}
	now = now.Add(SessionTTL / 2)
	fresh, _ := ss.Create("a1", "alice", nil)
	now = now.Add(SessionTTL/2 + time.Second)

	if removed := ss.Sweep(); removed != 3 {
		t.Errorf("Sweep removed %d, want 3", removed)
	}
	if ss.Len() != 1 {
		t.Errorf("Len = %d, want 1", ss.Len())
	}
	if _, ok := ss.Get(fresh); !ok {
		t.Error("unexpired session was swept")
	}
}

// TestSessionStore_StartSweeper tests the background sweep.
func TestSessionStore_StartSweeper(t *testing.T) {
	ss := NewSessionStore()
	for i := 0; i < 5; i++ {
		ss.Create("", "", nil)
	}
	expired := time.Now().Add(SessionTTL + time.Minute)
	ss.now = func() time.Time { return expired }

	stop := ss.StartSweeper(5 * time.Millisecond)
	defer stop()

	deadline := time.Now().Add(2 * time.Second)
	for ss.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("Len = %d after sweeping, want 0", ss.Len())
		}
		time.Sleep(5 * time.Millisecond)
	}
	stop()
	stop()
}

// TestSessionStore_Concurrent tests concurrent access under the race detector.
func TestSessionStore_Concurrent(t *testing.T) {
	ss := NewSessionStore()
	token, _ := ss.Create("", "", nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ss.SetValues(token, map[string]string{"age": "40"})
			ss.Get(token)
		}()
	}
	wg.Wait()
}

// TestAuth_SetsSessionInContext tests cookie lookup.
func TestAuth_SetsSessionInContext(t *testing.T) {
	ss := NewSessionStore()
	token, _ := ss.Create("a1", "alice", nil)

	var got Session
	var found bool
	handler := Auth(ss)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = GetSessionFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if !found || got.Username != "alice" {
		t.Errorf("session = %+v, found = %v", got, found)
	}

	found = false
	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "bogus"})
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if found {
		t.Error("expected no session for an unknown token")
	}
}

// TestRequireAuth tests redirects for anonymous and missing sessions.
func TestRequireAuth(t *testing.T) {
	handler := RequireAuth(okHandler(http.StatusOK))

	tests := []struct {
		name     string
		session  *Session
		wantCode int
	}{
		{"no session", nil, http.StatusSeeOther},
		{"anonymous session", &Session{Values: map[string]string{"age": "30"}}, http.StatusSeeOther},
		{"logged in", &Session{AccountID: "a1"}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/dashboard", nil)
			if tt.session != nil {
				req = req.WithContext(ContextWithSession(req.Context(), *tt.session))
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			if rr.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantCode)
			}
			if tt.wantCode == http.StatusSeeOther && rr.Header().Get("Location") != "/login" {
				t.Errorf("Location = %q, want /login", rr.Header().Get("Location"))
			}
		})
	}
}

// TestSessionCookie tests cookie attributes.
func TestSessionCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	SetSessionCookie(rr, "tok")
	c := rr.Result().Cookies()[0]
	if c.Name != SessionCookieName || !c.HttpOnly || c.Value != "tok" {
		t.Errorf("unexpected cookie: %+v", c)
	}

	rr = httptest.NewRecorder()
	ClearSessionCookie(rr)
	if c := rr.Result().Cookies()[0]; c.MaxAge >= 0 {
		t.Errorf("MaxAge = %d, want negative", c.MaxAge)
	}
}
