package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestRateLimiter_Allow tests burst exhaustion and per-IP isolation.
func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3)
	defer rl.Close()

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d unexpectedly limited", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("expected fourth request in the burst to be limited")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("other IPs must have their own bucket")
	}
}

// TestRateLimit_Middleware tests the 429 response and port stripping.
func TestRateLimit_Middleware(t *testing.T) {
	rl := NewRateLimiter(1)
	defer rl.Close()
	handler := RateLimit(rl)(okHandler(http.StatusOK))

	first := httptest.NewRequest("GET", "/", nil)
	first.RemoteAddr = "192.0.2.1:1111"
	second := httptest.NewRequest("GET", "/", nil)
	second.RemoteAddr = "192.0.2.1:2222"

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, first)
	if rr.Code != http.StatusOK {
		t.Fatalf("first status = %d", rr.Code)
	}
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, second)
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("second status = %d, want 429 (same IP, different port)", rr.Code)
	}
}

// TestSecurityHeaders tests the headers are set.
func TestSecurityHeaders(t *testing.T) {
	rr := httptest.NewRecorder()
	SecurityHeaders(okHandler(http.StatusOK)).ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	for _, h := range []string{"Content-Security-Policy", "X-Frame-Options", "X-Content-Type-Options", "Referrer-Policy"} {
		if rr.Header().Get(h) == "" {
			t.Errorf("missing header %s", h)
		}
	}
}

// TestCSRF tests that form posts without a token are rejected and JSON posts pass.
func TestCSRF(t *testing.T) {
	key := []byte(strings.Repeat("k", 32))
	handler := CSRF(key, false, nil)(okHandler(http.StatusOK))

	form := httptest.NewRequest("POST", "/note", strings.NewReader("note=hi"))
	form.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, form)
	if rr.Code != http.StatusForbidden {
		t.Errorf("form without token: status = %d, want 403", rr.Code)
	}

	jsonReq := httptest.NewRequest("POST", "/note", strings.NewReader(`{"note":"hi"}`))
	jsonReq.Header.Set("Content-Type", "application/json")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, jsonReq)
	if rr.Code != http.StatusOK {
		t.Errorf("JSON request: status = %d, want 200", rr.Code)
	}

	get := httptest.NewRequest("GET", "/note", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, get)
	if rr.Code != http.StatusOK {
		t.Errorf("GET: status = %d, want 200", rr.Code)
	}
}

// TestChain tests wrapping order.
func TestChain(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	Chain(okHandler(http.StatusOK), mark("inner"), mark("outer")).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	if strings.Join(order, ",") != "outer,inner" {
		t.Errorf("order = %v", order)
	}
}
