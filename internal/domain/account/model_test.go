package account

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func init() {
	bcryptCost = bcrypt.MinCost
}

// TestAccount_Validate tests validation of Account.
func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		wantErr error
	}{
		{
			name:    "valid account",
			account: Account{ID: "1", Username: "alice", Email: "alice@example.com"},
		},
		{
			name:    "empty username",
			account: Account{ID: "2", Username: "  ", Email: "bob@example.com"},
			wantErr: ErrEmptyUsername,
		},
		{
			name:    "username too long",
			account: Account{ID: "3", Username: strings.Repeat("u", 51), Email: "long@example.com"},
			wantErr: ErrUsernameTooLong,
		},
		{
			name:    "empty email",
			account: Account{ID: "4", Username: "carol"},
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "email too long",
			account: Account{ID: "5", Username: "dave", Email: strings.Repeat("e", 95) + "@x.com"},
			wantErr: ErrEmailTooLong,
		},
		{
			name:    "email without at sign",
			account: Account{ID: "6", Username: "erin", Email: "not-an-email"},
			wantErr: ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestAccount_SetPassword tests password hashing and verification.
func TestAccount_SetPassword(t *testing.T) {
	a := Account{ID: "1", Username: "alice", Email: "alice@example.com"}

	if err := a.SetPassword(""); err != ErrEmptyPassword {
		t.Errorf("empty password: got %v, want %v", err, ErrEmptyPassword)
	}
	if err := a.SetPassword("short"); err != ErrPasswordTooShort {
		t.Errorf("short password: got %v, want %v", err, ErrPasswordTooShort)
	}
	if err := a.SetPassword("correct horse"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.PasswordHash == "" || a.PasswordHash == "correct horse" {
		t.Fatalf("expected bcrypt hash, got %q", a.PasswordHash)
	}
	if err := a.CheckPassword("correct horse"); err != nil {
		t.Errorf("CheckPassword with right password: %v", err)
	}
	if err := a.CheckPassword("wrong horse"); err != ErrWrongPassword {
		t.Errorf("CheckPassword with wrong password: got %v, want %v", err, ErrWrongPassword)
	}
}

// TestAccount_CheckPassword_NoHash tests accounts without a hash.
func TestAccount_CheckPassword_NoHash(t *testing.T) {
	a := Account{}
	if err := a.CheckPassword("anything"); err != ErrWrongPassword {
		t.Errorf("got %v, want %v", err, ErrWrongPassword)
	}
}

// TestAccount_Lockout tests failed-login lockout and reset.
func TestAccount_Lockout(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := Account{ID: "1"}

	for i := 0; i < MaxFailedLogins-1; i++ {
		a.RecordFailedLogin(now)
	}
	if a.IsLocked(now) {
		t.Fatal("account locked too early")
	}

	a.RecordFailedLogin(now)
	if !a.IsLocked(now) {
		t.Fatal("expected account to be locked after 5 failures")
	}
	if a.IsLocked(now.Add(LockoutDuration + time.Second)) {
		t.Error("expected lock to expire")
	}

	a.ResetFailedLogins()
	if a.FailedLogins != 0 || !a.LockedUntil.IsZero() {
		t.Errorf("expected reset, got %+v", a)
	}
}
