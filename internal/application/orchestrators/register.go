package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	emailAdapter "workout/internal/adapters/email"
	"workout/internal/domain/account"
)

// AccountStoreForRegister defines the store interface needed by Register.
type AccountStoreForRegister interface {
	GetByUsername(ctx context.Context, username string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
}

// RegisterInput carries input for the register orchestrator.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// RegisterDeps holds dependencies for Register.
// Mailer is optional; a nil Mailer skips the welcome email.
type RegisterDeps struct {
	AccountStore AccountStoreForRegister
	Mailer       emailAdapter.Sender
	GenerateID   func() string
	Now          func() time.Time
}

// ErrUsernameOrEmailTaken is returned when the username or email belongs to another account.
var ErrUsernameOrEmailTaken = errors.New("username or email already exists")

// ExecuteRegister creates an account with a hashed password.
// PRE: none
// POST: Account persisted; welcome email attempted when a Mailer is configured
// INVARIANT: username and email are unique across accounts
func ExecuteRegister(ctx context.Context, input RegisterInput, deps RegisterDeps) (account.Account, error) {
	acct := account.Account{
		ID:        deps.GenerateID(),
		Username:  strings.TrimSpace(input.Username),
		Email:     strings.TrimSpace(input.Email),
		CreatedAt: deps.Now(),
	}
	if err := acct.Validate(); err != nil {
		return account.Account{}, err
	}

	_, err := deps.AccountStore.GetByUsername(ctx, acct.Username)
	if err == nil {
		slog.Info("auth_event", "event", "register_rejected", "username", acct.Username, "reason", "duplicate")
		return account.Account{}, ErrUsernameOrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return account.Account{}, fmt.Errorf("failed to look up username: %w", err)
	}

	if err := acct.SetPassword(input.Password); err != nil {
		return account.Account{}, err
	}

	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		if errors.Is(err, account.ErrDuplicate) {
			slog.Info("auth_event", "event", "register_rejected", "username", acct.Username, "reason", "duplicate")
			return account.Account{}, ErrUsernameOrEmailTaken
		}
		return account.Account{}, err
	}

	slog.Info("auth_event", "event", "account_created", "account_id", acct.ID, "username", acct.Username)

	if deps.Mailer != nil {
		sendWelcome(ctx, deps.Mailer, acct)
	}
	return acct, nil
}

// sendWelcome delivers the welcome email. Failures are logged, never returned.
func sendWelcome(ctx context.Context, mailer emailAdapter.Sender, acct account.Account) {
	req, err := emailAdapter.WelcomeMessage(acct.Username, acct.Email)
	if err != nil {
		slog.Error("email_event", "event", "welcome_render_failed", "account_id", acct.ID, "error", err)
		return
	}
	if _, err := mailer.Send(ctx, req); err != nil {
		slog.Warn("email_event", "event", "welcome_send_failed", "account_id", acct.ID, "error", err)
		return
	}
	slog.Info("email_event", "event", "welcome_sent", "account_id", acct.ID)
}
