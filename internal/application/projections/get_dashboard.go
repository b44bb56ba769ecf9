package projections

import (
	"context"

	"workout/internal/domain/account"
	"workout/internal/domain/profile"
)

// DashboardAccountStore defines the account store interface needed by the dashboard projection.
type DashboardAccountStore interface {
	GetByID(ctx context.Context, id string) (account.Account, error)
}

// GetDashboardQuery carries input for the dashboard projection.
type GetDashboardQuery struct {
	AccountID string
	Session   profile.Stored
}

// GetDashboardDeps holds dependencies for the dashboard projection.
type GetDashboardDeps struct {
	AccountStore DashboardAccountStore
}

// DashboardView is the data shown on the logged-in home page.
type DashboardView struct {
	Username     string
	Demographics profile.Demographics
	HasSelection bool
}

// QueryGetDashboard builds the dashboard for a logged-in account.
// PRE: AccountID is non-empty
// POST: returns the store error when the account no longer exists
func QueryGetDashboard(ctx context.Context, query GetDashboardQuery, deps GetDashboardDeps) (DashboardView, error) {
	acct, err := deps.AccountStore.GetByID(ctx, query.AccountID)
	if err != nil {
		return DashboardView{}, err
	}

	view := DashboardView{Username: acct.Username}
	// A corrupt stored age falls back to the defaults here; the personal page reports it.
	demo, err := query.Session.Resolve()
	if err != nil {
		demo, _ = profile.Stored{}.Resolve()
	}
	view.Demographics = demo
	view.HasSelection = query.Session.Age != "" || query.Session.Gender != ""
	return view, nil
}
