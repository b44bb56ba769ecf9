package account

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"workout/internal/adapters/storage"
	domain "workout/internal/domain/account"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.MigrateDB(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewSQLiteStore(db)
}

// TestSQLiteStore_SaveAndGet tests insert, lookup by id and username, and update.
func TestSQLiteStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	created := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	a := domain.Account{ID: "a1", Username: "alice", Email: "alice@example.com", PasswordHash: "hash", CreatedAt: created}
	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if got.ID != "a1" || got.Email != "alice@example.com" || !got.CreatedAt.Equal(created) {
		t.Errorf("unexpected account: %+v", got)
	}
	if !got.LockedUntil.IsZero() {
		t.Errorf("LockedUntil = %v, want zero", got.LockedUntil)
	}

	locked := created.Add(time.Hour)
	got.FailedLogins = 5
	got.LockedUntil = locked
	if err := store.Save(ctx, got); err != nil {
		t.Fatalf("Save update: %v", err)
	}
	updated, err := store.GetByID(ctx, "a1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if updated.FailedLogins != 5 || !updated.LockedUntil.Equal(locked) {
		t.Errorf("update not persisted: %+v", updated)
	}

	count, err := store.Count(ctx)
	if err != nil || count != 1 {
		t.Errorf("Count = %d, %v; want 1", count, err)
	}
}

// TestSQLiteStore_NotFound tests that lookups of unknown accounts wrap sql.ErrNoRows.
func TestSQLiteStore_NotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.GetByID(ctx, "missing"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetByID error = %v, want sql.ErrNoRows", err)
	}
	if _, err := store.GetByUsername(ctx, "missing"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetByUsername error = %v, want sql.ErrNoRows", err)
	}
}

// TestSQLiteStore_Duplicate tests that username and email clashes map to ErrDuplicate.
func TestSQLiteStore_Duplicate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	if err := store.Save(ctx, domain.Account{ID: "a1", Username: "alice", Email: "alice@example.com", PasswordHash: "h", CreatedAt: now}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	tests := []struct {
		name    string
		account domain.Account
	}{
		{"same username", domain.Account{ID: "a2", Username: "alice", Email: "other@example.com", PasswordHash: "h", CreatedAt: now}},
		{"same email", domain.Account{ID: "a3", Username: "bob", Email: "alice@example.com", PasswordHash: "h", CreatedAt: now}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.Save(ctx, tt.account); !errors.Is(err, domain.ErrDuplicate) {
				t.Errorf("Save error = %v, want ErrDuplicate", err)
			}
		})
	}
}

// TestSQLiteStore_Delete tests removal.
func TestSQLiteStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, domain.Account{ID: "a1", Username: "alice", Email: "alice@example.com", PasswordHash: "h", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete(ctx, "a1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if count, _ := store.Count(ctx); count != 0 {
		t.Errorf("Count after delete = %d, want 0", count)
	}
}
