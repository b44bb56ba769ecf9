package storage

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestIsUniqueViolation tests detection of UNIQUE constraint failures.
func TestIsUniqueViolation(t *testing.T) {
	db := openTestDB(t)
	if err := MigrateDB(context.Background(), db); err != nil {
		t.Fatalf("MigrateDB failed: %v", err)
	}

	insert := `INSERT INTO account (id, username, email, password_hash, created_at) VALUES (?, ?, ?, 'x', '2026-01-01T00:00:00Z')`
	if _, err := db.Exec(insert, "a1", "alice", "alice@example.com"); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	_, err := db.Exec(insert, "a2", "alice", "other@example.com")
	if !IsUniqueViolation(err) {
		t.Errorf("duplicate username: IsUniqueViolation(%v) = false, want true", err)
	}
	_, err = db.Exec(insert, "a1", "bob", "bob@example.com")
	if !IsUniqueViolation(err) {
		t.Errorf("duplicate id: IsUniqueViolation(%v) = false, want true", err)
	}

	if IsUniqueViolation(nil) {
		t.Error("nil error reported as unique violation")
	}
	if IsUniqueViolation(errors.New("boom")) {
		t.Error("plain error reported as unique violation")
	}
}

// TestFormatParseTime tests the timestamp round trip and the NULL mapping.
func TestFormatParseTime(t *testing.T) {
	want := time.Date(2026, 3, 1, 12, 30, 15, 123456789, time.UTC)
	got, err := ParseTime(FormatTime(want))
	if err != nil {
		t.Fatalf("ParseTime: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if FormatNullableTime(time.Time{}) != nil {
		t.Error("zero time should map to NULL")
	}
	if _, err := ParseTime("2026-01-01 10:00:00"); err != nil {
		t.Errorf("sqlite datetime layout: %v", err)
	}
	if _, err := ParseTime("yesterday"); err == nil {
		t.Error("expected error for garbage time")
	}
}
