package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"workout/internal/domain/account"
	"workout/internal/domain/bmi"
	"workout/internal/domain/note"
	"workout/internal/domain/rating"
)

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

func fixedID() string { return "test-id-001" }

// mockAccountStore implements the account store interfaces for testing.
type mockAccountStore struct {
	accounts map[string]account.Account
	getErr   error
	saveErr  error
	saves    int
}

func newMockAccountStore(seed ...account.Account) *mockAccountStore {
	m := &mockAccountStore{accounts: make(map[string]account.Account)}
	for _, a := range seed {
		m.accounts[a.ID] = a
	}
	return m
}

// GetByUsername returns the seeded account with the given username.
// PRE: username is non-empty
// POST: returns account, getErr when set, or an error wrapping sql.ErrNoRows
func (m *mockAccountStore) GetByUsername(_ context.Context, username string) (account.Account, error) {
	if m.getErr != nil {
		return account.Account{}, m.getErr
	}
	for _, a := range m.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return account.Account{}, fmt.Errorf("account %q: %w", username, sql.ErrNoRows)
}

// Save stores the account, reporting duplicate emails like the SQLite store.
// PRE: account is valid
// POST: account is persisted unless saveErr is set
func (m *mockAccountStore) Save(_ context.Context, a account.Account) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	for _, existing := range m.accounts {
		if existing.ID != a.ID && (existing.Email == a.Email || existing.Username == a.Username) {
			return account.ErrDuplicate
		}
	}
	m.saves++
	m.accounts[a.ID] = a
	return nil
}

// mockNoteStore implements NoteStoreForOrchestrator for testing.
type mockNoteStore struct {
	notes map[string]note.Note
}

func newMockNoteStore() *mockNoteStore {
	return &mockNoteStore{notes: make(map[string]note.Note)}
}

// Save implements NoteStoreForOrchestrator.
// PRE: note is valid
// POST: note is persisted
func (m *mockNoteStore) Save(_ context.Context, n note.Note) error {
	m.notes[n.ID] = n
	return nil
}

// errNoteNotFound stands in for the store's not-found error.
var errNoteNotFound = errors.New("note not found")

// Delete implements NoteStoreForOrchestrator.
// PRE: id is non-empty
// POST: note removed or errNoteNotFound
func (m *mockNoteStore) Delete(_ context.Context, id string) error {
	if _, ok := m.notes[id]; !ok {
		return errNoteNotFound
	}
	delete(m.notes, id)
	return nil
}

// mockRatingStore implements RatingStoreForOrchestrator for testing.
type mockRatingStore struct {
	saved []rating.Rating
}

// Save implements RatingStoreForOrchestrator.
// PRE: rating is valid
// POST: rating appended
func (m *mockRatingStore) Save(_ context.Context, r rating.Rating) error {
	m.saved = append(m.saved, r)
	return nil
}

// mockRecorder implements ClassificationRecorder for testing.
type mockRecorder struct {
	categories []bmi.Category
}

// RecordClassification implements ClassificationRecorder.
func (m *mockRecorder) RecordClassification(_ context.Context, c bmi.Category) {
	m.categories = append(m.categories, c)
}
