package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"workout/internal/adapters/storage"
	domain "workout/internal/domain/note"
)

// ErrNotFound is returned when a note ID does not exist.
var ErrNotFound = errors.New("note not found")

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a note by ID.
// PRE: id is non-empty
// POST: Returns the entity or ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Note, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, content, created_at FROM note WHERE id = ?`, id)
	n, err := scanNote(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Note{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return n, err
}

// Save inserts or updates a note.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, n domain.Note) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO note (id, content, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET content=excluded.content`,
		n.ID, n.Content, storage.FormatTime(n.CreatedAt))
	return err
}

// Delete removes a note by ID.
// PRE: id is non-empty
// POST: Entity is removed, or ErrNotFound when nothing matched
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM note WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// List returns notes oldest first.
// PRE: filter has valid parameters
// POST: Returns matching notes ordered by created_at ASC
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Note, error) {
	query := `SELECT id, content, created_at FROM note ORDER BY created_at ASC, id ASC`
	args := []any{}
	if filter.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Note
	for rows.Next() {
		n, err := scanNote(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, n)
	}
	return results, rows.Err()
}

// Count returns the total number of notes.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM note`).Scan(&count)
	return count, err
}

func scanNote(scan func(dest ...any) error) (domain.Note, error) {
	var n domain.Note
	var createdAt string
	if err := scan(&n.ID, &n.Content, &createdAt); err != nil {
		return domain.Note{}, err
	}
	n.CreatedAt, _ = storage.ParseTime(createdAt)
	return n, nil
}
