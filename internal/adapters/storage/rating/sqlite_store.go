package rating

import (
	"context"
	"database/sql"

	"workout/internal/adapters/storage"
	domain "workout/internal/domain/rating"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save inserts a rating.
// PRE: entity has been validated; AccountID references an existing account
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, r domain.Rating) error {
	var comment any
	if r.Comment != "" {
		comment = r.Comment
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rating (id, account_id, stars, comment, created_at) VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.AccountID, r.Stars, comment, storage.FormatTime(r.CreatedAt))
	return err
}

// ListComments returns ratings that carry a non-blank comment, newest first.
// A limit <= 0 returns every comment.
// PRE: none
// POST: Returns comments joined with the author's username
func (s *SQLiteStore) ListComments(ctx context.Context, limit int) ([]Comment, error) {
	query := `SELECT r.id, r.account_id, r.stars, r.comment, r.created_at, a.username
		FROM rating r JOIN account a ON a.id = r.account_id
		WHERE r.comment IS NOT NULL AND TRIM(r.comment) != ''
		ORDER BY r.created_at DESC, r.id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Comment
	for rows.Next() {
		var c Comment
		var comment sql.NullString
		var createdAt string
		if err := rows.Scan(&c.ID, &c.AccountID, &c.Stars, &comment, &createdAt, &c.Username); err != nil {
			return nil, err
		}
		c.Comment = comment.String
		c.CreatedAt, _ = storage.ParseTime(createdAt)
		results = append(results, c)
	}
	return results, rows.Err()
}
