package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/viant/wordvec/vector"
)

const wordsSchema = `
CREATE TABLE IF NOT EXISTS words (
    token TEXT PRIMARY KEY,
    pos INTEGER NOT NULL,
    embedding BLOB NOT NULL
);
`

// EnsureSchema creates the words table in the provided database if it does
// not already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(wordsSchema)
	return err
}

// SaveTo persists a built store into db in a single transaction. The pos
// column records insertion order so LoadFrom can reconstruct the store with
// the same deterministic tie-break order. Any existing rows in the words
// table are replaced.
func SaveTo(ctx context.Context, db *sql.DB, s *Store) error {
	if db == nil {
		return fmt.Errorf("store: db is nil")
	}
	if s == nil {
		return fmt.Errorf("store: store is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM words`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words(token, pos, embedding) VALUES(?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := 0; i < s.Size(); i++ {
		token, vec := s.At(i)
		if _, err := stmt.ExecContext(ctx, token, i, vector.Encode(vec)); err != nil {
			return fmt.Errorf("store: save token %q: %w", token, err)
		}
	}
	return tx.Commit()
}

// LoadFrom reconstructs a store previously written by SaveTo. Vectors are
// already unit length on disk, so no normalization pass runs; uniqueness and
// dimensions are still validated on the way in.
func LoadFrom(ctx context.Context, db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	rows, err := db.QueryContext(ctx, `SELECT token, embedding FROM words ORDER BY pos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	s := &Store{index: make(map[string]int)}
	for rows.Next() {
		var token string
		var blob []byte
		if err := rows.Scan(&token, &blob); err != nil {
			return nil, err
		}
		vec, err := vector.Decode(blob)
		if err != nil {
			return nil, fmt.Errorf("store: load token %q: %w", token, err)
		}
		if s.dim == 0 {
			s.dim = len(vec)
		}
		if len(vec) != s.dim || s.dim == 0 {
			return nil, fmt.Errorf("%w: token %q has %d components, want %d", ErrDimensionMismatch, token, len(vec), s.dim)
		}
		if _, ok := s.index[token]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateToken, token)
		}
		s.index[token] = len(s.tokens)
		s.tokens = append(s.tokens, token)
		s.vectors = append(s.vectors, vec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(s.tokens) == 0 {
		return nil, fmt.Errorf("store: words table is empty")
	}
	return s, nil
}
