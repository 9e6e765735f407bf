// Package store persists users and their search history in Postgres.
// Schema is managed by the migrations under migrations/.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

type Store struct {
	DB *sql.DB
}

// NewWithDSN opens a Postgres connection and verifies it.
func NewWithDSN(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Store{DB: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// User operations

func (s *Store) CreateUser(ctx context.Context, email, hash string) error {
	_, err := s.DB.ExecContext(ctx, `INSERT INTO users (email, password_hash) VALUES ($1,$2)`, email, hash)
	return err
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (id string, hash string, err error) {
	err = s.DB.QueryRowContext(ctx, `SELECT id, password_hash FROM users WHERE email=$1`, email).Scan(&id, &hash)
	return
}

// Search history operations

// SearchRecord is one saved search with its parsed form as raw JSON.
type SearchRecord struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Query     string          `json:"query"`
	Parsed    json.RawMessage `json:"parsed"`
	CreatedAt time.Time       `json:"created_at"`
}

// SaveSearch records an executed search for the user. parsed is the
// ParsedQuery serialized as JSON.
func (s *Store) SaveSearch(ctx context.Context, userID, rawQuery string, parsed []byte) (string, error) {
	var id string
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO search_history (user_id, query, parsed) VALUES ($1,$2,$3) RETURNING id`,
		userID, rawQuery, parsed).Scan(&id)
	return id, err
}

// RecentSearches returns the user's latest searches, newest first.
func (s *Store) RecentSearches(ctx context.Context, userID string, limit int) ([]SearchRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, user_id, query, parsed, created_at FROM search_history
WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SearchRecord
	for rows.Next() {
		var rec SearchRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Query, &rec.Parsed, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
